package models

type DietTipType string

const (
	DietTipTypeTip   DietTipType = "Tip"
	DietTipTypeAlert DietTipType = "Alert"
)

// DietTip is a curated nutrition note shown on the diet planner page.
type DietTip struct {
	ID   string      `json:"id"`
	Text string      `json:"text"`
	Type DietTipType `json:"type"`
}

// DietProfile is the free-form user input sent to the plan generator.
type DietProfile struct {
	Weight       int    `json:"weight" binding:"required,min=1"`
	Age          int    `json:"age" binding:"required,min=1"`
	Grade        int    `json:"grade" binding:"required,min=1,max=3"`
	Goal         string `json:"goal" binding:"required"`
	Testosterone int    `json:"testosterone,omitempty"`
}

// DietMeal is one slot of a generated plan. Only Name and Calories are
// guaranteed by the gateway contract; the macro fields may be zero.
type DietMeal struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein,omitempty"`
	Fats        float64 `json:"fats,omitempty"`
	Carbs       float64 `json:"carbs,omitempty"`
	Description string  `json:"description,omitempty"`
}

// DailyDietPlan is the structured plan returned by the AI gateway.
type DailyDietPlan struct {
	Breakfast     DietMeal `json:"breakfast"`
	Lunch         DietMeal `json:"lunch"`
	Dinner        DietMeal `json:"dinner"`
	Snacks        DietMeal `json:"snacks"`
	TotalCalories float64  `json:"totalCalories"`
}
