package models

type ExerciseCategory string

const (
	CategoryPelvicFloor ExerciseCategory = "Pelvic Floor"
	CategoryCirculation ExerciseCategory = "Circulation"
	CategoryYoga        ExerciseCategory = "Yoga"
	CategoryLight       ExerciseCategory = "Light"
)

type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// Exercise is a guided recovery workout. Duration is a display string whose
// leading integer is read as minutes for the session timer.
type Exercise struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Category    ExerciseCategory `json:"category"`
	Duration    string           `json:"duration"`
	Calories    string           `json:"calories"`
	Intensity   Intensity        `json:"intensity"`
	Image       string           `json:"image"`
	VideoURL    string           `json:"video_url"`
	Description string           `json:"description"`
}

// Progress is a user's completion history and streak counter.
type Progress struct {
	Completions []string `json:"completions"`
	Streak      int      `json:"streak"`
}
