package database

import "github.com/EXROSE/VaricoCare/models"

// Logical keys for the persisted content collections.
const (
	KeyProducts  = "vc:products"
	KeyExercises = "vc:exercises"
	KeyDietTips  = "vc:diet_tips"
)

func floatPtr(f float64) *float64 { return &f }

// DefaultProducts is the catalog seeded on first run.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "VaricoEase Herbal Blend",
			Description:   "Specialized blend to support vein health and testicular circulation.",
			Price:         49.99,
			DiscountPrice: floatPtr(39.99),
			Image:         "https://picsum.photos/400/400?random=1",
			Stock:         50,
			Category:      "Supplements",
		},
		{
			ID:          "2",
			Name:        "Premium Zinc + L-Carnitine",
			Description: "Boost sperm motility and testosterone production naturally.",
			Price:       29.99,
			Image:       "https://picsum.photos/400/400?random=2",
			Stock:       120,
			Category:    "Vitamins",
		},
	}
}

// DefaultExercises is the workout library seeded on first run.
func DefaultExercises() []models.Exercise {
	return []models.Exercise{
		{
			ID:          "1",
			Title:       "Pelvic Floor Release",
			Category:    models.CategoryPelvicFloor,
			Duration:    "5 min",
			Calories:    "25 kcal",
			Intensity:   models.IntensityLow,
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&q=80&w=800",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Description: "This foundational movement is designed to relax and lengthen the pelvic floor muscles. Chronic tension in this region can restrict local blood flow and contribute to the vascular congestion seen in Varicocele patients. By utilizing deep diaphragmatic breathing, we aim to naturally reduce the pressure on the internal spermatic veins. Hold each stretch for 30 seconds, focusing on full relaxation during the exhale.",
		},
		{
			ID:          "2",
			Title:       "Testicular Circulation Flow",
			Category:    models.CategoryCirculation,
			Duration:    "10 min",
			Calories:    "45 kcal",
			Intensity:   models.IntensityLow,
			Image:       "https://images.unsplash.com/photo-1599447421416-3414500d18a5?auto=format&fit=crop&q=80&w=800",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Description: "Targeted inversions and rhythmic leg movements assist the venous valves in returning pooled blood from the scrotum back to the core circulation. This prevents the characteristic \"blood pooling\" that leads to vein dilation. Perform these movements slowly and rhythmically to synchronize with your heart rate for maximum drainage efficiency.",
		},
		{
			ID:          "3",
			Title:       "Varico-Yoga: Cat Cow",
			Category:    models.CategoryYoga,
			Duration:    "8 min",
			Calories:    "30 kcal",
			Intensity:   models.IntensityMedium,
			Image:       "https://images.unsplash.com/photo-1510894347713-fc3ad6cb03a2?auto=format&fit=crop&q=80&w=800",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Description: "Cat-Cow is a gentle flow that improves spinal mobility and pelvic positioning. By alternating between arching and rounding the back, you create a natural pumping mechanism in the abdominal cavity that helps decongest the deep pelvic veins. This is particularly effective for those who spend long periods sitting or standing.",
		},
	}
}

// DefaultDietTips is empty: tips are authored by the admin surface only.
func DefaultDietTips() []models.DietTip {
	return []models.DietTip{}
}
