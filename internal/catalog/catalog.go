package catalog

import "errors"

var (
	ErrEntryNotFound = errors.New("catalog entry not found")
)

// ExerciseEntry is one canonical exercise: a stable id plus the metadata an
// added program exercise adopts when resolved by name.
type ExerciseEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscleGroups"`
	Equipment    string   `json:"equipment,omitempty"`
	Category     string   `json:"category,omitempty"`
}

// FoodEntry is one canonical food with its macros per 100 grams. Meal foods
// snapshot these at add time, scaled to quantity.
type FoodEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Unit     string   `json:"unit,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Calories float64  `json:"caloriesPer100g"`
	Protein  float64  `json:"proteinPer100g"`
	Carbs    float64  `json:"carbsPer100g"`
	Fat      float64  `json:"fatPer100g"`
}
