package nutrition

// Plan is the root nutrition document: weeks -> days -> meals -> foods.
// Persisted as one JSONB column, same as workout programs.
type Plan struct {
	Title string `json:"title,omitempty"`
	Notes string `json:"notes,omitempty"`
	Weeks []Week `json:"weeks"`
}

type Week struct {
	Focus string `json:"focus,omitempty"`
	Notes string `json:"notes,omitempty"`
	Days  []Day  `json:"days"`
}

// Day carries the derived totals: recomputed bottom-up from all foods after
// every mutation, never trusted as input.
type Day struct {
	Name          string `json:"name,omitempty"`
	Meals         []Meal `json:"meals"`
	TotalCalories int    `json:"totalCalories"`
	TotalMacros   Macros `json:"totalMacros"`
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type Meal struct {
	Name           string     `json:"name"`
	Time           string     `json:"time,omitempty"`
	TargetCalories int        `json:"targetCalories,omitempty"`
	TargetMacros   Macros     `json:"targetMacros,omitempty"`
	Foods          []MealFood `json:"foods"`
}

// FoodMacros is the snapshot of one food's macros at its current quantity.
// Calories are kept as whole units, the gram values at one decimal.
type FoodMacros struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealFood is one food entry. Macros are snapshotted at add time from the
// catalog per-100g values and rescaled in place when the quantity changes -
// they are never recomputed lazily.
type MealFood struct {
	FoodID   string     `json:"foodId,omitempty"`
	Name     string     `json:"name"`
	Quantity float64    `json:"quantity"`
	Unit     string     `json:"unit,omitempty"`
	Macros   FoodMacros `json:"macros"`
}
