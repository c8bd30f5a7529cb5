package nutrition

import "math"

// round1 rounds to one decimal - the granularity kept for gram values.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RescaleMacros scales a macro snapshot from oldQuantity to newQuantity.
// Calories round to whole units, protein/carbs/fat to one decimal - the
// intentionally different rounding granularities of the snapshot format.
func RescaleMacros(m FoodMacros, oldQuantity, newQuantity float64) FoodMacros {
	if oldQuantity == 0 {
		return m
	}
	multiplier := newQuantity / oldQuantity
	return FoodMacros{
		Calories: int(math.Round(float64(m.Calories) * multiplier)),
		Protein:  round1(m.Protein * multiplier),
		Carbs:    round1(m.Carbs * multiplier),
		Fat:      round1(m.Fat * multiplier),
	}
}

// SnapshotMacros computes a food's macro snapshot from catalog per-100g
// values at the given quantity.
func SnapshotMacros(caloriesPer100, proteinPer100, carbsPer100, fatPer100, quantity float64) FoodMacros {
	factor := quantity / 100
	return FoodMacros{
		Calories: int(math.Round(caloriesPer100 * factor)),
		Protein:  round1(proteinPer100 * factor),
		Carbs:    round1(carbsPer100 * factor),
		Fat:      round1(fatPer100 * factor),
	}
}

// RecomputeDayTotals re-sums the day totals from every food of every meal.
// Always a full recompute, never an incremental delta: O(foods in day) per
// edit buys correctness no matter which field changed.
func RecomputeDayTotals(day *Day) {
	day.TotalCalories = 0
	day.TotalMacros = Macros{}
	for mi := range day.Meals {
		for fi := range day.Meals[mi].Foods {
			macros := day.Meals[mi].Foods[fi].Macros
			day.TotalCalories += macros.Calories
			day.TotalMacros.Protein = round1(day.TotalMacros.Protein + macros.Protein)
			day.TotalMacros.Carbs = round1(day.TotalMacros.Carbs + macros.Carbs)
			day.TotalMacros.Fat = round1(day.TotalMacros.Fat + macros.Fat)
		}
	}
}
