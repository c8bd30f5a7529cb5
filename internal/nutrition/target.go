package nutrition

import (
	"fmt"
	"strings"
)

// Target locates a position in the plan tree. Meals and foods can be
// addressed by index or by fuzzy case-insensitive name containment, first
// match in array order.
type Target struct {
	WeekIndex   *int   `json:"weekIndex,omitempty"`
	DayIndex    *int   `json:"dayIndex,omitempty"`
	MealIndex   *int   `json:"mealIndex,omitempty"`
	MealName    string `json:"mealName,omitempty"`
	FoodIndex   *int   `json:"foodIndex,omitempty"`
	FoodName    string `json:"foodName,omitempty"`
	AllMatching bool   `json:"allMatching,omitempty"`
}

// TargetContext carries the caller-side default week/day, passed explicitly
// with every request.
type TargetContext struct {
	DefaultWeekIndex *int
	DefaultDayIndex  *int
}

func defaultIndex(explicit, fallback *int) int {
	if explicit != nil {
		return *explicit
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}

func resolveDay(p *Plan, t Target, tctx TargetContext) (weekIx, dayIx int, day *Day, err error) {
	weekIx = defaultIndex(t.WeekIndex, tctx.DefaultWeekIndex)
	if weekIx < 0 || weekIx >= len(p.Weeks) {
		return 0, 0, nil, fmt.Errorf("%w: week %d (plan has %d weeks)", ErrTargetNotFound, weekIx, len(p.Weeks))
	}
	week := &p.Weeks[weekIx]

	dayIx = defaultIndex(t.DayIndex, tctx.DefaultDayIndex)
	if dayIx < 0 || dayIx >= len(week.Days) {
		return 0, 0, nil, fmt.Errorf("%w: day %d (week %d has %d days)", ErrTargetNotFound, dayIx, weekIx, len(week.Days))
	}
	return weekIx, dayIx, &week.Days[dayIx], nil
}

func resolveMeal(day *Day, t Target) (int, error) {
	if t.MealIndex != nil {
		ix := *t.MealIndex
		if ix < 0 || ix >= len(day.Meals) {
			return 0, fmt.Errorf("%w: meal %d (day has %d meals)", ErrTargetNotFound, ix, len(day.Meals))
		}
		return ix, nil
	}

	if t.MealName == "" {
		return 0, ErrMissingTarget
	}

	needle := strings.ToLower(t.MealName)
	for i := range day.Meals {
		if strings.Contains(strings.ToLower(day.Meals[i].Name), needle) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no meal matching %q", ErrTargetNotFound, t.MealName)
}

// resolveFoods returns the meal index and the indexes of the targeted foods
// within that meal (all matches when AllMatching is set).
func resolveFoods(day *Day, t Target) (mealIx int, foodIxs []int, err error) {
	mealIx, err = resolveMeal(day, t)
	if err != nil {
		// no meal addressed at all - search foods across all meals by name
		if t.MealIndex == nil && t.MealName == "" && t.FoodName != "" {
			return resolveFoodsAcrossMeals(day, t)
		}
		return 0, nil, err
	}

	meal := &day.Meals[mealIx]
	if t.FoodIndex != nil {
		ix := *t.FoodIndex
		if ix < 0 || ix >= len(meal.Foods) {
			return 0, nil, fmt.Errorf("%w: food %d (meal %q has %d foods)", ErrTargetNotFound, ix, meal.Name, len(meal.Foods))
		}
		return mealIx, []int{ix}, nil
	}

	if t.FoodName == "" {
		return 0, nil, ErrMissingTarget
	}

	needle := strings.ToLower(t.FoodName)
	var matches []int
	for i := range meal.Foods {
		if strings.Contains(strings.ToLower(meal.Foods[i].Name), needle) {
			if !t.AllMatching {
				return mealIx, []int{i}, nil
			}
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return 0, nil, fmt.Errorf("%w: no food matching %q in meal %q", ErrTargetNotFound, t.FoodName, meal.Name)
	}
	return mealIx, matches, nil
}

func resolveFoodsAcrossMeals(day *Day, t Target) (mealIx int, foodIxs []int, err error) {
	needle := strings.ToLower(t.FoodName)
	for mi := range day.Meals {
		for fi := range day.Meals[mi].Foods {
			if strings.Contains(strings.ToLower(day.Meals[mi].Foods[fi].Name), needle) {
				return mi, []int{fi}, nil
			}
		}
	}
	return 0, nil, fmt.Errorf("%w: no food matching %q", ErrTargetNotFound, t.FoodName)
}
