package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/coachbit/backend/internal/catalog"
)

// foodResolver looks up catalog foods for macro snapshots. Best effort: a
// failed lookup degrades to the caller-supplied values and never fails the edit.
type foodResolver interface {
	FindFoodByName(ctx context.Context, name string) (*catalog.FoodEntry, error)
	GetFood(ctx context.Context, id string) (*catalog.FoodEntry, error)
}

type engine struct {
	catalog foodResolver
}

// apply dispatches one operation. Every mutating action ends with a full
// recompute of the touched day's totals.
func (e *engine) apply(ctx context.Context, p *Plan, op Operation, tctx TargetContext) (string, error) {
	switch op.Action {
	case ActionUpdateMeal:
		return e.updateMeal(p, op, tctx)
	case ActionAddMeal:
		return e.addMeal(ctx, p, op, tctx)
	case ActionRemoveMeal:
		return e.removeMeal(p, op, tctx)
	case ActionUpdateFood:
		return e.updateFood(p, op, tctx)
	case ActionAddFood:
		return e.addFood(ctx, p, op, tctx)
	case ActionRemoveFood:
		return e.removeFood(p, op, tctx)
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidInput, op.Action)
	}
}

func (e *engine) updateMeal(p *Plan, op Operation, tctx TargetContext) (string, error) {
	changes, err := decodeChanges[MealChanges](op.Changes, op.Action)
	if err != nil {
		return "", err
	}
	if changes.Empty() {
		return "", fmt.Errorf("%w: update_meal with empty changes", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	mealIx, err := resolveMeal(day, op.Target)
	if err != nil {
		return "", err
	}

	meal := &day.Meals[mealIx]
	if changes.Name != nil {
		meal.Name = *changes.Name
	}
	if changes.Time != nil {
		meal.Time = *changes.Time
	}
	if changes.TargetCalories != nil {
		meal.TargetCalories = *changes.TargetCalories
	}
	if changes.TargetMacros != nil {
		meal.TargetMacros = *changes.TargetMacros
	}

	RecomputeDayTotals(day)
	return fmt.Sprintf("Updated meal %q with: %s",
		meal.Name, strings.Join(changes.ChangedFields(), ", ")), nil
}

func (e *engine) addMeal(ctx context.Context, p *Plan, op Operation, tctx TargetContext) (string, error) {
	in, err := decodeNewData[NewMeal](op.NewData, op.Action)
	if err != nil {
		return "", err
	}
	if in.Name == "" {
		return "", fmt.Errorf("%w: add_meal requires a name", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}

	meal := Meal{
		Name:           in.Name,
		Time:           in.Time,
		TargetCalories: in.TargetCalories,
		TargetMacros:   in.TargetMacros,
	}
	for _, foodIn := range in.Foods {
		food, err := e.buildFood(ctx, foodIn)
		if err != nil {
			return "", err
		}
		meal.Foods = append(meal.Foods, food)
	}
	day.Meals = append(day.Meals, meal)

	RecomputeDayTotals(day)
	return fmt.Sprintf("Added meal %q with %d food(s)", meal.Name, len(meal.Foods)), nil
}

func (e *engine) removeMeal(p *Plan, op Operation, tctx TargetContext) (string, error) {
	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	mealIx, err := resolveMeal(day, op.Target)
	if err != nil {
		return "", err
	}

	name := day.Meals[mealIx].Name
	day.Meals = append(day.Meals[:mealIx], day.Meals[mealIx+1:]...)

	RecomputeDayTotals(day)
	return fmt.Sprintf("Removed meal %q", name), nil
}

func (e *engine) updateFood(p *Plan, op Operation, tctx TargetContext) (string, error) {
	changes, err := decodeChanges[FoodChanges](op.Changes, op.Action)
	if err != nil {
		return "", err
	}
	if changes.Empty() {
		return "", fmt.Errorf("%w: update_food with empty changes", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	mealIx, foodIxs, err := resolveFoods(day, op.Target)
	if err != nil {
		return "", err
	}

	var updated []string
	for _, foodIx := range foodIxs {
		food := &day.Meals[mealIx].Foods[foodIx]
		if changes.Name != nil {
			food.Name = *changes.Name
		}
		if changes.Unit != nil {
			food.Unit = *changes.Unit
		}
		if changes.Quantity != nil && *changes.Quantity != food.Quantity {
			food.Macros = RescaleMacros(food.Macros, food.Quantity, *changes.Quantity)
			food.Quantity = *changes.Quantity
		}
		if changes.Macros != nil {
			food.Macros = *changes.Macros
		}
		updated = append(updated, food.Name)
	}

	RecomputeDayTotals(day)
	return fmt.Sprintf("Updated food %q with: %s",
		strings.Join(updated, ", "), strings.Join(changes.ChangedFields(), ", ")), nil
}

func (e *engine) addFood(ctx context.Context, p *Plan, op Operation, tctx TargetContext) (string, error) {
	in, err := decodeNewData[NewFood](op.NewData, op.Action)
	if err != nil {
		return "", err
	}
	if in.Name == "" && in.FoodID == "" {
		return "", fmt.Errorf("%w: add_food requires a name or a catalog id", ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return "", fmt.Errorf("%w: add_food requires a positive quantity", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	mealIx, err := resolveMeal(day, op.Target)
	if err != nil {
		return "", err
	}

	food, err := e.buildFood(ctx, in)
	if err != nil {
		return "", err
	}
	day.Meals[mealIx].Foods = append(day.Meals[mealIx].Foods, food)

	RecomputeDayTotals(day)
	return fmt.Sprintf("Added food %q (%.0f%s) to meal %q",
		food.Name, food.Quantity, food.Unit, day.Meals[mealIx].Name), nil
}

// buildFood materializes a food entry, snapshotting macros from the catalog
// (by id first, then by name) when the payload carries none.
func (e *engine) buildFood(ctx context.Context, in NewFood) (MealFood, error) {
	food := MealFood{
		FoodID:   in.FoodID,
		Name:     in.Name,
		Quantity: in.Quantity,
		Unit:     in.Unit,
	}
	if food.Unit == "" {
		food.Unit = "g"
	}
	if in.Macros != nil {
		food.Macros = *in.Macros
		return food, nil
	}

	entry, err := e.lookupFood(ctx, in)
	if err != nil {
		// non-fatal: keep the caller-supplied values, macros stay zero
		log.Warnf("catalog lookup for food %q failed: %s", in.Name, err)
		return food, nil
	}

	food.FoodID = entry.ID
	if food.Name == "" {
		food.Name = entry.Name
	}
	if in.Unit == "" && entry.Unit != "" {
		food.Unit = entry.Unit
	}
	food.Macros = SnapshotMacros(entry.Calories, entry.Protein, entry.Carbs, entry.Fat, in.Quantity)
	return food, nil
}

func (e *engine) lookupFood(ctx context.Context, in NewFood) (*catalog.FoodEntry, error) {
	if e.catalog == nil {
		return nil, errors.New("no catalog configured")
	}
	if in.FoodID != "" {
		return e.catalog.GetFood(ctx, in.FoodID)
	}
	return e.catalog.FindFoodByName(ctx, in.Name)
}

func (e *engine) removeFood(p *Plan, op Operation, tctx TargetContext) (string, error) {
	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	mealIx, foodIxs, err := resolveFoods(day, op.Target)
	if err != nil {
		return "", err
	}

	meal := &day.Meals[mealIx]
	var removed []string
	for i := len(foodIxs) - 1; i >= 0; i-- {
		ix := foodIxs[i]
		removed = append(removed, meal.Foods[ix].Name)
		meal.Foods = append(meal.Foods[:ix], meal.Foods[ix+1:]...)
	}

	RecomputeDayTotals(day)
	return fmt.Sprintf("Removed food(s) from %q: %s", meal.Name, strings.Join(removed, ", ")), nil
}
