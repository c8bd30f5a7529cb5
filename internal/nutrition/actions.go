package nutrition

import (
	"encoding/json"
	"fmt"
)

type ActionName string

const (
	ActionUpdateMeal ActionName = "update_meal"
	ActionAddMeal    ActionName = "add_meal"
	ActionRemoveMeal ActionName = "remove_meal"
	ActionUpdateFood ActionName = "update_food"
	ActionAddFood    ActionName = "add_food"
	ActionRemoveFood ActionName = "remove_food"
)

// Operation is one modification request. Changes/NewData get decoded into the
// typed payload of the action and validated before dispatch.
type Operation struct {
	Action  ActionName      `json:"action"`
	Target  Target          `json:"target"`
	Changes json.RawMessage `json:"changes,omitempty"`
	NewData json.RawMessage `json:"newData,omitempty"`
}

// MealChanges are the updatable meal fields; nil means "not provided".
type MealChanges struct {
	Name           *string `json:"name,omitempty"`
	Time           *string `json:"time,omitempty"`
	TargetCalories *int    `json:"targetCalories,omitempty"`
	TargetMacros   *Macros `json:"targetMacros,omitempty"`
}

func (c MealChanges) ChangedFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("name", c.Name != nil)
	add("time", c.Time != nil)
	add("targetCalories", c.TargetCalories != nil)
	add("targetMacros", c.TargetMacros != nil)
	return fields
}

func (c MealChanges) Empty() bool {
	return len(c.ChangedFields()) == 0
}

// FoodChanges are the updatable food fields. A quantity change triggers the
// proportional macro rescale; explicit macros override the snapshot entirely.
type FoodChanges struct {
	Name     *string     `json:"name,omitempty"`
	Quantity *float64    `json:"quantity,omitempty"`
	Unit     *string     `json:"unit,omitempty"`
	Macros   *FoodMacros `json:"macros,omitempty"`
}

func (c FoodChanges) ChangedFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("name", c.Name != nil)
	add("quantity", c.Quantity != nil)
	add("unit", c.Unit != nil)
	add("macros", c.Macros != nil)
	return fields
}

func (c FoodChanges) Empty() bool {
	return len(c.ChangedFields()) == 0
}

// NewFood is the payload for add_food. When Macros is nil the snapshot is
// taken from the catalog (by id, or resolved by name) scaled to the quantity.
type NewFood struct {
	FoodID   string      `json:"foodId,omitempty"`
	Name     string      `json:"name"`
	Quantity float64     `json:"quantity"`
	Unit     string      `json:"unit,omitempty"`
	Macros   *FoodMacros `json:"macros,omitempty"`
}

// NewMeal is the payload for add_meal.
type NewMeal struct {
	Name           string    `json:"name"`
	Time           string    `json:"time,omitempty"`
	TargetCalories int       `json:"targetCalories,omitempty"`
	TargetMacros   Macros    `json:"targetMacros,omitempty"`
	Foods          []NewFood `json:"foods,omitempty"`
}

func decodeChanges[T any](raw json.RawMessage, action ActionName) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, fmt.Errorf("%w: %s requires changes", ErrInvalidInput, action)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: decode %s changes: %s", ErrInvalidInput, action, err)
	}
	return out, nil
}

func decodeNewData[T any](raw json.RawMessage, action ActionName) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, fmt.Errorf("%w: %s requires newData", ErrInvalidInput, action)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: decode %s newData: %s", ErrInvalidInput, action, err)
	}
	return out, nil
}
