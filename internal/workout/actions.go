package workout

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type ActionName string

const (
	ActionUpdateSetGroup ActionName = "update_setgroup"
	ActionAddSetGroup    ActionName = "add_setgroup"
	ActionRemoveSetGroup ActionName = "remove_setgroup"
	ActionUpdateExercise ActionName = "update_exercise"
	ActionAddExercise    ActionName = "add_exercise"
	ActionRemoveExercise ActionName = "remove_exercise"
	ActionAddSuperset    ActionName = "add_superset"
	ActionAddCardio      ActionName = "add_cardio"
)

// Operation is one modification request as it arrives over the wire (HTTP or
// MCP tool call). Changes/NewData stay raw until the action is known, then get
// decoded into the matching typed payload and validated before dispatch.
type Operation struct {
	Action  ActionName      `json:"action"`
	Target  Target          `json:"target"`
	Changes json.RawMessage `json:"changes,omitempty"`
	NewData json.RawMessage `json:"newData,omitempty"`
}

// SetGroupChanges are the updatable set group fields. Nil means "not provided";
// only provided fields are merged into the base set and propagated to the
// materialized sets.
type SetGroupChanges struct {
	Count               *int     `json:"count,omitempty"`
	Reps                *int     `json:"reps,omitempty"`
	RepsMax             *int     `json:"repsMax,omitempty"`
	Weight              *float64 `json:"weight,omitempty"`
	WeightMax           *float64 `json:"weightMax,omitempty"`
	IntensityPercent    *int     `json:"intensityPercent,omitempty"`
	IntensityPercentMax *int     `json:"intensityPercentMax,omitempty"`
	RPE                 *float64 `json:"rpe,omitempty"`
	RPEMax              *float64 `json:"rpeMax,omitempty"`
	Rest                *int     `json:"rest,omitempty"`
	Duration            *int     `json:"duration,omitempty"`
}

// ChangedFields returns the names of the provided fields, in a stable order,
// used for the user-facing result message.
func (c SetGroupChanges) ChangedFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("count", c.Count != nil)
	add("reps", c.Reps != nil)
	add("repsMax", c.RepsMax != nil)
	add("weight", c.Weight != nil)
	add("weightMax", c.WeightMax != nil)
	add("intensityPercent", c.IntensityPercent != nil)
	add("intensityPercentMax", c.IntensityPercentMax != nil)
	add("rpe", c.RPE != nil)
	add("rpeMax", c.RPEMax != nil)
	add("rest", c.Rest != nil)
	add("duration", c.Duration != nil)
	return fields
}

func (c SetGroupChanges) Empty() bool {
	return len(c.ChangedFields()) == 0
}

// ExerciseChanges are the updatable descriptive exercise fields.
type ExerciseChanges struct {
	Name         *string  `json:"name,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Description  *string  `json:"description,omitempty"`
	FormCues     *string  `json:"formCues,omitempty"`
	Equipment    *string  `json:"equipment,omitempty"`
	VideoURL     *string  `json:"videoUrl,omitempty"`
	TypeLabel    *string  `json:"typeLabel,omitempty"`
	RepRange     *string  `json:"repRange,omitempty"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
}

func (c ExerciseChanges) ChangedFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("name", c.Name != nil)
	add("notes", c.Notes != nil)
	add("description", c.Description != nil)
	add("formCues", c.FormCues != nil)
	add("equipment", c.Equipment != nil)
	add("videoUrl", c.VideoURL != nil)
	add("typeLabel", c.TypeLabel != nil)
	add("repRange", c.RepRange != nil)
	add("muscleGroups", c.MuscleGroups != nil)
	return fields
}

func (c ExerciseChanges) Empty() bool {
	return len(c.ChangedFields()) == 0
}

// NewSetGroup is the payload shape for added set groups: a partial base set
// plus an optional count. Omitted values get the defaults (3 sets, 10 reps,
// 90s rest, 70% intensity).
type NewSetGroup struct {
	Count   *int  `json:"count,omitempty"`
	BaseSet *Set  `json:"baseSet,omitempty"`
	Sets    []Set `json:"sets,omitempty"`
}

// NewExercise is the payload for add_exercise (and each superset member).
type NewExercise struct {
	Name              string        `json:"name"`
	CatalogExerciseID string        `json:"catalogExerciseId,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	Description       string        `json:"description,omitempty"`
	FormCues          string        `json:"formCues,omitempty"`
	Equipment         string        `json:"equipment,omitempty"`
	VideoURL          string        `json:"videoUrl,omitempty"`
	TypeLabel         string        `json:"typeLabel,omitempty"`
	RepRange          string        `json:"repRange,omitempty"`
	MuscleGroups      []string      `json:"muscleGroups,omitempty"`
	SetGroups         []NewSetGroup `json:"setGroups"`
}

// NewSuperset is the payload for add_superset: two or more exercises performed
// back to back, sharing a generated superset id and the block rest time.
type NewSuperset struct {
	Exercises []NewExercise `json:"exercises"`
	Rest      *int          `json:"rest,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

// NewCardio is the payload for add_cardio.
type NewCardio struct {
	Name             string `json:"name"`
	DurationSeconds  int    `json:"durationSeconds,omitempty"`
	DistanceMeters   int    `json:"distanceMeters,omitempty"`
	IntensityPercent int    `json:"intensityPercent,omitempty"`
	Notes            string `json:"notes,omitempty"`
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

// parseRepRange parses a display rep range like "6-8" (or a plain "12") into
// min/max reps. Used as the fallback when an added set group omits reps.
func parseRepRange(repRange string) (reps, repsMax int, ok bool) {
	repRange = strings.TrimSpace(repRange)
	if repRange == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(repRange, "-", 2)
	reps, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || reps <= 0 {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return reps, 0, true
	}
	repsMax, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || repsMax < reps {
		return reps, 0, true
	}
	return reps, repsMax, true
}
