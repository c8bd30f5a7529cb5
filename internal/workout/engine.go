package workout

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/coachbit/backend/internal/catalog"
)

// catalogResolver translates a free-text exercise name into a catalog entry
// with canonical metadata. Lookups are best-effort: a failure degrades to the
// caller-supplied data and never fails the edit.
type catalogResolver interface {
	FindExerciseByName(ctx context.Context, name string) (*catalog.ExerciseEntry, error)
}

// engine applies one operation at a time to an in-memory program tree.
// It owns no persistence: the orchestrator (Service) loads and saves.
type engine struct {
	catalog catalogResolver
	newID   func() string
}

// apply dispatches the operation to the matching action handler and returns
// the user-facing result message. A failed operation leaves the tree
// untouched at its target path.
func (e *engine) apply(ctx context.Context, p *Program, op Operation, tctx TargetContext) (string, error) {
	switch op.Action {
	case ActionUpdateSetGroup:
		return e.updateSetGroup(p, op, tctx)
	case ActionAddSetGroup:
		return e.addSetGroup(p, op, tctx)
	case ActionRemoveSetGroup:
		return e.removeSetGroup(p, op, tctx)
	case ActionUpdateExercise:
		return e.updateExercise(p, op, tctx)
	case ActionAddExercise:
		return e.addExercise(ctx, p, op, tctx)
	case ActionRemoveExercise:
		return e.removeExercise(p, op, tctx)
	case ActionAddSuperset:
		return e.addSuperset(ctx, p, op, tctx)
	case ActionAddCardio:
		return e.addCardio(p, op, tctx)
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidInput, op.Action)
	}
}

func setgroupIndex(t Target) int {
	if t.SetgroupIndex != nil {
		return *t.SetgroupIndex
	}
	return 0
}

func (e *engine) updateSetGroup(p *Program, op Operation, tctx TargetContext) (string, error) {
	changes, err := decodeChanges[SetGroupChanges](op.Changes, op.Action)
	if err != nil {
		return "", err
	}
	if changes.Empty() {
		return "", fmt.Errorf("%w: update_setgroup with empty changes", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	exIxs, err := resolveExercises(day, op.Target)
	if err != nil {
		return "", err
	}

	// validate every match first, a bad index must not leave earlier
	// matches already mutated
	sgIx := setgroupIndex(op.Target)
	for _, exIx := range exIxs {
		ex := &day.Exercises[exIx]
		if sgIx < 0 || sgIx >= len(ex.SetGroups) {
			return "", fmt.Errorf("%w: setgroup %d of %q (exercise has %d)", ErrTargetNotFound, sgIx, ex.Name, len(ex.SetGroups))
		}
	}

	var updated []string
	for _, exIx := range exIxs {
		ex := &day.Exercises[exIx]
		applySetGroupChanges(&ex.SetGroups[sgIx], changes)
		updated = append(updated, ex.Name)
	}

	return fmt.Sprintf("Updated setgroup %d of %q with: %s",
		sgIx, strings.Join(updated, ", "), strings.Join(changes.ChangedFields(), ", ")), nil
}

func (e *engine) addSetGroup(p *Program, op Operation, tctx TargetContext) (string, error) {
	var in NewSetGroup
	if len(op.NewData) > 0 {
		decoded, err := decodeNewData[NewSetGroup](op.NewData, op.Action)
		if err != nil {
			return "", err
		}
		in = decoded
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	exIxs, err := resolveExercises(day, op.Target)
	if err != nil {
		return "", err
	}

	ex := &day.Exercises[exIxs[0]]
	sg := materializeSetGroup(e.newID(), in, ex.RepRange)
	ex.SetGroups = append(ex.SetGroups, sg)

	return fmt.Sprintf("Added setgroup to %q (%d sets)", ex.Name, sg.Count), nil
}

func (e *engine) removeSetGroup(p *Program, op Operation, tctx TargetContext) (string, error) {
	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	exIxs, err := resolveExercises(day, op.Target)
	if err != nil {
		return "", err
	}

	ex := &day.Exercises[exIxs[0]]
	sgIx := setgroupIndex(op.Target)
	if sgIx < 0 || sgIx >= len(ex.SetGroups) {
		return "", fmt.Errorf("%w: setgroup %d of %q (exercise has %d)", ErrTargetNotFound, sgIx, ex.Name, len(ex.SetGroups))
	}
	ex.SetGroups = append(ex.SetGroups[:sgIx], ex.SetGroups[sgIx+1:]...)

	return fmt.Sprintf("Removed setgroup %d of %q", sgIx, ex.Name), nil
}

func (e *engine) updateExercise(p *Program, op Operation, tctx TargetContext) (string, error) {
	changes, err := decodeChanges[ExerciseChanges](op.Changes, op.Action)
	if err != nil {
		return "", err
	}
	if changes.Empty() {
		return "", fmt.Errorf("%w: update_exercise with empty changes", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	exIxs, err := resolveExercises(day, op.Target)
	if err != nil {
		return "", err
	}

	var updated []string
	for _, exIx := range exIxs {
		ex := &day.Exercises[exIx]
		if changes.Name != nil {
			ex.Name = *changes.Name
		}
		if changes.Notes != nil {
			ex.Notes = *changes.Notes
		}
		if changes.Description != nil {
			ex.Description = *changes.Description
		}
		if changes.FormCues != nil {
			ex.FormCues = *changes.FormCues
		}
		if changes.Equipment != nil {
			ex.Equipment = *changes.Equipment
		}
		if changes.VideoURL != nil {
			ex.VideoURL = *changes.VideoURL
		}
		if changes.TypeLabel != nil {
			ex.TypeLabel = *changes.TypeLabel
		}
		if changes.RepRange != nil {
			ex.RepRange = *changes.RepRange
		}
		if changes.MuscleGroups != nil {
			ex.MuscleGroups = changes.MuscleGroups
		}
		updated = append(updated, ex.Name)
	}

	return fmt.Sprintf("Updated %q with: %s",
		strings.Join(updated, ", "), strings.Join(changes.ChangedFields(), ", ")), nil
}

func (e *engine) addExercise(ctx context.Context, p *Program, op Operation, tctx TargetContext) (string, error) {
	in, err := decodeNewData[NewExercise](op.NewData, op.Action)
	if err != nil {
		return "", err
	}
	if len(in.SetGroups) == 0 {
		return "", fmt.Errorf("%w: add_exercise requires at least one set group", ErrInvalidInput)
	}
	if in.Name == "" && in.CatalogExerciseID == "" {
		return "", fmt.Errorf("%w: add_exercise requires a name or a catalog id", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}

	ex := e.buildExercise(ctx, in)
	day.Exercises = append(day.Exercises, ex)

	return fmt.Sprintf("Added exercise %q with %d setgroup(s)", ex.Name, len(ex.SetGroups)), nil
}

// buildExercise materializes an exercise from its add payload: catalog
// resolution by name (best effort), rep range fallback, sets cloned per group.
func (e *engine) buildExercise(ctx context.Context, in NewExercise) Exercise {
	ex := Exercise{
		ID:                e.newID(),
		Name:              in.Name,
		CatalogExerciseID: in.CatalogExerciseID,
		Notes:             in.Notes,
		Description:       in.Description,
		FormCues:          in.FormCues,
		Equipment:         in.Equipment,
		VideoURL:          in.VideoURL,
		TypeLabel:         in.TypeLabel,
		RepRange:          in.RepRange,
		MuscleGroups:      in.MuscleGroups,
	}

	if ex.CatalogExerciseID == "" && e.catalog != nil {
		entry, err := e.catalog.FindExerciseByName(ctx, in.Name)
		switch {
		case err != nil:
			// non-fatal: keep the caller-supplied metadata
			log.Warnf("catalog lookup for %q failed: %s", in.Name, err)
		case entry != nil:
			ex.CatalogExerciseID = entry.ID
			ex.Name = entry.Name
			if len(entry.MuscleGroups) > 0 {
				ex.MuscleGroups = entry.MuscleGroups
			}
			if ex.Equipment == "" {
				ex.Equipment = entry.Equipment
			}
			if ex.TypeLabel == "" {
				ex.TypeLabel = entry.Category
			}
		}
	}

	for _, sgIn := range in.SetGroups {
		ex.SetGroups = append(ex.SetGroups, materializeSetGroup(e.newID(), sgIn, in.RepRange))
	}
	return ex
}

func (e *engine) removeExercise(p *Program, op Operation, tctx TargetContext) (string, error) {
	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}
	exIxs, err := resolveExercises(day, op.Target)
	if err != nil {
		return "", err
	}

	var removed []string
	// splice from the back so earlier indexes stay valid
	for i := len(exIxs) - 1; i >= 0; i-- {
		ix := exIxs[i]
		removed = append(removed, day.Exercises[ix].Name)
		day.Exercises = append(day.Exercises[:ix], day.Exercises[ix+1:]...)
	}

	return fmt.Sprintf("Removed exercise(s): %s", strings.Join(removed, ", ")), nil
}

func (e *engine) addSuperset(ctx context.Context, p *Program, op Operation, tctx TargetContext) (string, error) {
	in, err := decodeNewData[NewSuperset](op.NewData, op.Action)
	if err != nil {
		return "", err
	}
	if len(in.Exercises) < 2 {
		return "", fmt.Errorf("%w: add_superset requires at least two exercises", ErrInvalidInput)
	}
	for i := range in.Exercises {
		if len(in.Exercises[i].SetGroups) == 0 {
			return "", fmt.Errorf("%w: superset exercise %q has no set groups", ErrInvalidInput, in.Exercises[i].Name)
		}
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}

	supersetID := e.newID()
	var names []string
	for _, exIn := range in.Exercises {
		ex := e.buildExercise(ctx, exIn)
		ex.SupersetID = supersetID
		if in.Rest != nil {
			for sgIx := range ex.SetGroups {
				rest := *in.Rest
				ex.SetGroups[sgIx].BaseSet.Rest = rest
				for i := range ex.SetGroups[sgIx].Sets {
					ex.SetGroups[sgIx].Sets[i].Rest = rest
				}
			}
		}
		if in.Notes != "" && ex.Notes == "" {
			ex.Notes = in.Notes
		}
		day.Exercises = append(day.Exercises, ex)
		names = append(names, ex.Name)
	}

	return fmt.Sprintf("Added superset: %s", strings.Join(names, " + ")), nil
}

func (e *engine) addCardio(p *Program, op Operation, tctx TargetContext) (string, error) {
	in, err := decodeNewData[NewCardio](op.NewData, op.Action)
	if err != nil {
		return "", err
	}
	if in.Name == "" {
		return "", fmt.Errorf("%w: add_cardio requires a name", ErrInvalidInput)
	}
	if in.DurationSeconds <= 0 && in.DistanceMeters <= 0 {
		return "", fmt.Errorf("%w: add_cardio requires a duration or a distance", ErrInvalidInput)
	}

	_, _, day, err := resolveDay(p, op.Target, tctx)
	if err != nil {
		return "", err
	}

	sg := SetGroup{
		ID:    e.newID(),
		Count: 1,
		BaseSet: Set{
			Duration:         in.DurationSeconds,
			DistanceMeters:   in.DistanceMeters,
			IntensityPercent: in.IntensityPercent,
		},
	}
	sg.Resize(1)

	day.Exercises = append(day.Exercises, Exercise{
		ID:        e.newID(),
		Name:      in.Name,
		Kind:      KindCardio,
		Notes:     in.Notes,
		SetGroups: []SetGroup{sg},
	})

	return fmt.Sprintf("Added cardio %q", in.Name), nil
}
