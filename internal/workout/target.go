package workout

import (
	"fmt"
	"strings"
)

// Target locates a position in the program tree, by index and/or fuzzy
// exercise name. Omitted week/day indexes fall back to the TargetContext
// defaults, then to 0.
type Target struct {
	WeekIndex     *int   `json:"weekIndex,omitempty"`
	DayIndex      *int   `json:"dayIndex,omitempty"`
	ExerciseIndex *int   `json:"exerciseIndex,omitempty"`
	ExerciseName  string `json:"exerciseName,omitempty"`
	SetgroupIndex *int   `json:"setgroupIndex,omitempty"`
	AllMatching   bool   `json:"allMatching,omitempty"`
}

// TargetContext carries the caller-side defaults (e.g. the week/day currently
// open in the coaching UI). Always passed explicitly, never ambient state.
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

// resolveDay resolves the week and day of the target and returns the day
// along with its indexes. Out-of-range indexes fail with ErrTargetNotFound.
func resolveDay(p *Program, t Target, tctx TargetContext) (weekIx, dayIx int, day *Day, err error) {
	weekIx = defaultIndex(t.WeekIndex, tctx.DefaultWeekIndex)
	if weekIx < 0 || weekIx >= len(p.Weeks) {
		return 0, 0, nil, fmt.Errorf("%w: week %d (program has %d weeks)", ErrTargetNotFound, weekIx, len(p.Weeks))
	}
	week := &p.Weeks[weekIx]

	dayIx = defaultIndex(t.DayIndex, tctx.DefaultDayIndex)
	if dayIx < 0 || dayIx >= len(week.Days) {
		return 0, 0, nil, fmt.Errorf("%w: day %d (week %d has %d days)", ErrTargetNotFound, dayIx, weekIx, len(week.Days))
	}
	return weekIx, dayIx, &week.Days[dayIx], nil
}

// resolveExercises returns the indexes of the targeted exercises within the day.
// An explicit index wins over a name; a name does a case-insensitive substring
// match, first hit in array order (all hits when AllMatching is set).
func resolveExercises(day *Day, t Target) ([]int, error) {
	if t.ExerciseIndex != nil {
		ix := *t.ExerciseIndex
		if ix < 0 || ix >= len(day.Exercises) {
			return nil, fmt.Errorf("%w: exercise %d (day has %d exercises)", ErrTargetNotFound, ix, len(day.Exercises))
		}
		return []int{ix}, nil
	}

	if t.ExerciseName == "" {
		return nil, ErrMissingTarget
	}

	needle := strings.ToLower(t.ExerciseName)
	var matches []int
	for i := range day.Exercises {
		if strings.Contains(strings.ToLower(day.Exercises[i].Name), needle) {
			if !t.AllMatching {
				return []int{i}, nil
			}
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no exercise matching %q", ErrTargetNotFound, t.ExerciseName)
	}
	return matches, nil
}
