package workout

// Program is the root workout document: weeks -> days -> exercises -> set groups -> sets.
// The whole tree is persisted as a single JSONB column; the engine always
// receives a full in-memory copy and hands a full copy back to the repo.
type Program struct {
	Title string `json:"title,omitempty"`
	Notes string `json:"notes,omitempty"`
	Weeks []Week `json:"weeks"`
}

type Week struct {
	Focus string `json:"focus,omitempty"`
	Notes string `json:"notes,omitempty"`
	Days  []Day  `json:"days"`
}

type Day struct {
	Name      string     `json:"name,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

// exercise kinds - the zero value is a regular strength exercise
const (
	KindCardio = "cardio"
)

type Exercise struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Kind              string   `json:"kind,omitempty"`
	CatalogExerciseID string   `json:"catalogExerciseId,omitempty"`
	SupersetID        string   `json:"supersetId,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	Description       string   `json:"description,omitempty"`
	FormCues          string   `json:"formCues,omitempty"`
	Equipment         string   `json:"equipment,omitempty"`
	VideoURL          string   `json:"videoUrl,omitempty"`
	TypeLabel         string   `json:"typeLabel,omitempty"`
	RepRange          string   `json:"repRange,omitempty"`
	MuscleGroups      []string `json:"muscleGroups,omitempty"`

	SetGroups []SetGroup `json:"setGroups"`
}

// SetGroup is a template (BaseSet) plus the materialized Sets derived from it.
// Sets is a cache of BaseSet, never an independent source of truth: every
// base field change is copied into all entries, and len(Sets) always equals Count.
type SetGroup struct {
	ID      string `json:"id"`
	Count   int    `json:"count"`
	BaseSet Set    `json:"baseSet"`
	Sets    []Set  `json:"sets"`
}

type Set struct {
	SetNumber           int     `json:"setNumber,omitempty"`
	Reps                int     `json:"reps,omitempty"`
	RepsMax             int     `json:"repsMax,omitempty"`
	Weight              float64 `json:"weight,omitempty"`
	WeightMax           float64 `json:"weightMax,omitempty"`
	IntensityPercent    int     `json:"intensityPercent,omitempty"`
	IntensityPercentMax int     `json:"intensityPercentMax,omitempty"`
	RPE                 float64 `json:"rpe,omitempty"`
	RPEMax              float64 `json:"rpeMax,omitempty"`
	Rest                int     `json:"rest,omitempty"`
	Duration            int     `json:"duration,omitempty"`
	DistanceMeters      int     `json:"distanceMeters,omitempty"`
}

// Resize grows or truncates sg.Sets to match count, cloning BaseSet for new
// entries, and renumbers all sets 1..count.
func (sg *SetGroup) Resize(count int) {
	sg.Count = count
	switch {
	case len(sg.Sets) > count:
		sg.Sets = sg.Sets[:count]
	case len(sg.Sets) < count:
		for len(sg.Sets) < count {
			sg.Sets = append(sg.Sets, sg.BaseSet)
		}
	}
	sg.Renumber()
}

// Renumber assigns sequential 1-based set numbers.
func (sg *SetGroup) Renumber() {
	for i := range sg.Sets {
		sg.Sets[i].SetNumber = i + 1
	}
}
