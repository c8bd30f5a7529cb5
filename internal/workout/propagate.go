package workout

const (
	defaultSetGroupCount    = 3
	defaultReps             = 10
	defaultRestSeconds      = 90
	defaultIntensityPercent = 70
)

// applySetGroupChanges merges the provided fields into the base set, resizes
// the materialized sets when count changed, and mirrors every changed base
// field into all set entries. Sets are a derived cache of the base set, so
// they must never drift from it.
func applySetGroupChanges(sg *SetGroup, c SetGroupChanges) {
	if c.Reps != nil {
		sg.BaseSet.Reps = *c.Reps
	}
	if c.RepsMax != nil {
		sg.BaseSet.RepsMax = *c.RepsMax
	}
	if c.Weight != nil {
		sg.BaseSet.Weight = *c.Weight
	}
	if c.WeightMax != nil {
		sg.BaseSet.WeightMax = *c.WeightMax
	}
	if c.IntensityPercent != nil {
		sg.BaseSet.IntensityPercent = *c.IntensityPercent
	}
	if c.IntensityPercentMax != nil {
		sg.BaseSet.IntensityPercentMax = *c.IntensityPercentMax
	}
	if c.RPE != nil {
		sg.BaseSet.RPE = *c.RPE
	}
	if c.RPEMax != nil {
		sg.BaseSet.RPEMax = *c.RPEMax
	}
	if c.Rest != nil {
		sg.BaseSet.Rest = *c.Rest
	}
	if c.Duration != nil {
		sg.BaseSet.Duration = *c.Duration
	}

	if c.Count != nil {
		sg.Resize(*c.Count)
	}

	propagateBaseSet(sg, c)
	sg.Renumber()
}

// propagateBaseSet copies the changed base set fields into every materialized set.
func propagateBaseSet(sg *SetGroup, c SetGroupChanges) {
	for i := range sg.Sets {
		if c.Reps != nil {
			sg.Sets[i].Reps = sg.BaseSet.Reps
		}
		if c.RepsMax != nil {
			sg.Sets[i].RepsMax = sg.BaseSet.RepsMax
		}
		if c.Weight != nil {
			sg.Sets[i].Weight = sg.BaseSet.Weight
		}
		if c.WeightMax != nil {
			sg.Sets[i].WeightMax = sg.BaseSet.WeightMax
		}
		if c.IntensityPercent != nil {
			sg.Sets[i].IntensityPercent = sg.BaseSet.IntensityPercent
		}
		if c.IntensityPercentMax != nil {
			sg.Sets[i].IntensityPercentMax = sg.BaseSet.IntensityPercentMax
		}
		if c.RPE != nil {
			sg.Sets[i].RPE = sg.BaseSet.RPE
		}
		if c.RPEMax != nil {
			sg.Sets[i].RPEMax = sg.BaseSet.RPEMax
		}
		if c.Rest != nil {
			sg.Sets[i].Rest = sg.BaseSet.Rest
		}
		if c.Duration != nil {
			sg.Sets[i].Duration = sg.BaseSet.Duration
		}
	}
}

// materializeSetGroup turns an add payload into a full set group: defaults
// applied, sets cloned from the base set, numbers assigned. The exercise rep
// range string is the reps fallback when the payload base set has none.
func materializeSetGroup(id string, in NewSetGroup, repRange string) SetGroup {
	var base Set
	if in.BaseSet != nil {
		base = *in.BaseSet
	}
	if base.Rest == 0 {
		base.Rest = defaultRestSeconds
	}
	if base.IntensityPercent == 0 {
		base.IntensityPercent = defaultIntensityPercent
	}
	if base.Reps == 0 {
		if reps, repsMax, ok := parseRepRange(repRange); ok {
			base.Reps = reps
			base.RepsMax = repsMax
		} else {
			base.Reps = defaultReps
		}
	}
	base.SetNumber = 0

	count := defaultSetGroupCount
	if in.Count != nil && *in.Count > 0 {
		count = *in.Count
	}

	sg := SetGroup{
		ID:      id,
		Count:   count,
		BaseSet: base,
	}
	if len(in.Sets) > 0 {
		sg.Sets = append(sg.Sets, in.Sets...)
		sg.Count = len(in.Sets)
		sg.Renumber()
		return sg
	}
	sg.Resize(count)
	return sg
}
