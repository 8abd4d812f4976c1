package requirements

// ValidationStatus summarizes completion of a resolved requirement set.
// It is a derived view recomputed on every upload or context change,
// never persisted.
type ValidationStatus struct {
	IsComplete          bool               `json:"is_complete"`
	SatisfiedGroupCount int                `json:"satisfied_group_count"`
	TotalGroupCount     int                `json:"total_group_count"`
	MissingGroups       []RequirementGroup `json:"missing_groups"`
}

// IsGroupSatisfied reports whether the uploaded set satisfies one group.
// ANY_ONE: any upload from the group counts, regardless of per-requirement
// Required flags. ALL_REQUIRED: every Required requirement must be
// uploaded; optional requirements never block. A group with zero
// requirements is vacuously satisfied.
func IsGroupSatisfied(group RequirementGroup, uploaded map[string]bool) bool {
	if len(group.Requirements) == 0 {
		return true
	}

	if group.SatisfactionMode == AnyOne {
		for _, req := range group.Requirements {
			if uploaded[req.Type] {
				return true
			}
		}
		return false
	}

	for _, req := range group.Requirements {
		if req.IsRequired() && !uploaded[req.Type] {
			return false
		}
	}
	return true
}

// Status evaluates every group in order against the uploaded set. Zero
// groups means nothing is required, so the status is complete.
func Status(groups []RequirementGroup, uploaded map[string]bool) ValidationStatus {
	status := ValidationStatus{
		TotalGroupCount: len(groups),
		MissingGroups:   []RequirementGroup{},
	}

	for _, g := range groups {
		if IsGroupSatisfied(g, uploaded) {
			status.SatisfiedGroupCount++
		} else {
			status.MissingGroups = append(status.MissingGroups, g)
		}
	}

	status.IsComplete = len(status.MissingGroups) == 0
	return status
}
