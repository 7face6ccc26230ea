package models

// Priority is one of the fixed tags a user can pick on the form.
type Priority string

const (
	PriorityStudy  Priority = "Study"
	PriorityHealth Priority = "Health"
	PrioritySocial Priority = "Social Life"
	PrioritySleep  Priority = "Sleep"
	PriorityWork   Priority = "Work"
)

// AllPriorities is the multi-select option list, in display order.
var AllPriorities = [5]Priority{
	PriorityStudy,
	PriorityHealth,
	PrioritySocial,
	PrioritySleep,
	PriorityWork,
}

// DefaultPriorities returns the preselected tags.
func DefaultPriorities() []Priority {
	return []Priority{PriorityStudy, PriorityHealth}
}

// IsKnown reports whether p is one of AllPriorities.
func (p Priority) IsKnown() bool {
	for _, known := range AllPriorities {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePriorities keeps the known labels from raw in canonical order.
// Unknown labels and duplicates are dropped. The result is never nil.
func ParsePriorities(raw []string) []Priority {
	seen := make(map[Priority]bool, len(raw))
	for _, s := range raw {
		p := Priority(s)
		if p.IsKnown() {
			seen[p] = true
		}
	}
	out := make([]Priority, 0, len(seen))
	for _, p := range AllPriorities {
		if seen[p] {
			out = append(out, p)
		}
	}
	return out
}

// HasPriority reports whether p appears in list.
func HasPriority(list []Priority, p Priority) bool {
	for _, item := range list {
		if item == p {
			return true
		}
	}
	return false
}
