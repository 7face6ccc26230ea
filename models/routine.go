package models

import "math"

// Category names one of the five daily time allocations on the form.
type Category string

const (
	CategoryStudy  Category = "study"
	CategoryHealth Category = "health"
	CategorySocial Category = "social"
	CategorySleep  Category = "sleep"
	CategoryWork   Category = "work"
)

// Categories lists the form fields in display order.
var Categories = []Category{
	CategoryStudy,
	CategoryHealth,
	CategorySocial,
	CategorySleep,
	CategoryWork,
}

// Bounds is the accepted range and default for one hours field.
type Bounds struct {
	Label   string  `json:"label" yaml:"label"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Default float64 `json:"default" yaml:"default"`
}

// FieldBounds maps each category to the range its input widget enforces.
var FieldBounds = map[Category]Bounds{
	CategoryStudy:  {Label: "Study Hours", Min: 0, Max: 12, Default: 2},
	CategoryHealth: {Label: "Health Hours", Min: 0, Max: 6, Default: 1},
	CategorySocial: {Label: "Social Hours", Min: 0, Max: 10, Default: 1},
	CategorySleep:  {Label: "Sleep Hours", Min: 4, Max: 12, Default: 7},
	CategoryWork:   {Label: "Work/College Hours", Min: 0, Max: 12, Default: 3},
}

// Bounds returns the widget range for c.
func (c Category) Bounds() Bounds {
	return FieldBounds[c]
}

// Clamp forces v into [Min, Max]. NaN becomes the default.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return b.Default
	}
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Routine is one submission of the form.
//
// Sleep and Work are collected but do not influence the weekly table.
type Routine struct {
	Study      float64    `json:"study" yaml:"study"`
	Health     float64    `json:"health" yaml:"health"`
	Social     float64    `json:"social" yaml:"social"`
	Sleep      float64    `json:"sleep" yaml:"sleep"`
	Work       float64    `json:"work" yaml:"work"`
	Notes      string     `json:"notes" yaml:"notes"`
	Priorities []Priority `json:"priorities" yaml:"priorities"`
}

// DefaultRoutine returns the values the form shows before any submission.
func DefaultRoutine() Routine {
	return Routine{
		Study:      FieldBounds[CategoryStudy].Default,
		Health:     FieldBounds[CategoryHealth].Default,
		Social:     FieldBounds[CategorySocial].Default,
		Sleep:      FieldBounds[CategorySleep].Default,
		Work:       FieldBounds[CategoryWork].Default,
		Priorities: DefaultPriorities(),
	}
}

// Hours returns the value of a category field.
func (r Routine) Hours(c Category) float64 {
	switch c {
	case CategoryStudy:
		return r.Study
	case CategoryHealth:
		return r.Health
	case CategorySocial:
		return r.Social
	case CategorySleep:
		return r.Sleep
	case CategoryWork:
		return r.Work
	}
	return 0
}

// Clamped returns a copy with every hours field forced into its bounds.
func (r Routine) Clamped() Routine {
	r.Study = FieldBounds[CategoryStudy].Clamp(r.Study)
	r.Health = FieldBounds[CategoryHealth].Clamp(r.Health)
	r.Social = FieldBounds[CategorySocial].Clamp(r.Social)
	r.Sleep = FieldBounds[CategorySleep].Clamp(r.Sleep)
	r.Work = FieldBounds[CategoryWork].Clamp(r.Work)
	if r.Priorities != nil {
		r.Priorities = append([]Priority(nil), r.Priorities...)
	}
	return r
}
