package models

// Weekdays are the row labels of a weekly plan, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsWeekend reports whether the day label is Sat or Sun.
func IsWeekend(day string) bool {
	return day == "Sat" || day == "Sun"
}

// DayPlan is one row of the weekly table.
type DayPlan struct {
	Day    string  `json:"day" yaml:"day"`
	Study  float64 `json:"studyHours" yaml:"study_hours"`
	Health float64 `json:"healthHours" yaml:"health_hours"`
	Social float64 `json:"socialHours" yaml:"social_hours"`
}

// WeeklyPlan is the generated seven-row table.
type WeeklyPlan struct {
	Days []DayPlan `json:"days" yaml:"days"`
}

// Len returns the number of rows.
func (p WeeklyPlan) Len() int {
	return len(p.Days)
}

// Day returns the row for a label, or false if absent.
func (p WeeklyPlan) Day(label string) (DayPlan, bool) {
	for _, d := range p.Days {
		if d.Day == label {
			return d, true
		}
	}
	return DayPlan{}, false
}

// ColumnHeaders are the table headings shown to the user.
var ColumnHeaders = [4]string{"Day", "Study Hours", "Health Hours", "Social Hours"}
