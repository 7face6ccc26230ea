package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriorities(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []Priority
	}{
		{"nil", nil, []Priority{}},
		{"canonical order", []string{"Work", "Study"}, []Priority{PriorityStudy, PriorityWork}},
		{"drops unknown", []string{"Gaming", "Sleep"}, []Priority{PrioritySleep}},
		{"drops duplicates", []string{"Health", "Health"}, []Priority{PriorityHealth}},
		{"case sensitive", []string{"study"}, []Priority{}},
		{"all", []string{"Social Life", "Work", "Sleep", "Health", "Study"}, AllPriorities[:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePriorities(tt.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultPrioritiesFresh(t *testing.T) {
	a := DefaultPriorities()
	a[0] = PriorityWork
	assert.Equal(t, PriorityStudy, DefaultPriorities()[0])
}

func TestHasPriority(t *testing.T) {
	list := []Priority{PriorityHealth}
	assert.True(t, HasPriority(list, PriorityHealth))
	assert.False(t, HasPriority(list, PriorityStudy))
	assert.False(t, HasPriority(nil, PriorityStudy))
}

func TestIsWeekend(t *testing.T) {
	for _, d := range Weekdays {
		assert.Equal(t, d == "Sat" || d == "Sun", IsWeekend(d), d)
	}
}
