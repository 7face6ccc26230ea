package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsClamp(t *testing.T) {
	b := FieldBounds[CategorySleep]

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below min", 1, 4},
		{"at min", 4, 4},
		{"inside", 7.5, 7.5},
		{"at max", 12, 12},
		{"above max", 30, 12},
		{"nan uses default", math.NaN(), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Clamp(tt.in))
		})
	}
}

func TestFieldBoundsMatchWidgets(t *testing.T) {
	require.Len(t, FieldBounds, len(Categories))

	assert.Equal(t, Bounds{Label: "Study Hours", Min: 0, Max: 12, Default: 2}, FieldBounds[CategoryStudy])
	assert.Equal(t, Bounds{Label: "Health Hours", Min: 0, Max: 6, Default: 1}, FieldBounds[CategoryHealth])
	assert.Equal(t, Bounds{Label: "Social Hours", Min: 0, Max: 10, Default: 1}, FieldBounds[CategorySocial])
	assert.Equal(t, Bounds{Label: "Sleep Hours", Min: 4, Max: 12, Default: 7}, FieldBounds[CategorySleep])
	assert.Equal(t, Bounds{Label: "Work/College Hours", Min: 0, Max: 12, Default: 3}, FieldBounds[CategoryWork])
}

func TestCategoryBounds(t *testing.T) {
	for _, c := range Categories {
		b := c.Bounds()
		assert.Equal(t, FieldBounds[c], b, string(c))
		assert.NotEmpty(t, b.Label, string(c))
		assert.Less(t, b.Min, b.Max, string(c))
	}
}

func TestDefaultRoutine(t *testing.T) {
	r := DefaultRoutine()
	assert.Equal(t, 2.0, r.Study)
	assert.Equal(t, 1.0, r.Health)
	assert.Equal(t, 1.0, r.Social)
	assert.Equal(t, 7.0, r.Sleep)
	assert.Equal(t, 3.0, r.Work)
	assert.Empty(t, r.Notes)
	assert.Equal(t, []Priority{PriorityStudy, PriorityHealth}, r.Priorities)
}

func TestRoutineClamped(t *testing.T) {
	r := Routine{Study: 20, Health: -1, Social: 10, Sleep: 0, Work: 12.5, Notes: "busy", Priorities: []Priority{PrioritySleep}}
	c := r.Clamped()

	assert.Equal(t, 12.0, c.Study)
	assert.Equal(t, 0.0, c.Health)
	assert.Equal(t, 10.0, c.Social)
	assert.Equal(t, 4.0, c.Sleep)
	assert.Equal(t, 12.0, c.Work)
	assert.Equal(t, "busy", c.Notes)

	// original untouched, priorities not aliased
	assert.Equal(t, 20.0, r.Study)
	c.Priorities[0] = PriorityWork
	assert.Equal(t, PrioritySleep, r.Priorities[0])
}

func TestRoutineHours(t *testing.T) {
	r := Routine{Study: 1, Health: 2, Social: 3, Sleep: 4, Work: 5}
	for i, c := range Categories {
		assert.Equal(t, float64(i+1), r.Hours(c), string(c))
	}
	assert.Zero(t, r.Hours(Category("other")))
}
