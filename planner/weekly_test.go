package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LianHaeming/weekplan/models"
)

func TestGenerateExample(t *testing.T) {
	plan := Generate(models.Routine{Study: 2, Health: 1, Social: 1, Sleep: 7, Work: 3})

	mon, ok := plan.Day("Mon")
	require.True(t, ok)
	assert.Equal(t, models.DayPlan{Day: "Mon", Study: 2, Health: 1, Social: 1}, mon)

	sat, ok := plan.Day("Sat")
	require.True(t, ok)
	assert.Equal(t, models.DayPlan{Day: "Sat", Study: 3, Health: 1, Social: 2}, sat)
}

func TestGenerateShape(t *testing.T) {
	plan := Generate(models.DefaultRoutine())

	require.Equal(t, 7, plan.Len())
	for i, d := range plan.Days {
		assert.Equal(t, models.Weekdays[i], d.Day)
	}
}

// Walks the clamped input grid in quarter-hour steps.
func TestGenerateBroadcastRule(t *testing.T) {
	study := models.FieldBounds[models.CategoryStudy]
	health := models.FieldBounds[models.CategoryHealth]
	social := models.FieldBounds[models.CategorySocial]

	for s := study.Min; s <= study.Max; s += 0.25 {
		for h := health.Min; h <= health.Max; h += 0.5 {
			for so := social.Min; so <= social.Max; so += 0.5 {
				plan := Generate(models.Routine{Study: s, Health: h, Social: so})
				require.Equal(t, 7, plan.Len())

				for i, d := range plan.Days {
					assert.Equal(t, h, d.Health)
					if i < 5 {
						assert.Equal(t, s, d.Study)
						assert.Equal(t, so, d.Social)
					} else {
						assert.Equal(t, s+1, d.Study)
						assert.Equal(t, so+1, d.Social)
					}
				}
			}
		}
	}
}

func TestGenerateIgnoresUnusedFields(t *testing.T) {
	base := models.Routine{Study: 4, Health: 2, Social: 3, Sleep: 8, Work: 6}
	other := base
	other.Sleep = 4
	other.Work = 0
	other.Notes = "night shifts"
	other.Priorities = []models.Priority{models.PrioritySleep}

	assert.Equal(t, Generate(base), Generate(other))
}

func TestGenerateIsPure(t *testing.T) {
	r := models.Routine{Study: 5.5, Health: 0.75, Social: 9}
	first := Generate(r)
	second := Generate(r)
	assert.Equal(t, first, second)

	// mutating one result does not leak into the next
	first.Days[0].Study = 100
	assert.Equal(t, 5.5, Generate(r).Days[0].Study)
}

func TestGenerateNoPlausibilityCheck(t *testing.T) {
	plan := Generate(models.Routine{Study: 12, Health: 6, Social: 10, Sleep: 12, Work: 12})
	sun, ok := plan.Day("Sun")
	require.True(t, ok)
	assert.Equal(t, 13.0, sun.Study)
	assert.Equal(t, 11.0, sun.Social)
}
