// Package planner turns a submitted routine into the weekly table.
package planner

import "github.com/LianHaeming/weekplan/models"

// WeekendBonus is added to study and social hours on Sat and Sun.
const WeekendBonus = 1.0

// Generate builds the seven-row plan for r.
//
// Health is repeated unchanged on every day. Study and social get
// WeekendBonus on the weekend. Sleep, work, notes and priorities are not
// read. The result depends only on r.
func Generate(r models.Routine) models.WeeklyPlan {
	days := make([]models.DayPlan, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		row := models.DayPlan{
			Day:    day,
			Study:  r.Study,
			Health: r.Health,
			Social: r.Social,
		}
		if models.IsWeekend(day) {
			row.Study += WeekendBonus
			row.Social += WeekendBonus
		}
		days = append(days, row)
	}
	return models.WeeklyPlan{Days: days}
}
