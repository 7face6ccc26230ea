package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/LianHaeming/weekplan/models"
	"github.com/LianHaeming/weekplan/planner"
)

// HandleGeneratePlan handles the form's Generate Plan button.
func (d *Deps) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	routine, err := parseRoutineForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan := planner.Generate(routine)
	advice := d.Advisor.Suggest(r.Context(), routine.Notes)

	d.Logger.Info("weekly plan generated",
		zap.String("requestId", RequestID(r.Context())),
		zap.Int("priorities", len(routine.Priorities)),
		zap.Bool("advice", advice.OK()))

	data := newPlanPageData(routine)
	data.Plan = &plan
	data.Advice = advice
	d.render(w, r, "index.html", data)
}

// parseRoutineForm reads the submitted form. Missing numbers fall back to
// the widget default and every number is clamped to its widget range.
func parseRoutineForm(r *http.Request) (models.Routine, error) {
	routine := models.DefaultRoutine()

	for _, c := range models.Categories {
		raw := strings.TrimSpace(r.PostForm.Get(string(c)))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Routine{}, fmt.Errorf("%s must be a number", c.Bounds().Label)
		}
		switch c {
		case models.CategoryStudy:
			routine.Study = v
		case models.CategoryHealth:
			routine.Health = v
		case models.CategorySocial:
			routine.Social = v
		case models.CategorySleep:
			routine.Sleep = v
		case models.CategoryWork:
			routine.Work = v
		}
	}

	routine.Notes = r.PostForm.Get("notes")
	// An empty multi-select submits nothing, which means no priorities.
	routine.Priorities = models.ParsePriorities(r.PostForm["priorities"])

	return routine.Clamped(), nil
}
