package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/LianHaeming/weekplan/advisor"
	"github.com/LianHaeming/weekplan/models"
)

// PlanPageData is the template data for the planner page.
type PlanPageData struct {
	Routine       models.Routine
	Categories    []models.Category
	AllPriorities []models.Priority
	Plan          *models.WeeklyPlan // nil until the form is submitted
	Advice        advisor.Result
}

func newPlanPageData(r models.Routine) PlanPageData {
	return PlanPageData{
		Routine:       r,
		Categories:    models.Categories,
		AllPriorities: models.AllPriorities[:],
	}
}

// HandleHome renders the empty form with widget defaults.
func (d *Deps) HandleHome(w http.ResponseWriter, r *http.Request) {
	d.render(w, r, "index.html", newPlanPageData(models.DefaultRoutine()))
}

func (d *Deps) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := d.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		d.Logger.Error("template render failed",
			zap.String("template", name),
			zap.String("requestId", RequestID(r.Context())),
			zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
