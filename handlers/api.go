package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/LianHaeming/weekplan/models"
	"github.com/LianHaeming/weekplan/planner"
)

// PlanRequest is the JSON body for POST /api/plan. Missing numbers take
// the form defaults; a missing priorities list takes the default tags.
type PlanRequest struct {
	Study      *float64 `json:"study"`
	Health     *float64 `json:"health"`
	Social     *float64 `json:"social"`
	Sleep      *float64 `json:"sleep"`
	Work       *float64 `json:"work"`
	Notes      string   `json:"notes"`
	Priorities []string `json:"priorities"`
}

// Routine converts the request into a clamped routine.
func (req PlanRequest) Routine() models.Routine {
	r := models.DefaultRoutine()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&r.Study, req.Study)
	set(&r.Health, req.Health)
	set(&r.Social, req.Social)
	set(&r.Sleep, req.Sleep)
	set(&r.Work, req.Work)
	r.Notes = req.Notes
	if req.Priorities != nil {
		r.Priorities = models.ParsePriorities(req.Priorities)
	}
	return r.Clamped()
}

// PlanResponse is returned by POST /api/plan. Advice is omitted when no
// suggestion is available.
type PlanResponse struct {
	RequestID string            `json:"requestId"`
	Routine   models.Routine    `json:"routine"`
	Plan      models.WeeklyPlan `json:"plan"`
	Advice    *string           `json:"advice,omitempty"`
}

// HandleAPIPlan is the JSON version of the form submission.
func (d *Deps) HandleAPIPlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	routine := req.Routine()
	resp := PlanResponse{
		RequestID: RequestID(r.Context()),
		Routine:   routine,
		Plan:      planner.Generate(routine),
	}
	if advice := d.Advisor.Suggest(r.Context(), routine.Notes); advice.OK() {
		resp.Advice = &advice.Text
	}

	d.Logger.Debug("api plan generated",
		zap.String("requestId", resp.RequestID),
		zap.Bool("advice", resp.Advice != nil))

	jsonOK(w, resp)
}

// --- JSON helpers ---

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
