package handlers

import "net/http"

// HealthResponse reports liveness and which optional features are on.
type HealthResponse struct {
	Status            string `json:"status"`
	AdvisorAvailable  bool   `json:"advisorAvailable"`
	CrewKeyConfigured bool   `json:"crewKeyConfigured"`
}

// HandleHealth returns service status as JSON.
func (d *Deps) HandleHealth(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, HealthResponse{
		Status:            "ok",
		AdvisorAvailable:  d.Advisor.Available(),
		CrewKeyConfigured: d.Config.CrewConfigured(),
	})
}
