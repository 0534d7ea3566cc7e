package adapthttp

import (
	"net/http"

	"fitcoach/internal/domain"
)

type generatePlanRequest struct {
	Goal           string  `json:"goal"`
	Age            numText `json:"age"`
	Height         numText `json:"height"`
	Weight         numText `json:"weight"`
	ActivityLevel  string  `json:"activityLevel"`
	DietPreference string  `json:"dietPreference"`
	UserEmail      string  `json:"userEmail"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var body generatePlanRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	plan, err := s.svc.Plans.Generate(r.Context(), domain.ProfileInput{
		Goal:           body.Goal,
		Age:            string(body.Age),
		Height:         string(body.Height),
		Weight:         string(body.Weight),
		ActivityLevel:  body.ActivityLevel,
		DietPreference: body.DietPreference,
		UserEmail:      body.UserEmail,
	})
	if err != nil {
		s.fail(w, r, err, "Server error occurred. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plan": plan})
}

func (s *Server) handleGetPlans(w http.ResponseWriter, r *http.Request) {
	var body emailRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	plans, err := s.svc.Plans.List(r.Context(), body.UserEmail)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch plans")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": plans})
}
