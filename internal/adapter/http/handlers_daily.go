package adapthttp

import (
	"net/http"
	"time"
)

type dailyHistoryItem struct {
	Plan      string    `json:"plan"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleGetDailyPlan(w http.ResponseWriter, r *http.Request) {
	var body emailRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	plan, err := s.svc.Daily.Today(r.Context(), body.UserEmail)
	if err != nil {
		s.fail(w, r, err, "Failed to generate daily plan")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plan": plan})
}

func (s *Server) handleGetDailyHistory(w http.ResponseWriter, r *http.Request) {
	var body emailRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	plans, err := s.svc.Daily.History(r.Context(), body.UserEmail)
	if err != nil {
		s.fail(w, r, err, "Failed to retrieve daily plan history")
		return
	}
	history := make([]dailyHistoryItem, 0, len(plans))
	for _, p := range plans {
		history = append(history, dailyHistoryItem{Plan: p.Plan, Timestamp: p.Timestamp})
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}
