package adapthttp

import (
	"net/http"
)

func (s *Server) handleTrackProgress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserEmail string  `json:"userEmail"`
		Weight    numText `json:"weight"`
		Note      string  `json:"note"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	if err := s.svc.Progress.Track(r.Context(), body.UserEmail, string(body.Weight), body.Note); err != nil {
		s.fail(w, r, err, "Failed to save progress")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Progress saved!"})
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	var body emailRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	entries, err := s.svc.Progress.List(r.Context(), body.UserEmail)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch progress")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleDailyCheckin(w http.ResponseWriter, r *http.Request) {
	var body emailRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	status, err := s.svc.Progress.CheckIn(r.Context(), body.UserEmail)
	if err != nil {
		s.fail(w, r, err, "Failed to check daily status")
		return
	}
	writeJSON(w, http.StatusOK, status)
}
