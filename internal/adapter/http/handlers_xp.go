package adapthttp

import "net/http"

func (s *Server) handleGetXP(w http.ResponseWriter, r *http.Request) {
	var body emailRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	summary, err := s.svc.XP.Get(r.Context(), body.UserEmail)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch XP")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
