package adapthttp

import "net/http"

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message   string `json:"message"`
		UserEmail string `json:"userEmail"`
		Language  string `json:"language"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	reply, err := s.svc.Coach.Reply(r.Context(), body.Message, body.UserEmail, body.Language)
	if err != nil {
		s.fail(w, r, err, "Chat failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}
