package adapthttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"fitcoach/internal/domain"
)

const invalidBodyMessage = "Invalid request body"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func parseJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// fail answers 400 with the validation message, or logs err and answers 500
// with msg.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Msg)
		return
	}
	s.logError(r, err, msg)
	writeError(w, http.StatusInternalServerError, msg)
}

// numText holds a JSON number or string as text.
type numText string

func (n *numText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = numText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = numText(num.String())
	return nil
}

type emailRequest struct {
	UserEmail string `json:"userEmail"`
}
