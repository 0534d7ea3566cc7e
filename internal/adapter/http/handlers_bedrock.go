package adapthttp

import (
	"errors"
	"net/http"

	"fitcoach/internal/domain"
)

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}

// handleTestBedrock is a diagnostic endpoint; unlike the others it echoes the
// provider's error code and message.
func (s *Server) handleTestBedrock(w http.ResponseWriter, r *http.Request) {
	region, modelID := s.probe.Region(), s.probe.ModelID()
	if region == "" || modelID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "Missing AWS configuration",
			"details": map[string]string{
				"region":   setOrNot(region),
				"model_id": setOrNot(modelID),
			},
		})
		return
	}

	if _, err := s.probe.Ping(r.Context()); err != nil {
		s.logError(r, err, "bedrock connectivity check failed")
		code, msg := "Error", err.Error()
		var pe *domain.ProviderError
		if errors.As(err, &pe) {
			code, msg = pe.Code, pe.Message
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":  "error",
			"message": msg,
			"type":    code,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"message":  "AWS Bedrock connection successful",
		"region":   region,
		"model_id": modelID,
	})
}
