package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"musicsphere/internal/apperr"
)

type errorBody struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// respondError serves any error in the `{error:{message,status}}` shape.
// Errors without a declared status become 500s.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := apperr.From(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	respondJSON(w, status, errorEnvelope{Error: errorBody{Message: message, Status: status}})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.respondError(w, r, apperr.NotFound(""))
}
