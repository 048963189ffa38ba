package httpapi

import (
	"encoding/json"
	"net/http"

	"musicsphere/internal/apperr"
)

// decodeBody parses the request body twice: once into a generic value for
// schema validation, then into the typed payload.
func (s *Server) decodeBody(r *http.Request, schema string, payload any) error {
	var instance any
	if err := json.NewDecoder(r.Body).Decode(&instance); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}
	if err := s.validator.validate(schema, instance); err != nil {
		return err
	}

	raw, err := json.Marshal(instance)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, payload)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := s.decodeBody(r, "userAuth", &creds); err != nil {
		s.respondError(w, r, err)
		return
	}

	user, err := s.users.Authenticate(r.Context(), creds.Username, creds.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	token, err := s.tokens.Create(user.Username)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Token string `json:"token"`
	}{token})
}
