package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"musicsphere/internal/store"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var nu store.NewUser
	if err := s.decodeBody(r, "userNew", &nu); err != nil {
		s.respondError(w, r, err)
		return
	}

	user, err := s.users.Register(r.Context(), nu)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	token, err := s.tokens.Create(user.Username)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		User  store.User `json:"user"`
		Token string     `json:"token"`
	}{user, token})
}

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.All(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if users == nil {
		users = []store.User{}
	}

	respondJSON(w, http.StatusOK, struct {
		Users []store.User `json:"users"`
	}{users})
}

func (s *Server) handleUserGet(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, err := s.users.Get(r.Context(), username)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		User store.User `json:"user"`
	}{user})
}

func (s *Server) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	var upd store.UserUpdate
	if err := s.decodeBody(r, "userUpdate", &upd); err != nil {
		s.respondError(w, r, err)
		return
	}

	user, err := s.users.Update(r.Context(), username, upd)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		User store.User `json:"user"`
	}{user})
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if err := s.users.Remove(r.Context(), username); err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Deleted string `json:"deleted"`
	}{username})
}
