package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"musicsphere/internal/apperr"
	"musicsphere/internal/store"
)

func (s *Server) handlePlaylistGet(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	playlist, err := s.users.Playlist(r.Context(), username)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if playlist == nil {
		playlist = []store.PlaylistEntry{}
	}

	respondJSON(w, http.StatusOK, struct {
		Playlist []store.PlaylistEntry `json:"playlist"`
	}{playlist})
}

func (s *Server) handlePlaylistAdd(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	songID, err := strconv.ParseInt(vars["songId"], 10, 64)
	if err != nil {
		s.respondError(w, r, apperr.BadRequest("Invalid song id"))
		return
	}

	if err := s.users.AddPlaylistSong(r.Context(), username, songID); err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		PlaylistCreated int64 `json:"playlist_created"`
	}{songID})
}

func (s *Server) handlePlaylistRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	songID, err := strconv.ParseInt(vars["songId"], 10, 64)
	if err != nil {
		s.respondError(w, r, apperr.BadRequest("Invalid song id"))
		return
	}

	if err := s.users.RemovePlaylistSong(r.Context(), username, songID); err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		PlaylistDeleted int64 `json:"playlist_deleted"`
	}{songID})
}
