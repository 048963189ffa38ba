package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"musicsphere/internal/apperr"
	"musicsphere/internal/store"
)

func (s *Server) handleSongList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := s.validator.validate("songSearch", queryInstance(query)); err != nil {
		s.respondError(w, r, err)
		return
	}

	songs, err := s.catalog.ListSongs(r.Context(), store.SongFilter{Name: query.Get("name")})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if songs == nil {
		songs = []store.Song{}
	}

	respondJSON(w, http.StatusOK, struct {
		Songs []store.Song `json:"songs"`
	}{songs})
}

func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	artistName := pathName(vars["artistName"])
	songName := pathName(vars["songName"])

	song, err := s.catalog.Song(r.Context(), artistName, songName)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Song *store.Song `json:"song"`
	}{song})
}

func (s *Server) handleSongByID(w http.ResponseWriter, r *http.Request) {
	songID, err := strconv.ParseInt(mux.Vars(r)["songId"], 10, 64)
	if err != nil {
		s.respondError(w, r, apperr.BadRequest("Invalid song id"))
		return
	}

	song, err := s.catalog.SongByID(r.Context(), songID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Song *store.Song `json:"song"`
	}{song})
}
