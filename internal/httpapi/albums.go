package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"musicsphere/internal/store"
)

func (s *Server) handleAlbumList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := s.validator.validate("albumSearch", queryInstance(query)); err != nil {
		s.respondError(w, r, err)
		return
	}

	albums, err := s.catalog.ListAlbums(r.Context(), store.AlbumFilter{Name: query.Get("name")})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if albums == nil {
		albums = []store.Album{}
	}

	respondJSON(w, http.StatusOK, struct {
		Albums []store.Album `json:"albums"`
	}{albums})
}

func (s *Server) handleAlbum(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	artistName := pathName(vars["artistName"])
	albumName := pathName(vars["albumName"])

	album, err := s.catalog.Album(r.Context(), artistName, albumName)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Album *store.Album `json:"album"`
	}{album})
}
