package httpapi

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"musicsphere/internal/store"
)

// pathName decodes a name path segment: underscores stand in for spaces.
func pathName(raw string) string {
	return strings.ReplaceAll(raw, "_", " ")
}

// queryInstance flattens query parameters into the object shape the
// request schemas validate.
func queryInstance(values url.Values) map[string]any {
	instance := make(map[string]any, len(values))
	for key := range values {
		instance[key] = values.Get(key)
	}
	return instance
}

func (s *Server) handleArtistList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := s.validator.validate("artistSearch", queryInstance(query)); err != nil {
		s.respondError(w, r, err)
		return
	}

	artists, err := s.catalog.ListArtists(r.Context(), store.ArtistFilter{Name: query.Get("name")})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if artists == nil {
		artists = []store.Artist{}
	}

	respondJSON(w, http.StatusOK, struct {
		Artists []store.Artist `json:"artists"`
	}{artists})
}

func (s *Server) handleArtist(w http.ResponseWriter, r *http.Request) {
	name := pathName(mux.Vars(r)["name"])

	artist, err := s.catalog.Artist(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Artist *store.Artist `json:"artist"`
	}{artist})
}
