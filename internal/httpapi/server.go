// Package httpapi exposes the MusicSphere REST surface: catalog lookups
// backed by the cache-fill resolver, user accounts, and playlists.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"musicsphere/internal/store"
)

// CatalogService captures the lookup operations the catalog routes need.
// Lookups by name transparently fill the store from the external source.
type CatalogService interface {
	Artist(ctx context.Context, name string) (*store.Artist, error)
	Album(ctx context.Context, artistName, albumName string) (*store.Album, error)
	Song(ctx context.Context, artistName, songName string) (*store.Song, error)
	SongByID(ctx context.Context, songID int64) (*store.Song, error)
	ListArtists(ctx context.Context, filter store.ArtistFilter) ([]store.Artist, error)
	ListAlbums(ctx context.Context, filter store.AlbumFilter) ([]store.Album, error)
	ListSongs(ctx context.Context, filter store.SongFilter) ([]store.Song, error)
}

// UserService captures account and playlist workflows.
type UserService interface {
	Authenticate(ctx context.Context, username, password string) (store.User, error)
	Register(ctx context.Context, nu store.NewUser) (store.User, error)
	All(ctx context.Context) ([]store.User, error)
	Get(ctx context.Context, username string) (store.User, error)
	Update(ctx context.Context, username string, upd store.UserUpdate) (store.User, error)
	Remove(ctx context.Context, username string) error
	AddPlaylistSong(ctx context.Context, username string, songID int64) error
	Playlist(ctx context.Context, username string) ([]store.PlaylistEntry, error)
	RemovePlaylistSong(ctx context.Context, username string, songID int64) error
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Create(username string) (string, error)
	Verify(token string) (string, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	catalog   CatalogService
	users     UserService
	tokens    TokenManager
	validator *validator
}

// New configures a Server with the given services.
func New(catalog CatalogService, users UserService, tokens TokenManager) (*Server, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}
	return &Server{
		catalog:   catalog,
		users:     users,
		tokens:    tokens,
		validator: v,
	}, nil
}

// Routes exposes the HTTP handlers for catalog, account and playlist
// management.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleNotFound)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// Catalog routes
	r.HandleFunc("/artists", s.handleArtistList).Methods(http.MethodGet)
	r.HandleFunc("/artists/{name}", s.handleArtist).Methods(http.MethodGet)
	r.HandleFunc("/albums", s.handleAlbumList).Methods(http.MethodGet)
	r.HandleFunc("/albums/{artistName}/{albumName}", s.handleAlbum).Methods(http.MethodGet)
	r.HandleFunc("/songs", s.handleSongList).Methods(http.MethodGet)
	r.HandleFunc("/songs/{songId:[0-9]+}", s.handleSongByID).Methods(http.MethodGet)
	r.HandleFunc("/songs/{artistName}/{songName}", s.handleSong).Methods(http.MethodGet)

	// Auth and user routes
	r.HandleFunc("/auth/token", s.handleToken).Methods(http.MethodPost)
	r.HandleFunc("/users", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/users", s.handleUserList).Methods(http.MethodGet)
	r.HandleFunc("/users/{username}", s.handleUserGet).Methods(http.MethodGet)
	r.HandleFunc("/users/{username}", s.handleUserUpdate).Methods(http.MethodPatch)
	r.HandleFunc("/users/{username}", s.handleUserDelete).Methods(http.MethodDelete)

	// Playlist routes
	r.HandleFunc("/users/{username}/playlists/", s.handlePlaylistGet).Methods(http.MethodGet)
	r.HandleFunc("/users/{username}/playlists/{songId:[0-9]+}", s.handlePlaylistAdd).Methods(http.MethodPost)
	r.HandleFunc("/users/{username}/playlists/{songId:[0-9]+}", s.handlePlaylistRemove).Methods(http.MethodDelete)

	r.Use(requestLogging)
	r.Use(s.authenticate)

	return r
}
