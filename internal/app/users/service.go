// Package users exposes account and playlist workflows over the store and
// translates its sentinel errors into the HTTP error taxonomy.
package users

import (
	"context"
	"errors"
	"fmt"

	"musicsphere/internal/apperr"
	"musicsphere/internal/store"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, nu store.NewUser) (store.User, error)
	Authenticate(ctx context.Context, username, password string) (store.User, error)
	ListUsers(ctx context.Context) ([]store.User, error)
	UserByUsername(ctx context.Context, username string) (store.User, error)
	UpdateUser(ctx context.Context, username string, upd store.UserUpdate) (store.User, error)
	DeleteUser(ctx context.Context, username string) error

	AddPlaylistSong(ctx context.Context, username string, songID int64) error
	PlaylistByUser(ctx context.Context, username string) ([]store.PlaylistEntry, error)
	RemovePlaylistSong(ctx context.Context, username string, songID int64) error
}

// Service wires user workflows to the provided Store.
type Service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(st Store) *Service {
	return &Service{store: st}
}

// Authenticate verifies credentials and returns the user without its hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (store.User, error) {
	u, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return store.User{}, apperr.Unauthorized("Invalid username/password")
		}
		return store.User{}, err
	}
	return u, nil
}

// Register creates a new account.
func (s *Service) Register(ctx context.Context, nu store.NewUser) (store.User, error) {
	u, err := s.store.CreateUser(ctx, nu)
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return store.User{}, apperr.BadRequest(fmt.Sprintf("Duplicate username: %s", nu.Username))
		}
		return store.User{}, err
	}
	return u, nil
}

// All lists every account.
func (s *Service) All(ctx context.Context) ([]store.User, error) {
	return s.store.ListUsers(ctx)
}

// Get returns one account by username.
func (s *Service) Get(ctx context.Context, username string) (store.User, error) {
	u, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		return store.User{}, s.translateUserErr(err, username)
	}
	return u, nil
}

// Update applies a partial update to an account.
func (s *Service) Update(ctx context.Context, username string, upd store.UserUpdate) (store.User, error) {
	u, err := s.store.UpdateUser(ctx, username, upd)
	if err != nil {
		return store.User{}, s.translateUserErr(err, username)
	}
	return u, nil
}

// Remove deletes an account.
func (s *Service) Remove(ctx context.Context, username string) error {
	if err := s.store.DeleteUser(ctx, username); err != nil {
		return s.translateUserErr(err, username)
	}
	return nil
}

// AddPlaylistSong saves a song for a user. Both the song and the user must
// already exist.
func (s *Service) AddPlaylistSong(ctx context.Context, username string, songID int64) error {
	if err := s.store.AddPlaylistSong(ctx, username, songID); err != nil {
		switch {
		case errors.Is(err, store.ErrSongNotFound):
			return apperr.NotFound(fmt.Sprintf("No song: %d", songID))
		case errors.Is(err, store.ErrUserNotFound):
			return apperr.NotFound(fmt.Sprintf("No username: %s", username))
		}
		return err
	}
	return nil
}

// Playlist returns the user's saved songs.
func (s *Service) Playlist(ctx context.Context, username string) ([]store.PlaylistEntry, error) {
	return s.store.PlaylistByUser(ctx, username)
}

// RemovePlaylistSong deletes a saved song from the user's playlist.
func (s *Service) RemovePlaylistSong(ctx context.Context, username string, songID int64) error {
	if err := s.store.RemovePlaylistSong(ctx, username, songID); err != nil {
		if errors.Is(err, store.ErrPlaylistEntryNotFound) {
			return apperr.NotFound(fmt.Sprintf("No playlist entry: %s: %d", username, songID))
		}
		return err
	}
	return nil
}

func (s *Service) translateUserErr(err error, username string) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return apperr.NotFound(fmt.Sprintf("No user: %s", username))
	}
	return err
}
