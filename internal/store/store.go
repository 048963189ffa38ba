// Package store provides Postgres persistence for the MusicSphere catalog
// tables (artists, albums, songs) and for users and their playlists.
//
// Catalog rows are append-only: inserts are conflict-tolerant
// (ON CONFLICT DO NOTHING) and nothing ever updates or deletes them.
// Name lookups are case-insensitive.
package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserExists signals the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound signals a missing user record.
	ErrUserNotFound = errors.New("user not found")
	// ErrSongNotFound signals a missing song record.
	ErrSongNotFound = errors.New("song not found")
	// ErrPlaylistEntryNotFound signals a missing playlist row.
	ErrPlaylistEntryNotFound = errors.New("playlist entry not found")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
