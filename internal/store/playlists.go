package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PlaylistEntry records that a user saved a song.
type PlaylistEntry struct {
	Username string `json:"username"`
	SongID   int64  `json:"songId"`
}

// AddPlaylistSong saves a song for a user. The referenced song and user
// must already exist; playlists carry no cache-fill semantics, so the
// checks happen here rather than in the resolver.
func (s *Store) AddPlaylistSong(ctx context.Context, username string, songID int64) error {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT song_id
		FROM songs
		WHERE song_id = $1
	`, songID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSongNotFound
		}
		return fmt.Errorf("check song: %w", err)
	}

	var name string
	err = s.db.QueryRowContext(ctx, `
		SELECT username
		FROM users
		WHERE username = $1
	`, username).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("check user: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO playlists (song_id, username)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, songID, username); err != nil {
		return fmt.Errorf("insert playlist entry: %w", err)
	}
	return nil
}

// PlaylistByUser returns the user's saved songs, possibly empty.
func (s *Store) PlaylistByUser(ctx context.Context, username string) ([]PlaylistEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT username, song_id
		FROM playlists
		WHERE username = $1
	`, username)
	if err != nil {
		return nil, fmt.Errorf("select playlist: %w", err)
	}
	defer rows.Close()

	var entries []PlaylistEntry
	for rows.Next() {
		var e PlaylistEntry
		if err := rows.Scan(&e.Username, &e.SongID); err != nil {
			return nil, fmt.Errorf("scan playlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist: %w", err)
	}
	return entries, nil
}

// RemovePlaylistSong deletes a saved song. Deleting a row that does not
// exist yields ErrPlaylistEntryNotFound.
func (s *Store) RemovePlaylistSong(ctx context.Context, username string, songID int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM playlists
		WHERE username = $1
		AND song_id = $2
	`, username, songID)
	if err != nil {
		return fmt.Errorf("delete playlist entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete playlist result: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistEntryNotFound
	}
	return nil
}
