package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Song models a catalog song row. Like albums, songs reference their artist
// and album by name without foreign keys. SongID is the external numeric id
// and is the handle playlists reference.
type Song struct {
	SongID       int64  `json:"songId"`
	AlbumID      int64  `json:"albumId"`
	AlbumName    string `json:"albumName,omitempty"`
	ArtistID     int64  `json:"artistId"`
	ArtistName   string `json:"artistName"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Genre        string `json:"genre,omitempty"`
	Mood         string `json:"mood,omitempty"`
	Style        string `json:"style,omitempty"`
	Theme        string `json:"theme,omitempty"`
	Thumb        string `json:"thumb,omitempty"`
	Video        string `json:"video,omitempty"`
	Director     string `json:"director,omitempty"`
	VideoCompany string `json:"videoCompany,omitempty"`
	Screenshot1  string `json:"screenshot1,omitempty"`
	Screenshot2  string `json:"screenshot2,omitempty"`
	Screenshot3  string `json:"screenshot3,omitempty"`
}

const songColumns = `song_id, album_id, album_name, artist_id, artist_name, name, description,
		     genre, mood, style, theme, thumb, video, director, video_company,
		     screenshot1, screenshot2, screenshot3`

func scanSong(row interface{ Scan(...any) error }) (Song, error) {
	var sg Song
	err := row.Scan(
		&sg.SongID, &sg.AlbumID, &sg.AlbumName, &sg.ArtistID, &sg.ArtistName, &sg.Name, &sg.Description,
		&sg.Genre, &sg.Mood, &sg.Style, &sg.Theme, &sg.Thumb, &sg.Video, &sg.Director, &sg.VideoCompany,
		&sg.Screenshot1, &sg.Screenshot2, &sg.Screenshot3,
	)
	return sg, err
}

// InsertSong adds a song row, skipping silently when its natural key is
// already present.
func (s *Store) InsertSong(ctx context.Context, sg Song) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO songs (`+songColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT DO NOTHING
	`,
		sg.SongID, sg.AlbumID, sg.AlbumName, sg.ArtistID, sg.ArtistName, sg.Name, sg.Description,
		sg.Genre, sg.Mood, sg.Style, sg.Theme, sg.Thumb, sg.Video, sg.Director, sg.VideoCompany,
		sg.Screenshot1, sg.Screenshot2, sg.Screenshot3,
	)
	if err != nil {
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

// SongByName finds a song by exact song and artist names,
// case-insensitively. A missing song yields (nil, nil).
func (s *Store) SongByName(ctx context.Context, artistName, songName string) (*Song, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+songColumns+`
		FROM songs
		WHERE name ILIKE $1 AND artist_name ILIKE $2
	`, songName, artistName)

	sg, err := scanSong(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select song: %w", err)
	}
	return &sg, nil
}

// SongByID finds a song by its numeric id. A missing id yields (nil, nil).
func (s *Store) SongByID(ctx context.Context, songID int64) (*Song, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+songColumns+`
		FROM songs
		WHERE song_id = $1
	`, songID)

	sg, err := scanSong(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select song by id: %w", err)
	}
	return &sg, nil
}

// SongFilter constrains the results returned by ListSongs.
type SongFilter struct {
	Name string
}

// ListSongs returns stored songs ordered by name, optionally filtered by a
// partial name match.
func (s *Store) ListSongs(ctx context.Context, filter SongFilter) ([]Song, error) {
	query := `
		SELECT ` + songColumns + `
		FROM songs
	`
	var args []any
	if name := strings.TrimSpace(filter.Name); name != "" {
		args = append(args, "%"+name+"%")
		query += `WHERE name ILIKE $1
	`
	}
	query += `ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		sg, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, sg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}
