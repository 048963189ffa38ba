package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Album models a catalog album row. Albums reference their artist by name,
// not by an enforced foreign key, so an album row can exist without a
// matching artist row.
type Album struct {
	AlbumID      int64  `json:"albumId"`
	ArtistID     int64  `json:"artistId"`
	Name         string `json:"name"`
	ArtistName   string `json:"artistName"`
	YearReleased string `json:"yearReleased,omitempty"`
	Style        string `json:"style,omitempty"`
	Genre        string `json:"genre,omitempty"`
	Thumb        string `json:"thumb,omitempty"`
	Description  string `json:"description,omitempty"`
}

const albumColumns = `album_id, artist_id, name, artist_name, year_released, style, genre, thumb, description`

func scanAlbum(row interface{ Scan(...any) error }) (Album, error) {
	var a Album
	err := row.Scan(
		&a.AlbumID, &a.ArtistID, &a.Name, &a.ArtistName,
		&a.YearReleased, &a.Style, &a.Genre, &a.Thumb, &a.Description,
	)
	return a, err
}

// InsertAlbum adds an album row, skipping silently when its natural key
// (name, artist name) is already present.
func (s *Store) InsertAlbum(ctx context.Context, a Album) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO albums (`+albumColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT DO NOTHING
	`,
		a.AlbumID, a.ArtistID, a.Name, a.ArtistName,
		a.YearReleased, a.Style, a.Genre, a.Thumb, a.Description,
	)
	if err != nil {
		return fmt.Errorf("insert album: %w", err)
	}
	return nil
}

// AlbumByName finds an album by exact album and artist names,
// case-insensitively. A missing album yields (nil, nil).
func (s *Store) AlbumByName(ctx context.Context, artistName, albumName string) (*Album, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+albumColumns+`
		FROM albums
		WHERE name ILIKE $1 AND artist_name ILIKE $2
	`, albumName, artistName)

	a, err := scanAlbum(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select album: %w", err)
	}
	return &a, nil
}

// AlbumByArtist returns any one stored album for the artist, or (nil, nil)
// when none exist. The resolver uses it as an existence probe.
func (s *Store) AlbumByArtist(ctx context.Context, artistName string) (*Album, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+albumColumns+`
		FROM albums
		WHERE artist_name ILIKE $1
		LIMIT 1
	`, artistName)

	a, err := scanAlbum(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select album by artist: %w", err)
	}
	return &a, nil
}

// AlbumFilter constrains the results returned by ListAlbums.
type AlbumFilter struct {
	Name string
}

// ListAlbums returns stored albums ordered by name, optionally filtered by
// a partial name match.
func (s *Store) ListAlbums(ctx context.Context, filter AlbumFilter) ([]Album, error) {
	query := `
		SELECT ` + albumColumns + `
		FROM albums
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
		return nil, fmt.Errorf("select albums: %w", err)
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}
	return albums, nil
}
