package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Artist models a catalog artist row. Catalog fields mirror the external
// API, which reports numeric values like years as strings, so everything
// but the id stays TEXT.
type Artist struct {
	ArtistID   int64  `json:"artistId"`
	Name       string `json:"name"`
	Label      string `json:"label,omitempty"`
	FormedYear string `json:"formedYear,omitempty"`
	BornYear   string `json:"bornYear,omitempty"`
	DiedYear   string `json:"diedYear,omitempty"`
	Disbanded  string `json:"disbanded,omitempty"`
	Style      string `json:"style,omitempty"`
	Genre      string `json:"genre,omitempty"`
	Mood       string `json:"mood,omitempty"`
	Website    string `json:"website,omitempty"`
	Facebook   string `json:"facebook,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Country    string `json:"country,omitempty"`
	Thumb      string `json:"thumb,omitempty"`
	Logo       string `json:"logo,omitempty"`
	Fanart1    string `json:"fanart1,omitempty"`
	Fanart2    string `json:"fanart2,omitempty"`
	Fanart3    string `json:"fanart3,omitempty"`
	Fanart4    string `json:"fanart4,omitempty"`
}

const artistColumns = `artist_id, name, label, formed_year, born_year, died_year, disbanded,
			     style, genre, mood, website, facebook, bio, gender, country,
			     thumb, logo, fanart1, fanart2, fanart3, fanart4`

func scanArtist(row interface{ Scan(...any) error }) (Artist, error) {
	var a Artist
	err := row.Scan(
		&a.ArtistID, &a.Name, &a.Label, &a.FormedYear, &a.BornYear, &a.DiedYear, &a.Disbanded,
		&a.Style, &a.Genre, &a.Mood, &a.Website, &a.Facebook, &a.Bio, &a.Gender, &a.Country,
		&a.Thumb, &a.Logo, &a.Fanart1, &a.Fanart2, &a.Fanart3, &a.Fanart4,
	)
	return a, err
}

// InsertArtist adds an artist row, skipping silently when the name is
// already present.
func (s *Store) InsertArtist(ctx context.Context, a Artist) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO artists (`+artistColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT DO NOTHING
	`,
		a.ArtistID, a.Name, a.Label, a.FormedYear, a.BornYear, a.DiedYear, a.Disbanded,
		a.Style, a.Genre, a.Mood, a.Website, a.Facebook, a.Bio, a.Gender, a.Country,
		a.Thumb, a.Logo, a.Fanart1, a.Fanart2, a.Fanart3, a.Fanart4,
	)
	if err != nil {
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

// ArtistByName finds an artist by exact name, case-insensitively. A missing
// artist yields (nil, nil) so callers can distinguish absence from failure.
func (s *Store) ArtistByName(ctx context.Context, name string) (*Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE name ILIKE $1
	`, name)

	a, err := scanArtist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select artist: %w", err)
	}
	return &a, nil
}

// ArtistFilter constrains the results returned by ListArtists.
type ArtistFilter struct {
	Name string
}

// ListArtists returns stored artists ordered by name, optionally filtered
// by a partial name match.
func (s *Store) ListArtists(ctx context.Context, filter ArtistFilter) ([]Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
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
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}
