// Package catalog talks to the external music database API (TheAudioDB)
// and maps its records into local store rows.
package catalog

import (
	"context"
	"errors"
)

// ErrNoResults reports a logical miss: the search succeeded but the
// response carried no records for the key. Callers can distinguish it from
// transport failures, which surface as other errors.
var ErrNoResults = errors.New("catalog: no results")

// Source is the lookup surface the resolver depends on.
type Source interface {
	// SearchArtists looks up artists by name.
	SearchArtists(ctx context.Context, name string) ([]Artist, error)
	// SearchAlbums looks up an artist's albums. The external API keys its
	// album search by the owning artist, not by album title.
	SearchAlbums(ctx context.Context, artistName string) ([]Album, error)
	// SearchTracks looks up a track by artist and track name.
	SearchTracks(ctx context.Context, artistName, trackName string) ([]Track, error)
}

// Artist is the wire shape of an artist record. The API reports every
// scalar as a string or null.
type Artist struct {
	ID         string `json:"idArtist"`
	Name       string `json:"strArtist"`
	Label      string `json:"strLabel"`
	FormedYear string `json:"intFormedYear"`
	BornYear   string `json:"intBornYear"`
	DiedYear   string `json:"intDiedYear"`
	Disbanded  string `json:"strDisbanded"`
	Style      string `json:"strStyle"`
	Genre      string `json:"strGenre"`
	Mood       string `json:"strMood"`
	Website    string `json:"strWebsite"`
	Facebook   string `json:"strFacebook"`
	Biography  string `json:"strBiographyEN"`
	Gender     string `json:"strGender"`
	Country    string `json:"strCountry"`
	Thumb      string `json:"strArtistThumb"`
	Logo       string `json:"strArtistLogo"`
	Fanart     string `json:"strArtistFanart"`
	Fanart2    string `json:"strArtistFanart2"`
	Fanart3    string `json:"strArtistFanart3"`
	Fanart4    string `json:"strArtistFanart4"`
}

// Album is the wire shape of an album record.
type Album struct {
	ID           string `json:"idAlbum"`
	ArtistID     string `json:"idArtist"`
	Name         string `json:"strAlbum"`
	ArtistName   string `json:"strArtist"`
	YearReleased string `json:"intYearReleased"`
	Style        string `json:"strStyle"`
	Genre        string `json:"strGenre"`
	Thumb        string `json:"strAlbumThumb"`
	Description  string `json:"strDescriptionEN"`
}

// Track is the wire shape of a track record.
type Track struct {
	ID           string `json:"idTrack"`
	AlbumID      string `json:"idAlbum"`
	AlbumName    string `json:"strAlbum"`
	ArtistID     string `json:"idArtist"`
	ArtistName   string `json:"strArtist"`
	Name         string `json:"strTrack"`
	Description  string `json:"strDescriptionEN"`
	Genre        string `json:"strGenre"`
	Mood         string `json:"strMood"`
	Style        string `json:"strStyle"`
	Theme        string `json:"strTheme"`
	Thumb        string `json:"strTrackThumb"`
	Video        string `json:"strMusicVid"`
	Director     string `json:"strMusicVidDirector"`
	VideoCompany string `json:"strMusicVidCompany"`
	Screenshot1  string `json:"strMusicVidScreen1"`
	Screenshot2  string `json:"strMusicVidScreen2"`
	Screenshot3  string `json:"strMusicVidScreen3"`
}
