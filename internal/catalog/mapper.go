package catalog

import (
	"strconv"
	"strings"

	"musicsphere/internal/store"
)

// Row translations are total: a missing or malformed external field
// degrades to the zero value, never to an error.

// Row maps the wire artist into the local row shape.
func (a Artist) Row() store.Artist {
	return store.Artist{
		ArtistID:   parseID(a.ID),
		Name:       a.Name,
		Label:      a.Label,
		FormedYear: a.FormedYear,
		BornYear:   a.BornYear,
		DiedYear:   a.DiedYear,
		Disbanded:  a.Disbanded,
		Style:      a.Style,
		Genre:      a.Genre,
		Mood:       a.Mood,
		Website:    a.Website,
		Facebook:   a.Facebook,
		Bio:        a.Biography,
		Gender:     a.Gender,
		Country:    a.Country,
		Thumb:      a.Thumb,
		Logo:       a.Logo,
		Fanart1:    a.Fanart,
		Fanart2:    a.Fanart2,
		Fanart3:    a.Fanart3,
		Fanart4:    a.Fanart4,
	}
}

// Row maps the wire album into the local row shape.
func (a Album) Row() store.Album {
	return store.Album{
		AlbumID:      parseID(a.ID),
		ArtistID:     parseID(a.ArtistID),
		Name:         a.Name,
		ArtistName:   a.ArtistName,
		YearReleased: a.YearReleased,
		Style:        a.Style,
		Genre:        a.Genre,
		Thumb:        a.Thumb,
		Description:  a.Description,
	}
}

// Row maps the wire track into the local song row shape.
func (t Track) Row() store.Song {
	return store.Song{
		SongID:       parseID(t.ID),
		AlbumID:      parseID(t.AlbumID),
		AlbumName:    t.AlbumName,
		ArtistID:     parseID(t.ArtistID),
		ArtistName:   t.ArtistName,
		Name:         t.Name,
		Description:  t.Description,
		Genre:        t.Genre,
		Mood:         t.Mood,
		Style:        t.Style,
		Theme:        t.Theme,
		Thumb:        t.Thumb,
		Video:        t.Video,
		Director:     t.Director,
		VideoCompany: t.VideoCompany,
		Screenshot1:  t.Screenshot1,
		Screenshot2:  t.Screenshot2,
		Screenshot3:  t.Screenshot3,
	}
}

func parseID(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
