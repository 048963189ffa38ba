// Package resolver implements the read-through cache-fill lookups at the
// heart of MusicSphere: resolve a human lookup key against the store and,
// on miss, populate the store from the external catalog source before
// re-querying.
//
// Source failures never surface to callers. A fetch that fails for any
// reason, including one that simply finds no records, is logged and the
// lookup proceeds to the re-query, so a failed fill is indistinguishable
// from "the catalog has no such entity". Store errors always propagate.
//
// There is no per-key in-flight deduplication: two concurrent lookups of
// the same missing key may both fetch and both insert. Correctness under
// that race rests on the store's conflict-tolerant inserts.
package resolver

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"musicsphere/internal/catalog"
	"musicsphere/internal/store"
)

// Store is the persistence surface the resolver depends on.
type Store interface {
	ArtistByName(ctx context.Context, name string) (*store.Artist, error)
	ListArtists(ctx context.Context, filter store.ArtistFilter) ([]store.Artist, error)
	InsertArtist(ctx context.Context, a store.Artist) error

	AlbumByName(ctx context.Context, artistName, albumName string) (*store.Album, error)
	AlbumByArtist(ctx context.Context, artistName string) (*store.Album, error)
	ListAlbums(ctx context.Context, filter store.AlbumFilter) ([]store.Album, error)
	InsertAlbum(ctx context.Context, a store.Album) error

	SongByName(ctx context.Context, artistName, songName string) (*store.Song, error)
	SongByID(ctx context.Context, songID int64) (*store.Song, error)
	ListSongs(ctx context.Context, filter store.SongFilter) ([]store.Song, error)
	InsertSong(ctx context.Context, sg store.Song) error
}

// Resolver resolves catalog lookup keys to stored rows, filling the store
// from the external source on miss.
type Resolver struct {
	store  Store
	source catalog.Source
	log    zerolog.Logger
}

// New wires a Resolver. Both dependencies are injected so tests can
// substitute fakes.
func New(st Store, source catalog.Source, log zerolog.Logger) *Resolver {
	return &Resolver{store: st, source: source, log: log}
}

// Artist resolves an artist by name. A store hit returns immediately with
// no external call; a miss triggers at most one fetch-and-persist round
// trip before the re-query. The result is nil when the catalog has no
// match.
func (r *Resolver) Artist(ctx context.Context, name string) (*store.Artist, error) {
	artist, err := r.store.ArtistByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if artist != nil {
		return artist, nil
	}

	r.fillArtists(ctx, name)

	return r.store.ArtistByName(ctx, name)
}

// Album resolves an album by artist and album name. The artist row is
// ensured first (its fetch result is discarded); the album fetch is keyed
// by the owning artist because that is how the external album search is
// addressed.
func (r *Resolver) Album(ctx context.Context, artistName, albumName string) (*store.Album, error) {
	artist, err := r.store.ArtistByName(ctx, artistName)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		r.fillArtists(ctx, artistName)
	}

	album, err := r.store.AlbumByName(ctx, artistName, albumName)
	if err != nil {
		return nil, err
	}
	if album != nil {
		return album, nil
	}

	r.fillAlbums(ctx, artistName)

	return r.store.AlbumByName(ctx, artistName, albumName)
}

// Song resolves a song by artist and song name. Artist and album rows are
// ensured first so later joins by artist name stay meaningful; a cold
// lookup can therefore cost up to three external calls.
func (r *Resolver) Song(ctx context.Context, artistName, songName string) (*store.Song, error) {
	artist, err := r.store.ArtistByName(ctx, artistName)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		r.fillArtists(ctx, artistName)
	}

	album, err := r.store.AlbumByArtist(ctx, artistName)
	if err != nil {
		return nil, err
	}
	if album == nil {
		r.fillAlbums(ctx, artistName)
	}

	song, err := r.store.SongByName(ctx, artistName, songName)
	if err != nil {
		return nil, err
	}
	if song != nil {
		return song, nil
	}

	r.fillSongs(ctx, artistName, songName)

	return r.store.SongByName(ctx, artistName, songName)
}

// SongByID resolves a song by its numeric id. The external source has no
// by-id search, so this never fetches; an unknown id yields (nil, nil).
func (r *Resolver) SongByID(ctx context.Context, songID int64) (*store.Song, error) {
	return r.store.SongByID(ctx, songID)
}

// ListArtists returns stored artists without cache fill.
func (r *Resolver) ListArtists(ctx context.Context, filter store.ArtistFilter) ([]store.Artist, error) {
	return r.store.ListArtists(ctx, filter)
}

// ListAlbums returns stored albums without cache fill.
func (r *Resolver) ListAlbums(ctx context.Context, filter store.AlbumFilter) ([]store.Album, error) {
	return r.store.ListAlbums(ctx, filter)
}

// ListSongs returns stored songs without cache fill.
func (r *Resolver) ListSongs(ctx context.Context, filter store.SongFilter) ([]store.Song, error) {
	return r.store.ListSongs(ctx, filter)
}

// fillArtists fetches artists matching name and persists them. Failure is
// logged, not returned: the caller observes the outcome by re-querying.
func (r *Resolver) fillArtists(ctx context.Context, name string) {
	records, err := r.source.SearchArtists(ctx, name)
	if err != nil {
		r.logFetchFailure(err, "artists", name)
		return
	}
	for _, rec := range records {
		if err := r.store.InsertArtist(ctx, rec.Row()); err != nil {
			r.logInsertFailure(err, "artists", name)
			return
		}
	}
}

func (r *Resolver) fillAlbums(ctx context.Context, artistName string) {
	records, err := r.source.SearchAlbums(ctx, artistName)
	if err != nil {
		r.logFetchFailure(err, "albums", artistName)
		return
	}
	for _, rec := range records {
		if err := r.store.InsertAlbum(ctx, rec.Row()); err != nil {
			r.logInsertFailure(err, "albums", artistName)
			return
		}
	}
}

func (r *Resolver) fillSongs(ctx context.Context, artistName, songName string) {
	records, err := r.source.SearchTracks(ctx, artistName, songName)
	if err != nil {
		r.logFetchFailure(err, "songs", artistName+"/"+songName)
		return
	}
	for _, rec := range records {
		if err := r.store.InsertSong(ctx, rec.Row()); err != nil {
			r.logInsertFailure(err, "songs", artistName+"/"+songName)
			return
		}
	}
}

func (r *Resolver) logFetchFailure(err error, entity, key string) {
	if errors.Is(err, catalog.ErrNoResults) {
		r.log.Debug().Str("entity", entity).Str("key", key).Msg("catalog search returned no results")
		return
	}
	r.log.Warn().Err(err).Str("entity", entity).Str("key", key).Msg("catalog fetch failed")
}

// An insert failure aborts the remaining batch; rows inserted before it
// stay committed.
func (r *Resolver) logInsertFailure(err error, entity, key string) {
	r.log.Warn().Err(err).Str("entity", entity).Str("key", key).Msg("catalog insert failed")
}
