package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"musicsphere/internal/catalog"
	"musicsphere/internal/store"
)

type fakeStore struct {
	artists []store.Artist
	albums  []store.Album
	songs   []store.Song

	artistQueryErr  error
	insertArtistErr error

	insertedArtists int
	insertedAlbums  int
	insertedSongs   int
}

func (f *fakeStore) ArtistByName(_ context.Context, name string) (*store.Artist, error) {
	if f.artistQueryErr != nil {
		return nil, f.artistQueryErr
	}
	for i := range f.artists {
		if strings.EqualFold(f.artists[i].Name, name) {
			return &f.artists[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListArtists(context.Context, store.ArtistFilter) ([]store.Artist, error) {
	return f.artists, nil
}

func (f *fakeStore) InsertArtist(_ context.Context, a store.Artist) error {
	if f.insertArtistErr != nil {
		return f.insertArtistErr
	}
	f.insertedArtists++
	for i := range f.artists {
		if strings.EqualFold(f.artists[i].Name, a.Name) {
			return nil // conflict: skip
		}
	}
	f.artists = append(f.artists, a)
	return nil
}

func (f *fakeStore) AlbumByName(_ context.Context, artistName, albumName string) (*store.Album, error) {
	for i := range f.albums {
		if strings.EqualFold(f.albums[i].Name, albumName) && strings.EqualFold(f.albums[i].ArtistName, artistName) {
			return &f.albums[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AlbumByArtist(_ context.Context, artistName string) (*store.Album, error) {
	for i := range f.albums {
		if strings.EqualFold(f.albums[i].ArtistName, artistName) {
			return &f.albums[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListAlbums(context.Context, store.AlbumFilter) ([]store.Album, error) {
	return f.albums, nil
}

func (f *fakeStore) InsertAlbum(_ context.Context, a store.Album) error {
	f.insertedAlbums++
	f.albums = append(f.albums, a)
	return nil
}

func (f *fakeStore) SongByName(_ context.Context, artistName, songName string) (*store.Song, error) {
	for i := range f.songs {
		if strings.EqualFold(f.songs[i].Name, songName) && strings.EqualFold(f.songs[i].ArtistName, artistName) {
			return &f.songs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SongByID(_ context.Context, songID int64) (*store.Song, error) {
	for i := range f.songs {
		if f.songs[i].SongID == songID {
			return &f.songs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListSongs(context.Context, store.SongFilter) ([]store.Song, error) {
	return f.songs, nil
}

func (f *fakeStore) InsertSong(_ context.Context, sg store.Song) error {
	f.insertedSongs++
	f.songs = append(f.songs, sg)
	return nil
}

type fakeSource struct {
	calls []string

	artists    []catalog.Artist
	artistsErr error
	albums     []catalog.Album
	albumsErr  error
	tracks     []catalog.Track
	tracksErr  error
}

func (f *fakeSource) SearchArtists(_ context.Context, name string) ([]catalog.Artist, error) {
	f.calls = append(f.calls, "artists:"+name)
	if f.artistsErr != nil {
		return nil, f.artistsErr
	}
	return f.artists, nil
}

func (f *fakeSource) SearchAlbums(_ context.Context, artistName string) ([]catalog.Album, error) {
	f.calls = append(f.calls, "albums:"+artistName)
	if f.albumsErr != nil {
		return nil, f.albumsErr
	}
	return f.albums, nil
}

func (f *fakeSource) SearchTracks(_ context.Context, artistName, trackName string) ([]catalog.Track, error) {
	f.calls = append(f.calls, "tracks:"+artistName+"/"+trackName)
	if f.tracksErr != nil {
		return nil, f.tracksErr
	}
	return f.tracks, nil
}

func newTestResolver(st Store, src catalog.Source) *Resolver {
	return New(st, src, zerolog.Nop())
}

func TestArtistHitSkipsFetch(t *testing.T) {
	st := &fakeStore{artists: []store.Artist{{Name: "The Beatles"}}}
	src := &fakeSource{}
	r := newTestResolver(st, src)

	artist, err := r.Artist(context.Background(), "the beatles")
	if err != nil {
		t.Fatalf("Artist error: %v", err)
	}
	if artist == nil || artist.Name != "The Beatles" {
		t.Fatalf("unexpected artist: %+v", artist)
	}
	if len(src.calls) != 0 {
		t.Fatalf("expected zero external calls, got %v", src.calls)
	}
}

func TestArtistMissFetchesOnce(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{artists: []catalog.Artist{{ID: "42", Name: "Radiohead"}}}
	r := newTestResolver(st, src)

	artist, err := r.Artist(context.Background(), "Radiohead")
	if err != nil {
		t.Fatalf("Artist error: %v", err)
	}
	if artist == nil || artist.Name != "Radiohead" || artist.ArtistID != 42 {
		t.Fatalf("unexpected artist: %+v", artist)
	}
	if len(src.calls) != 1 || src.calls[0] != "artists:Radiohead" {
		t.Fatalf("expected one artist fetch, got %v", src.calls)
	}
}

func TestArtistMissNoResults(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{artistsErr: catalog.ErrNoResults}
	r := newTestResolver(st, src)

	artist, err := r.Artist(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("Artist error: %v", err)
	}
	if artist != nil {
		t.Fatalf("expected absent artist, got %+v", artist)
	}
	if len(src.calls) != 1 {
		t.Fatalf("expected one fetch attempt, got %v", src.calls)
	}
}

func TestArtistFetchFailureSwallowed(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{artistsErr: errors.New("connection refused")}
	r := newTestResolver(st, src)

	artist, err := r.Artist(context.Background(), "Radiohead")
	if err != nil {
		t.Fatalf("transport failure must not surface, got %v", err)
	}
	if artist != nil {
		t.Fatalf("expected absent artist, got %+v", artist)
	}
}

func TestArtistStoreErrorPropagates(t *testing.T) {
	st := &fakeStore{artistQueryErr: errors.New("database error")}
	src := &fakeSource{}
	r := newTestResolver(st, src)

	if _, err := r.Artist(context.Background(), "Radiohead"); err == nil {
		t.Fatal("expected store error to propagate")
	}
	if len(src.calls) != 0 {
		t.Fatalf("expected no external calls after store failure, got %v", src.calls)
	}
}

func TestAlbumColdLookupFetchOrder(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{
		artists: []catalog.Artist{{ID: "1", Name: "Artist 1"}},
		albums:  []catalog.Album{{ID: "10", Name: "Album 1", ArtistName: "Artist 1"}},
	}
	r := newTestResolver(st, src)

	album, err := r.Album(context.Background(), "Artist 1", "Album 1")
	if err != nil {
		t.Fatalf("Album error: %v", err)
	}
	if album == nil || album.Name != "Album 1" {
		t.Fatalf("unexpected album: %+v", album)
	}

	want := []string{"artists:Artist 1", "albums:Artist 1"}
	if len(src.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, src.calls)
	}
	for i := range want {
		if src.calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, src.calls)
		}
	}
}

func TestAlbumMissAmongFetchedAlbums(t *testing.T) {
	st := &fakeStore{artists: []store.Artist{{Name: "Artist 1"}}}
	src := &fakeSource{
		albums: []catalog.Album{{ID: "10", Name: "Other Album", ArtistName: "Artist 1"}},
	}
	r := newTestResolver(st, src)

	album, err := r.Album(context.Background(), "Artist 1", "Album 1")
	if err != nil {
		t.Fatalf("Album error: %v", err)
	}
	if album != nil {
		t.Fatalf("expected absent album, got %+v", album)
	}
	if st.insertedAlbums != 1 {
		t.Fatalf("expected fetched albums to persist anyway, inserted %d", st.insertedAlbums)
	}
}

func TestSongColdLookupEnsuresArtistAndAlbum(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{
		artists: []catalog.Artist{{ID: "1", Name: "Artist 1"}},
		albums:  []catalog.Album{{ID: "10", Name: "Album 1", ArtistName: "Artist 1"}},
		tracks:  []catalog.Track{{ID: "100", Name: "Song 1", ArtistName: "Artist 1"}},
	}
	r := newTestResolver(st, src)

	song, err := r.Song(context.Background(), "Artist 1", "Song 1")
	if err != nil {
		t.Fatalf("Song error: %v", err)
	}
	if song == nil || song.SongID != 100 {
		t.Fatalf("unexpected song: %+v", song)
	}

	want := []string{"artists:Artist 1", "albums:Artist 1", "tracks:Artist 1/Song 1"}
	if len(src.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, src.calls)
	}
	for i := range want {
		if src.calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, src.calls)
		}
	}
}

func TestSongWarmArtistSkipsDependentFetches(t *testing.T) {
	st := &fakeStore{
		artists: []store.Artist{{Name: "Artist 1"}},
		albums:  []store.Album{{Name: "Album 1", ArtistName: "Artist 1"}},
		songs:   []store.Song{{SongID: 100, Name: "Song 1", ArtistName: "Artist 1"}},
	}
	src := &fakeSource{}
	r := newTestResolver(st, src)

	song, err := r.Song(context.Background(), "artist 1", "song 1")
	if err != nil {
		t.Fatalf("Song error: %v", err)
	}
	if song == nil || song.SongID != 100 {
		t.Fatalf("unexpected song: %+v", song)
	}
	if len(src.calls) != 0 {
		t.Fatalf("expected zero external calls, got %v", src.calls)
	}
}

func TestSongByIDNeverFetches(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{}
	r := newTestResolver(st, src)

	song, err := r.SongByID(context.Background(), 12345)
	if err != nil {
		t.Fatalf("SongByID error: %v", err)
	}
	if song != nil {
		t.Fatalf("expected absent song, got %+v", song)
	}
	if len(src.calls) != 0 {
		t.Fatalf("expected zero external calls, got %v", src.calls)
	}
}

func TestInsertFailureAbortsBatch(t *testing.T) {
	st := &fakeStore{insertArtistErr: errors.New("insert failed")}
	src := &fakeSource{artists: []catalog.Artist{
		{ID: "1", Name: "Artist 1"},
		{ID: "2", Name: "Artist 2"},
	}}
	r := newTestResolver(st, src)

	artist, err := r.Artist(context.Background(), "Artist 1")
	if err != nil {
		t.Fatalf("insert failure must not surface, got %v", err)
	}
	if artist != nil {
		t.Fatalf("expected absent artist, got %+v", artist)
	}
	if st.insertedArtists != 0 {
		t.Fatalf("expected no successful inserts, got %d", st.insertedArtists)
	}
}

func TestRepeatedMissInsertsOnce(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{artists: []catalog.Artist{{ID: "1", Name: "Artist 1"}}}
	r := newTestResolver(st, src)

	if _, err := r.Artist(context.Background(), "Artist 1"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if _, err := r.Artist(context.Background(), "artist 1"); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if len(st.artists) != 1 {
		t.Fatalf("expected one stored row, got %d", len(st.artists))
	}
	if len(src.calls) != 1 {
		t.Fatalf("expected one external call across both lookups, got %v", src.calls)
	}
}
