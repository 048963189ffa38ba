package catalog

import "testing"

func TestArtistRow(t *testing.T) {
	a := Artist{
		ID:         "111239",
		Name:       "Coldplay",
		Label:      "Parlophone",
		FormedYear: "1996",
		Genre:      "Alternative Rock",
		Country:    "London, England",
		Biography:  "Coldplay are a British rock band.",
		Fanart:     "https://example.test/fanart1.jpg",
		Fanart4:    "https://example.test/fanart4.jpg",
	}

	row := a.Row()
	if row.ArtistID != 111239 {
		t.Errorf("ArtistID = %d", row.ArtistID)
	}
	if row.Name != "Coldplay" || row.Label != "Parlophone" || row.FormedYear != "1996" {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.Bio != a.Biography {
		t.Errorf("Bio = %q", row.Bio)
	}
	if row.Fanart1 != a.Fanart || row.Fanart4 != a.Fanart4 {
		t.Errorf("fanart mapping: %+v", row)
	}
}

func TestAlbumRow(t *testing.T) {
	a := Album{
		ID:           "2115888",
		ArtistID:     "111239",
		Name:         "Parachutes",
		ArtistName:   "Coldplay",
		YearReleased: "2000",
	}

	row := a.Row()
	if row.AlbumID != 2115888 || row.ArtistID != 111239 {
		t.Errorf("unexpected ids: %+v", row)
	}
	if row.Name != "Parachutes" || row.ArtistName != "Coldplay" || row.YearReleased != "2000" {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestTrackRow(t *testing.T) {
	tr := Track{
		ID:          "32793500",
		AlbumID:     "2115888",
		AlbumName:   "Parachutes",
		ArtistID:    "111239",
		ArtistName:  "Coldplay",
		Name:        "Yellow",
		Video:       "https://example.test/video",
		Screenshot2: "https://example.test/screen2.jpg",
	}

	row := tr.Row()
	if row.SongID != 32793500 || row.AlbumID != 2115888 || row.ArtistID != 111239 {
		t.Errorf("unexpected ids: %+v", row)
	}
	if row.Name != "Yellow" || row.AlbumName != "Parachutes" || row.Video != tr.Video {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.Screenshot2 != tr.Screenshot2 {
		t.Errorf("Screenshot2 = %q", row.Screenshot2)
	}
}

func TestParseIDFallback(t *testing.T) {
	cases := map[string]int64{
		"123":   123,
		" 123 ": 123,
		"":      0,
		"null":  0,
		"12x":   0,
	}
	for in, want := range cases {
		if got := parseID(in); got != want {
			t.Errorf("parseID(%q) = %d, want %d", in, got, want)
		}
	}
}
