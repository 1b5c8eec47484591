package shared

import "testing"

func TestNormalizeTrackKey(t *testing.T) {
	tc := []struct {
		name   string
		title  string
		artist string
		want   string
	}{
		{
			name:   "basic normalization",
			title:  "Song Title",
			artist: "Artist Name",
			want:   "song title|artist name",
		},
		{
			name:   "extra whitespace",
			title:  "  Song   Title  ",
			artist: "  Artist   Name  ",
			want:   "song title|artist name",
		},
		{
			name:   "mixed case",
			title:  "SoNg TiTlE",
			artist: "ArTiSt NaMe",
			want:   "song title|artist name",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTrackKey(tt.title, tt.artist)
			if got != tt.want {
				t.Errorf("normalizeTrackKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{212, "3:32"},
		{3600, "60:00"},
	}

	for _, tt := range tc {
		got := FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestVisibilityString(t *testing.T) {
	if got := VisibilityString(true); got != "Public" {
		t.Errorf("expected Public, got %v", got)
	}
	if got := VisibilityString(false); got != "Private" {
		t.Errorf("expected Private, got %v", got)
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected distinct IDs")
	}
}

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	b, err := GenerateState()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(a) == 0 {
		t.Fatal("expected non-empty state token")
	}
	if a == b {
		t.Error("expected distinct state tokens")
	}
}
