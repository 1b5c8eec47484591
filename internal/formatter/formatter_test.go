package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soundwhiskers/swx/internal/models"
)

func testPlaylist() (models.Playlist, []models.Track) {
	playlist := models.Playlist{
		ID:          "pl_1",
		Name:        "Upbeat Running Mix",
		Description: "High-energy tracks",
		Prompt:      "upbeat songs for a morning run",
		TrackCount:  2,
		Public:      false,
	}
	tracks := []models.Track{
		{ID: "t_1", Title: "Run Boy Run", Artist: "Woodkid", Album: "The Golden Age", Duration: 212, ISRC: "FR9W11212290"},
		{ID: "t_2", Title: "Midnight City", Artist: "M83", Duration: 243},
	}
	return playlist, tracks
}

func TestToCSV(t *testing.T) {
	_, tracks := testPlaylist()

	data, err := ToCSV(tracks)
	if err != nil {
		t.Fatalf("ToCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header + 2 tracks), got %d", len(lines))
	}
	if lines[0] != "ID,Title,Artist,Album,Duration,ISRC" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Run Boy Run") || !strings.Contains(lines[1], "FR9W11212290") {
		t.Errorf("unexpected first record: %s", lines[1])
	}
}

func TestToMarkdown(t *testing.T) {
	playlist, tracks := testPlaylist()

	data, err := ToMarkdown(playlist, tracks)
	if err != nil {
		t.Fatalf("ToMarkdown() error = %v", err)
	}
	md := string(data)

	if !strings.HasPrefix(md, "# Upbeat Running Mix") {
		t.Error("expected title heading")
	}
	if !strings.Contains(md, "**Prompt**: upbeat songs for a morning run") {
		t.Error("expected prompt line")
	}
	if !strings.Contains(md, "**Visibility**: Private") {
		t.Error("expected visibility line")
	}
	if !strings.Contains(md, "1. Woodkid - Run Boy Run (The Golden Age) [3:32]") {
		t.Errorf("unexpected track line, got:\n%s", md)
	}
	// No album part when album is empty
	if !strings.Contains(md, "2. M83 - Midnight City [4:03]") {
		t.Errorf("unexpected second track line, got:\n%s", md)
	}
}

func TestToText(t *testing.T) {
	playlist, tracks := testPlaylist()

	data, err := ToText(playlist, tracks)
	if err != nil {
		t.Fatalf("ToText() error = %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "Playlist: Upbeat Running Mix") {
		t.Error("expected playlist name")
	}
	if !strings.Contains(text, "Tracks: 2") {
		t.Error("expected track count")
	}
	if !strings.Contains(text, "1. Woodkid - Run Boy Run") {
		t.Error("expected first track")
	}
}

func TestRenderPreview(t *testing.T) {
	t.Run("full preview", func(t *testing.T) {
		preview := &models.GenerationPreview{
			Prompt: "dinner party jazz",
			Count:  2,
			Tracks: []models.Track{
				{Title: "Take Five", Artist: "Dave Brubeck", Duration: 324},
				{Title: "So What", Artist: "Miles Davis"},
			},
		}

		out := string(RenderPreview(preview))
		if !strings.Contains(out, "Prompt: dinner party jazz") {
			t.Error("expected prompt line")
		}
		if !strings.Contains(out, "1. Dave Brubeck - Take Five [5:24]") {
			t.Errorf("unexpected first track line, got:\n%s", out)
		}
		if !strings.Contains(out, "2. Miles Davis - So What\n") {
			t.Errorf("expected duration omitted when unknown, got:\n%s", out)
		}
		if strings.Contains(out, "Note:") {
			t.Error("unexpected short-playlist note")
		}
	})

	t.Run("short preview notes the count", func(t *testing.T) {
		preview := &models.GenerationPreview{
			Prompt:               "very obscure genre",
			Count:                3,
			WarningUnderMinCount: true,
			Tracks:               make([]models.Track, 3),
		}

		out := string(RenderPreview(preview))
		if !strings.Contains(out, "only 3 tracks") {
			t.Errorf("expected short-playlist note, got:\n%s", out)
		}
	})
}

func TestWriteCSVExport(t *testing.T) {
	playlist, tracks := testPlaylist()
	base := filepath.Join(t.TempDir(), "export")

	result, err := WriteCSVExport(playlist, tracks, base)
	if err != nil {
		t.Fatalf("WriteCSVExport() error = %v", err)
	}

	if result.TracksFile != base+"_tracks.csv" {
		t.Errorf("unexpected tracks file: %s", result.TracksFile)
	}

	csvData, err := os.ReadFile(result.TracksFile)
	if err != nil {
		t.Fatalf("failed to read tracks file: %v", err)
	}
	if !strings.Contains(string(csvData), "Run Boy Run") {
		t.Error("tracks file missing track data")
	}

	metaData, err := os.ReadFile(result.MetadataFile)
	if err != nil {
		t.Fatalf("failed to read metadata file: %v", err)
	}
	if !strings.Contains(string(metaData), "Upbeat Running Mix") {
		t.Error("metadata file missing playlist name")
	}
}

func TestWriteMarkdownExport(t *testing.T) {
	playlist, tracks := testPlaylist()
	dir := filepath.Join(t.TempDir(), "playlist-export")

	mdFile, err := WriteMarkdownExport(playlist, tracks, dir)
	if err != nil {
		t.Fatalf("WriteMarkdownExport() error = %v", err)
	}

	data, err := os.ReadFile(mdFile)
	if err != nil {
		t.Fatalf("failed to read markdown file: %v", err)
	}
	if !strings.Contains(string(data), "# Upbeat Running Mix") {
		t.Error("markdown file missing heading")
	}
}

func TestWriteTextExport(t *testing.T) {
	playlist, tracks := testPlaylist()
	path := filepath.Join(t.TempDir(), "playlist.txt")

	written, err := WriteTextExport(playlist, tracks, path)
	if err != nil {
		t.Fatalf("WriteTextExport() error = %v", err)
	}
	if written != path {
		t.Errorf("expected path %s, got %s", path, written)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read text file: %v", err)
	}
	if !strings.Contains(string(data), "Playlist: Upbeat Running Mix") {
		t.Error("text file missing playlist name")
	}
}
