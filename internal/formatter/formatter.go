// package formatter provides functions to render playlist data in various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/shared"
)

// ToCSV converts a playlist's tracks to CSV format with columns: ID, Title, Artist, Album, Duration, ISRC
func ToCSV(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Duration", "ISRC"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			track.ID,
			track.Title,
			track.Artist,
			track.Album,
			strconv.Itoa(track.Duration),
			track.ISRC,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToMarkdown converts a playlist and its tracks to Markdown format
func ToMarkdown(playlist models.Playlist, tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name))

	if playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", playlist.Description))
	}
	if playlist.Prompt != "" {
		buf.WriteString(fmt.Sprintf("**Prompt**: %s\n\n", playlist.Prompt))
	}

	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n", len(tracks)))
	buf.WriteString(fmt.Sprintf("**Visibility**: %s\n\n", shared.VisibilityString(playlist.Public)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range tracks {
		duration := shared.FormatDuration(track.Duration)
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, track.Artist, track.Title, albumPart, duration))
	}

	return buf.Bytes(), nil
}

// ToText converts a playlist and its tracks to plain text format
func ToText(playlist models.Playlist, tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name))
	if playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", playlist.Description))
	}
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(tracks)))

	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.Artist, track.Title))
	}

	return buf.Bytes(), nil
}

// RenderPreview renders a generation preview for terminal display.
func RenderPreview(preview *models.GenerationPreview) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Prompt: %s\n", preview.Prompt))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n", preview.Count))
	if preview.WarningUnderMinCount {
		buf.WriteString(fmt.Sprintf("Note: only %d tracks could be generated for this prompt.\n", preview.Count))
	}
	buf.WriteString("\n")

	for i, track := range preview.Tracks {
		duration := ""
		if track.Duration > 0 {
			duration = fmt.Sprintf(" [%s]", shared.FormatDuration(track.Duration))
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, track.Artist, track.Title, duration))
	}

	return buf.Bytes()
}

// ToMetadataJSON generates a JSON representation of playlist metadata (without tracks)
func ToMetadataJSON(playlist models.Playlist) ([]byte, error) {
	return shared.MarshalJSON(playlist, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	TracksFile   string
	MetadataFile string
}

// WriteCSVExport writes a playlist to CSV format with an accompanying metadata JSON file.
//
// Defaults to playlist ID as the base filename & creates {base}_tracks.csv and {base}_metadata.json
func WriteCSVExport(playlist models.Playlist, tracks []models.Track, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = playlist.ID
	}

	csvData, err := ToCSV(tracks)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	tracksFile := baseFilepath + "_tracks.csv"
	if err := os.WriteFile(tracksFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(playlist)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		TracksFile:   tracksFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteMarkdownExport writes a playlist to README.md in a dedicated directory.
//
// Directory name defaults to the playlist ID.
func WriteMarkdownExport(playlist models.Playlist, tracks []models.Track, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = playlist.ID
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ToMarkdown(playlist, tracks)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return mdFile, nil
}

// WriteTextExport writes a playlist to plain text format.
//
// Defaults to {playlist.ID}_tracks.txt as the filename.
func WriteTextExport(playlist models.Playlist, tracks []models.Track, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_tracks.txt", playlist.ID)
	}

	textData, err := ToText(playlist, tracks)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
