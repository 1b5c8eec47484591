package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/soundwhiskers/swx/internal/formatter"
	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistList lists all saved playlists for the authenticated account.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("listing playlists")

	playlists, err := r.client.ListPlaylists(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(playlists, pretty)
	}

	r.writePlain("Found %d playlists:\n\n", len(playlists))
	for i, p := range playlists {
		r.writePlain("%d. %s\n", i+1, p.Name)
		if p.Prompt != "" {
			r.writePlain("   Prompt: %s\n", p.Prompt)
		}
		r.writePlain("   ID: %s\n", p.ID)
		r.writePlain("   Tracks: %d\n", p.TrackCount)
		r.writePlain("   Visibility: %s\n", shared.VisibilityString(p.Public))
		r.writePlain("\n")
	}

	return nil
}

// PlaylistShow shows one playlist with its full track listing.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if playlistID == "" {
		return fmt.Errorf("%w: a playlist ID is required", shared.ErrMissingArgument)
	}

	playlist, tracks, err := r.fetchPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(struct {
			Playlist *models.Playlist `json:"playlist"`
			Tracks   []models.Track   `json:"tracks"`
		}{playlist, tracks}, pretty)
	}

	r.writePlain("Playlist: %s\n", playlist.Name)
	if playlist.Prompt != "" {
		r.writePlain("Prompt: %s\n", playlist.Prompt)
	}
	if playlist.Description != "" {
		r.writePlain("Description: %s\n", playlist.Description)
	}
	r.writePlain("Tracks: %d\n\n", len(tracks))

	for i, track := range tracks {
		r.writePlain("%d. %s - %s\n", i+1, track.Artist, track.Title)
		if track.Album != "" {
			r.writePlain("   Album: %s\n", track.Album)
		}
		if track.Duration > 0 {
			r.writePlain("   Duration: %s\n", shared.FormatDuration(track.Duration))
		}
	}

	return nil
}

// PlaylistDelete deletes a saved playlist on the backend.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: a playlist ID is required", shared.ErrMissingArgument)
	}

	r.logger.Info("deleting playlist", "id", playlistID)

	if err := r.client.DeletePlaylist(ctx, playlistID); err != nil {
		return err
	}

	r.writePlain("✓ Playlist %s deleted\n", playlistID)
	return nil
}

// PlaylistExportFiles writes a playlist to local files in the requested format.
func (r *Runner) PlaylistExportFiles(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")

	if playlistID == "" {
		return fmt.Errorf("%w: a playlist ID is required", shared.ErrMissingArgument)
	}

	playlist, tracks, err := r.fetchPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	r.logger.Info("exporting playlist to files", "id", playlistID, "format", format)

	switch format {
	case "csv":
		if output == "" {
			output = fmt.Sprintf("swx_%s", playlist.ID)
		}
		result, err := formatter.WriteCSVExport(*playlist, tracks, output)
		if err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
		r.writePlain("✓ Playlist exported\n")
		r.writePlain("  Tracks: %s\n", result.TracksFile)
		r.writePlain("  Metadata: %s\n", result.MetadataFile)
	case "markdown", "md":
		if output == "" {
			output = "."
		}
		path, err := formatter.WriteMarkdownExport(*playlist, tracks, output)
		if err != nil {
			return fmt.Errorf("failed to write markdown export: %w", err)
		}
		r.writePlain("✓ Playlist exported to %s\n", path)
	case "text", "txt":
		if output == "" {
			output = fmt.Sprintf("swx_%s.txt", playlist.ID)
		}
		path, err := formatter.WriteTextExport(*playlist, tracks, output)
		if err != nil {
			return fmt.Errorf("failed to write text export: %w", err)
		}
		r.writePlain("✓ Playlist exported to %s\n", path)
	default:
		return fmt.Errorf("%w: unknown format %q (must be csv, markdown, or text)", shared.ErrInvalidArgument, format)
	}

	return nil
}

// fetchPlaylist retrieves a playlist and its tracks from the backend.
func (r *Runner) fetchPlaylist(ctx context.Context, playlistID string) (*models.Playlist, []models.Track, error) {
	playlist, err := r.client.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, nil, err
	}

	tracks, err := r.client.GetPlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, nil, err
	}

	return playlist, tracks, nil
}
