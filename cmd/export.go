package main

import (
	"context"
	"fmt"

	"github.com/soundwhiskers/swx/internal/repositories"
	"github.com/soundwhiskers/swx/internal/shared"
	"github.com/soundwhiskers/swx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ExportSpotify exports a saved playlist to Spotify.
//
// Fetches the playlist from the backend, matches each track via Spotify
// search, and creates the playlist on the authenticated Spotify account.
func (r *Runner) ExportSpotify(ctx context.Context, cmd *cli.Command) error {
	sourceIDOrName := cmd.StringArg("playlist")
	if sourceIDOrName == "" {
		return fmt.Errorf("%w: a playlist name or ID is required", shared.ErrMissingArgument)
	}

	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized, run 'swx auth spotify' first", shared.ErrServiceUnavailable)
	}

	if err := r.spotify.Authenticate(ctx, r.config.Credentials.Spotify.Map()); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	r.enableTrackCache()

	r.logger.Info("starting export", "source", sourceIDOrName, "dest", "spotify")
	r.writePlain("Starting playlist export...\n")
	r.writePlain("Source: %s\n", sourceIDOrName)
	r.writePlain("Destination: Spotify\n\n")

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchSource:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.SearchTracks:
				if update.Step == 0 {
					r.writePlain("\n🔍 %s\n", update.Message)
				} else {
					r.writePlain("   %s\n", update.Message)
				}
			case tasks.CreatePlaylist:
				r.writePlain("\n📝 %s\n", update.Message)
			case tasks.AddTracks:
				r.writePlain("➕ %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Run(ctx, sourceIDOrName, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Source: %s (%d tracks)\n", result.SourcePlaylist.Name, result.TotalTracks)
	r.writePlain("Destination: %s (%d tracks)\n", result.DestPlaylist.Name, result.DestPlaylist.TrackCount)
	r.writePlain("Success rate: %d/%d (%.1f%%)\n", result.SuccessCount, result.TotalTracks, result.MatchPercentage)

	if result.FailedCount > 0 {
		r.writePlain("\nFailed to match %d tracks:\n", result.FailedCount)
		for _, match := range result.TrackMatches {
			if match.Error != nil {
				r.writePlain("  - %s - %s\n", match.Original.Artist, match.Original.Title)
			}
		}
	}

	return nil
}

// enableTrackCache wires the local track cache into the export engine when
// the cache database is available. Failures only disable caching.
func (r *Runner) enableTrackCache() {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		r.logger.Debug("track cache unavailable", "error", err)
		return
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		r.logger.Debug("track cache migrations failed", "error", err)
		db.Close()
		return
	}

	r.engine.SetTrackCache(repositories.NewTrackRepository(db))
}
