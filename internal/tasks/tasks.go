// package tasks implements playlist export operations to external music services.
//
// The core abstraction is ExportEngine, which fetches a playlist from the
// backend, matches its tracks on the destination service, and recreates the
// playlist there. Operations emit progress updates via channels for
// non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/services"
	"github.com/soundwhiskers/swx/internal/shared"
)

// TrackMatchResult represents the result of attempting to match a single track.
type TrackMatchResult struct {
	Original models.Track  // Original track from the backend playlist
	Matched  *models.Track // Matched track on the destination (nil if not found)
	Error    error         // Error if match failed
}

// ExportRunResult contains all data from a full export operation.
type ExportRunResult struct {
	SourcePlaylist  *models.Playlist   // Backend playlist being exported
	SourceTracks    []models.Track     // Full track listing of the source
	DestPlaylist    *models.Playlist   // Created destination playlist
	TrackMatches    []TrackMatchResult // Individual track match results
	SuccessCount    int                // Number of successfully matched tracks
	FailedCount     int                // Number of failed matches
	TotalTracks     int                // Total tracks processed
	MatchPercentage float64            // Success rate as percentage
}

// BackendClient defines the backend operations the engine needs.
// This abstraction allows for easier testing and decoupling from concrete implementation.
type BackendClient interface {
	GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error)
	GetPlaylistTracks(ctx context.Context, playlistID string) ([]models.Track, error)
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
}

// TrackCacher persists tracks encountered during exports.
// [repositories.TrackRepository] satisfies this interface.
type TrackCacher interface {
	CacheTrack(track models.Track) (*models.PersistedTrack, error)
}

// Engine defines operations for exporting playlists to external services.
type Engine interface {
	// Run performs a full export by fetching the source playlist, searching
	// for each track on the destination, and creating the playlist there.
	Run(ctx context.Context, sourceIDOrName string, progress chan<- ProgressUpdate) (*ExportRunResult, error)
}

// ExportEngine implements Engine for playlist export operations.
// Contains dependencies on the backend client and the destination service.
type ExportEngine struct {
	backend BackendClient
	dest    services.Service
	cache   TrackCacher
}

// NewExportEngine creates a new ExportEngine with the provided backend client and destination service.
func NewExportEngine(backend BackendClient, dest services.Service) *ExportEngine {
	return &ExportEngine{
		backend: backend,
		dest:    dest,
	}
}

// SetDestination replaces the destination service, e.g. after a fresh OAuth
// authorization mid-session.
func (e *ExportEngine) SetDestination(dest services.Service) {
	e.dest = dest
}

// SetTrackCache enables silent local caching of tracks seen during exports.
func (e *ExportEngine) SetTrackCache(cache TrackCacher) {
	e.cache = cache
}

// cacheTracks persists tracks to the local cache, ignoring failures so
// caching never disrupts an export.
func (e *ExportEngine) cacheTracks(tracks []models.Track) {
	if e.cache == nil {
		return
	}
	for _, track := range tracks {
		_, _ = e.cache.CacheTrack(track)
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *ExportEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// resolvePlaylist fetches the source playlist by ID, falling back to a
// case-sensitive name lookup across the account's playlists.
func (e *ExportEngine) resolvePlaylist(ctx context.Context, idOrName string) (*models.Playlist, error) {
	playlist, err := e.backend.GetPlaylist(ctx, idOrName)
	if err == nil {
		return playlist, nil
	}

	playlists, listErr := e.backend.ListPlaylists(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("%w: failed to list playlists: %v", shared.ErrAPIRequest, listErr)
	}

	for _, pl := range playlists {
		if pl.Name == idOrName {
			return &pl, nil
		}
	}

	return nil, fmt.Errorf("%w: no playlist found with name '%s'", shared.ErrPlaylistNotFound, idOrName)
}

// Run performs a full export of a backend playlist to the destination service.
func (e *ExportEngine) Run(ctx context.Context, sourceIDOrName string, progress chan<- ProgressUpdate) (*ExportRunResult, error) {
	if e.backend == nil {
		return nil, fmt.Errorf("%w: backend client not initialized", shared.ErrServiceUnavailable)
	}
	if e.dest == nil {
		return nil, fmt.Errorf("%w: destination service not initialized", shared.ErrServiceUnavailable)
	}

	result := &ExportRunResult{}

	e.sendProgress(progress, fetchSourceUpdate(1, 1))

	srcPlaylist, err := e.resolvePlaylist(ctx, sourceIDOrName)
	if err != nil {
		return nil, err
	}

	tracks, err := e.backend.GetPlaylistTracks(ctx, srcPlaylist.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch playlist tracks: %v", shared.ErrAPIRequest, err)
	}

	total := len(tracks)
	result.SourcePlaylist = srcPlaylist
	result.SourceTracks = tracks
	result.TotalTracks = total

	e.cacheTracks(tracks)

	e.sendProgress(progress, foundPlaylistUpdate(1, 1, srcPlaylist, total))
	e.sendProgress(progress, searchTracksUpdate(0, total, nil, e.dest.Name()))

	matches := make([]TrackMatchResult, total)
	successCount := 0

	for i, track := range tracks {
		e.sendProgress(progress, searchTracksUpdate(i+1, total, &track, e.dest.Name()))

		matched, err := e.dest.SearchTrack(ctx, track.Title, track.Artist)
		matches[i] = TrackMatchResult{
			Original: track,
			Matched:  matched,
			Error:    err,
		}

		if err == nil {
			successCount++
		}
	}

	result.TrackMatches = matches
	result.SuccessCount = successCount
	result.FailedCount = total - successCount
	if result.TotalTracks > 0 {
		result.MatchPercentage = float64(successCount) / float64(result.TotalTracks) * 100
	}

	if successCount == 0 {
		return result, fmt.Errorf("no tracks were matched - cannot create empty playlist")
	}

	e.sendProgress(progress, createDestinationUpdate(1, 1, e.dest.Name()))

	description := srcPlaylist.Description
	if description == "" {
		description = fmt.Sprintf("Exported from Sound Whiskers: %s", srcPlaylist.Name)
	}

	destPlaylist, err := e.dest.CreatePlaylist(ctx, srcPlaylist.Name, description, srcPlaylist.Public)
	if err != nil {
		return result, fmt.Errorf("%w: failed to create playlist: %v", shared.ErrAPIRequest, err)
	}

	matchedIDs := make([]string, 0, successCount)
	for _, match := range matches {
		if match.Matched != nil {
			matchedIDs = append(matchedIDs, match.Matched.ID)
		}
	}

	e.sendProgress(progress, addTracksUpdate(1, 1, len(matchedIDs)))

	if err := e.dest.AddTracks(ctx, destPlaylist.ID, matchedIDs); err != nil {
		return result, fmt.Errorf("%w: failed to add tracks: %v", shared.ErrAPIRequest, err)
	}

	destPlaylist.TrackCount = len(matchedIDs)
	result.DestPlaylist = destPlaylist
	e.sendProgress(progress, createPlaylistUpdate(1, 1, destPlaylist))
	return result, nil
}
