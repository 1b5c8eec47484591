package tasks

import (
	"fmt"

	"github.com/soundwhiskers/swx/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchSource Phase = iota
	SearchTracks
	CreatePlaylist
	AddTracks
)

func (p Phase) String() string {
	switch p {
	case FetchSource:
		return "fetch_source"
	case SearchTracks:
		return "search_tracks"
	case CreatePlaylist:
		return "create_playlist"
	case AddTracks:
		return "add_tracks"
	default:
		return ""
	}
}

func fetchSourceUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSource,
		Step:    step,
		Total:   total,
		Message: "Fetching playlist from Sound Whiskers...",
	}
}

func foundPlaylistUpdate(step, total int, pl *models.Playlist, trackCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSource,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Found playlist: %s (%d tracks)", pl.Name, trackCount),
		Data:    pl,
	}
}

func searchTracksUpdate(step, total int, tr *models.Track, destName string) ProgressUpdate {
	if tr == nil {
		return ProgressUpdate{
			Phase:   SearchTracks,
			Step:    step,
			Total:   total,
			Message: fmt.Sprintf("Searching for tracks on %s...", destName),
		}
	}
	return ProgressUpdate{
		Phase:   SearchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s - %s", step, total, tr.Artist, tr.Title),
	}
}

func createDestinationUpdate(step, total int, destName string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Creating playlist on %s...", destName),
	}
}

func addTracksUpdate(step, total int, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Adding %d matched tracks...", count),
	}
}

func createPlaylistUpdate(step, total int, pl *models.Playlist) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Playlist created: %s (ID: %s)", pl.Name, pl.ID),
		Data:    pl,
	}
}
