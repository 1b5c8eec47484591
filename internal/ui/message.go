package ui

import (
	"github.com/soundwhiskers/swx/internal/models"
)

// generationDoneMsg signals that a generation attempt has settled.
type generationDoneMsg struct {
	err error
}

// creationDoneMsg signals that a creation attempt has settled.
// playlist is nil when the persistence operation faulted.
type creationDoneMsg struct {
	playlist *models.Playlist
}
