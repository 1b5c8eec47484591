package models

// Playlist represents a playlist as returned by the Sound Whiskers backend.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt,omitempty"`
	TrackCount  int    `json:"trackCount"`
	Public      bool   `json:"public"`
}

// Track represents a music track from the backend or a music service.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	Duration int    `json:"duration,omitempty"` // Duration in seconds
	ISRC     string `json:"isrc,omitempty"`     // International Standard Recording Code for matching
}

// GenerationPreview is the immutable snapshot produced by a successful
// generation call. It is replaced wholesale on each new generation and held
// only in memory until explicitly discarded or persisted.
type GenerationPreview struct {
	Prompt               string  `json:"prompt"`
	Count                int     `json:"count"`
	WarningUnderMinCount bool    `json:"warningUnderMinCount"`
	Tracks               []Track `json:"tracks"`
}

// PlaylistDraft is the creation payload for a new playlist.
type PlaylistDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Prompt      string  `json:"prompt,omitempty"`
	Public      bool    `json:"public"`
	Tracks      []Track `json:"tracks"`
}

// Profile represents the account profile as returned by the backend.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Plan        string `json:"plan"` // free, pro
}

// IsPro reports whether the profile is entitled to premium-only features.
func (p Profile) IsPro() bool {
	return p.Plan == "pro"
}
