package models

import "fmt"

// PersistedProfile is the database-backed account profile.
type PersistedProfile struct {
	entity
	email       string
	displayName string
	plan        string
}

// NewPersistedProfile creates a profile entity from backend profile data.
func NewPersistedProfile(sequence int, dto Profile) *PersistedProfile {
	return &PersistedProfile{
		entity:      newEntity(sequence),
		email:       dto.Email,
		displayName: dto.DisplayName,
		plan:        dto.Plan,
	}
}

func (p *PersistedProfile) Email() string       { return p.email }
func (p *PersistedProfile) DisplayName() string { return p.displayName }
func (p *PersistedProfile) Plan() string        { return p.plan }
func (p *PersistedProfile) IsPro() bool         { return p.plan == "pro" }

// SetPlan updates the cached plan entitlement.
func (p *PersistedProfile) SetPlan(plan string) { p.plan = plan }

// Validate checks the profile's required fields.
func (p *PersistedProfile) Validate() error {
	if p.email == "" {
		return fmt.Errorf("profile email is required")
	}
	if p.plan != "free" && p.plan != "pro" {
		return fmt.Errorf("invalid plan: %s", p.plan)
	}
	return nil
}

// DTO converts the entity back to its transfer representation.
func (p *PersistedProfile) DTO() Profile {
	return Profile{
		ID:          p.id,
		Email:       p.email,
		DisplayName: p.displayName,
		Plan:        p.plan,
	}
}

// PersistedPlaylist is a locally cached playlist with its originating prompt.
type PersistedPlaylist struct {
	entity
	remoteID  string
	profileID string
	dto       Playlist
}

// NewPersistedPlaylist creates a playlist entity wrapping a backend playlist DTO.
func NewPersistedPlaylist(sequence int, remoteID, profileID string, dto Playlist) *PersistedPlaylist {
	return &PersistedPlaylist{
		entity:    newEntity(sequence),
		remoteID:  remoteID,
		profileID: profileID,
		dto:       dto,
	}
}

func (p *PersistedPlaylist) RemoteID() string    { return p.remoteID }
func (p *PersistedPlaylist) ProfileID() string   { return p.profileID }
func (p *PersistedPlaylist) Name() string        { return p.dto.Name }
func (p *PersistedPlaylist) Description() string { return p.dto.Description }
func (p *PersistedPlaylist) Prompt() string      { return p.dto.Prompt }
func (p *PersistedPlaylist) TrackCount() int     { return p.dto.TrackCount }
func (p *PersistedPlaylist) Public() bool        { return p.dto.Public }

// Validate checks the playlist's required fields.
func (p *PersistedPlaylist) Validate() error {
	if p.dto.Name == "" {
		return fmt.Errorf("playlist name is required")
	}
	if p.remoteID == "" {
		return fmt.Errorf("playlist remote ID is required")
	}
	return nil
}

// DTO returns the transfer representation of the cached playlist.
func (p *PersistedPlaylist) DTO() Playlist {
	dto := p.dto
	dto.ID = p.remoteID
	return dto
}

// PersistedTrack is a locally cached track.
type PersistedTrack struct {
	entity
	remoteID string
	dto      Track
}

// NewPersistedTrack creates a track entity wrapping a backend track DTO.
func NewPersistedTrack(sequence int, remoteID string, dto Track) *PersistedTrack {
	return &PersistedTrack{
		entity:   newEntity(sequence),
		remoteID: remoteID,
		dto:      dto,
	}
}

func (t *PersistedTrack) RemoteID() string { return t.remoteID }
func (t *PersistedTrack) Title() string    { return t.dto.Title }
func (t *PersistedTrack) Artist() string   { return t.dto.Artist }
func (t *PersistedTrack) Album() string    { return t.dto.Album }
func (t *PersistedTrack) Duration() int    { return t.dto.Duration }
func (t *PersistedTrack) ISRC() string     { return t.dto.ISRC }

// Validate checks the track's required fields.
func (t *PersistedTrack) Validate() error {
	if t.dto.Title == "" {
		return fmt.Errorf("track title is required")
	}
	if t.remoteID == "" {
		return fmt.Errorf("track remote ID is required")
	}
	return nil
}

// DTO returns the transfer representation of the cached track.
func (t *PersistedTrack) DTO() Track {
	dto := t.dto
	dto.ID = t.remoteID
	return dto
}
