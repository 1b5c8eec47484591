// Typed endpoint wrappers over the gateway.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/soundwhiskers/swx/internal/models"
)

// GeneratePlaylist requests an AI-generated playlist preview for the prompt.
//
// Calls POST /api/playlists/generate. Entitlement and quota denials surface
// as the gateway's sentinel errors; the server-side entitlement check is
// independent of any client-side guard.
func (c *Client) GeneratePlaylist(ctx context.Context, prompt string) (*models.GenerationPreview, error) {
	body := struct {
		Prompt string `json:"prompt"`
	}{Prompt: prompt}

	var preview models.GenerationPreview
	if err := c.Do(ctx, http.MethodPost, "/api/playlists/generate", body, &preview); err != nil {
		return nil, err
	}

	preview.Prompt = prompt
	return &preview, nil
}

// CreatePlaylist persists a playlist draft on the backend.
//
// Calls POST /api/playlists and returns the created playlist.
func (c *Client) CreatePlaylist(ctx context.Context, draft models.PlaylistDraft) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := c.Do(ctx, http.MethodPost, "/api/playlists", draft, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListPlaylists retrieves all playlists for the authenticated account.
func (c *Client) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := c.Do(ctx, http.MethodGet, "/api/playlists", nil, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// GetPlaylist retrieves a playlist by ID without its tracks.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	var playlist models.Playlist
	endpoint := fmt.Sprintf("/api/playlists/%s", url.PathEscape(playlistID))
	if err := c.Do(ctx, http.MethodGet, endpoint, nil, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetPlaylistTracks retrieves the full track listing of a playlist.
func (c *Client) GetPlaylistTracks(ctx context.Context, playlistID string) ([]models.Track, error) {
	var tracks []models.Track
	endpoint := fmt.Sprintf("/api/playlists/%s/tracks", url.PathEscape(playlistID))
	if err := c.Do(ctx, http.MethodGet, endpoint, nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// DeletePlaylist removes a playlist on the backend.
func (c *Client) DeletePlaylist(ctx context.Context, playlistID string) error {
	endpoint := fmt.Sprintf("/api/playlists/%s", url.PathEscape(playlistID))
	return c.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// GetProfile retrieves the authenticated account profile, including the
// plan entitlement consumed by the generation workflow's client-side guard.
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.Do(ctx, http.MethodGet, "/api/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Health checks backend availability via GET /health.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	var health map[string]any
	if err := c.Do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return health, nil
}
