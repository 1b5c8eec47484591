package services

import (
	"context"

	"github.com/soundwhiskers/swx/internal/models"
	"golang.org/x/oauth2"
)

// Service defines the interface for music service providers that Sound
// Whiskers playlists can be exported to.
type Service interface {
	// Authenticate performs OAuth or token authentication with the service.
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// GetPlaylists retrieves all playlists for the authenticated user.
	GetPlaylists(ctx context.Context) ([]models.Playlist, error)

	// CreatePlaylist creates an empty playlist on the service.
	CreatePlaylist(ctx context.Context, name, description string, public bool) (*models.Playlist, error)

	// AddTracks appends tracks to an existing playlist by service track ID.
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error

	// SearchTrack searches for a track by title and artist.
	// Returns the best match or an error if no match is found.
	SearchTrack(ctx context.Context, title, artist string) (*models.Track, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// OAuthService extends Service for providers using the OAuth2 authorization
// code flow, used by the CLI's local callback server.
type OAuthService interface {
	Service

	// GetAuthURL returns the authorization URL for user login.
	GetAuthURL(state string) string

	// OAuthConfig returns the underlying OAuth2 configuration.
	OAuthConfig() *oauth2.Config
}
