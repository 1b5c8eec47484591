// Spotify API implementation of [Service]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// SpotifyUser represents a Spotify user profile.
type SpotifyUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Country     string `json:"country"`
	Product     string `json:"product"` // premium, free, etc.
}

type externalIDs struct {
	ISRC string `json:"isrc"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	Album       SpotifyAlbum    `json:"album"`
	DurationMS  int             `json:"duration_ms"`
	ExternalIDs externalIDs     `json:"external_ids"`
	URI         string          `json:"uri"`
}

type simplePlaylistTrack struct {
	Total int `json:"total"`
}

// SpotifySimplePlaylist represents a simplified playlist object (used in lists).
type SpotifySimplePlaylist struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Tracks      simplePlaylistTrack `json:"tracks"`
	URI         string              `json:"uri"`
}

// SpotifyPaginatedPlaylists represents a paginated response of playlists.
type SpotifyPaginatedPlaylists struct {
	Items    []SpotifySimplePlaylist `json:"items"`
	Total    int                     `json:"total"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
	Next     *string                 `json:"next"`
	Previous *string                 `json:"previous"`
}

// SpotifyService implements the Service interface for Spotify API interactions.
// Uses [oauth2] for authentication with automatic token refresh.
type SpotifyService struct {
	config         *oauth2.Config
	token          *oauth2.Token
	httpClient     *http.Client
	credentials    map[string]string
	userID         string
	onTokenRefresh func(*oauth2.Token)
}

// NewSpotifyService creates a new Spotify service with the given OAuth2 credentials.
func NewSpotifyService(credentials map[string]string) (*SpotifyService, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("%w: missing client_id", shared.ErrMissingCredentials)
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret", shared.ErrMissingCredentials)
	}

	redirectURI, ok := credentials["redirect_uri"]
	if !ok || redirectURI == "" {
		redirectURI = "http://localhost:3000/callback"
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes: []string{
			"user-read-private",
			"playlist-read-private",
			"playlist-modify-public",
			"playlist-modify-private",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}

	return &SpotifyService{
		config:      config,
		httpClient:  http.DefaultClient,
		credentials: credentials,
	}, nil
}

// SetTokenRefreshCallback registers a callback invoked whenever the OAuth2
// client obtains a new token, so refreshed tokens can be persisted.
func (s *SpotifyService) SetTokenRefreshCallback(callback func(*oauth2.Token)) {
	s.onTokenRefresh = callback
}

// refreshableTokenSource wraps an [oauth2.TokenSource] and invokes a callback
// when the access token changes (including the first fetch).
type refreshableTokenSource struct {
	source   oauth2.TokenSource
	callback func(*oauth2.Token)
	last     string
}

func (r *refreshableTokenSource) Token() (*oauth2.Token, error) {
	token, err := r.source.Token()
	if err != nil {
		return nil, err
	}
	if r.callback != nil && token.AccessToken != r.last {
		r.last = token.AccessToken
		r.callback(token)
	}
	return token, nil
}

// buildClient constructs the authenticated HTTP client, routing token fetches
// through refreshableTokenSource when a refresh callback is registered.
func (s *SpotifyService) buildClient(ctx context.Context) {
	source := s.config.TokenSource(ctx, s.token)
	if s.onTokenRefresh != nil {
		source = &refreshableTokenSource{source: source, callback: s.onTokenRefresh, last: s.token.AccessToken}
	}
	s.httpClient = oauth2.NewClient(ctx, source)
}

// Authenticate performs OAuth2 authentication with Spotify. Expects either an "access_token" or "auth_code" in credentials.
func (s *SpotifyService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if accessToken, ok := credentials["access_token"]; ok && accessToken != "" {
		s.token = &oauth2.Token{AccessToken: accessToken}
		if refreshToken, ok := credentials["refresh_token"]; ok && refreshToken != "" {
			s.token.RefreshToken = refreshToken
		}
		s.buildClient(ctx)
		return nil
	}

	if authCode, ok := credentials["auth_code"]; ok && authCode != "" {
		token, err := s.config.Exchange(ctx, authCode)
		if err != nil {
			return fmt.Errorf("failed to exchange auth code: %w", err)
		}
		s.token = token
		s.buildClient(ctx)
		return nil
	}

	return fmt.Errorf("%w: missing access_token or auth_code", shared.ErrMissingCredentials)
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// GetAuthURL returns the OAuth2 authorization URL for user login.
func (s *SpotifyService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// OAuthConfig returns the underlying OAuth2 configuration.
func (s *SpotifyService) OAuthConfig() *oauth2.Config {
	return s.config
}

// doRequest performs an authenticated HTTP request to the Spotify API.
func (s *SpotifyService) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	if s.token == nil {
		return fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	apiURL := spotifyBaseURL + endpoint

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: status %d", shared.ErrTokenExpired, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// UserProfile retrieves the current authenticated user's profile.
func (s *SpotifyService) UserProfile(ctx context.Context) (*SpotifyUser, error) {
	var user SpotifyUser
	if err := s.doRequest(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	s.userID = user.ID
	return &user, nil
}

// UserPlaylists retrieves the current user's playlists with pagination.
func (s *SpotifyService) UserPlaylists(ctx context.Context, limit, offset int) (*SpotifyPaginatedPlaylists, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	endpoint := fmt.Sprintf("/me/playlists?limit=%d&offset=%d", limit, offset)

	var response SpotifyPaginatedPlaylists
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Service interface implementation

// GetPlaylists retrieves all playlists for the authenticated user.
func (s *SpotifyService) GetPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var allPlaylists []models.Playlist
	limit := 50
	offset := 0

	for {
		response, err := s.UserPlaylists(ctx, limit, offset)
		if err != nil {
			return nil, err
		}

		for _, sp := range response.Items {
			allPlaylists = append(allPlaylists, models.Playlist{
				ID:          sp.ID,
				Name:        sp.Name,
				Description: sp.Description,
				TrackCount:  sp.Tracks.Total,
				Public:      sp.Public,
			})
		}

		if response.Next == nil {
			break
		}
		offset += limit
	}

	return allPlaylists, nil
}

// CreatePlaylist creates an empty playlist for the authenticated user.
//
// Calls POST /users/{id}/playlists; the user ID is fetched lazily via /me.
func (s *SpotifyService) CreatePlaylist(ctx context.Context, name, description string, public bool) (*models.Playlist, error) {
	if s.userID == "" {
		if _, err := s.UserProfile(ctx); err != nil {
			return nil, fmt.Errorf("failed to resolve user ID: %w", err)
		}
	}

	body := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Public      bool   `json:"public"`
	}{Name: name, Description: description, Public: public}

	var created struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Public      bool   `json:"public"`
	}

	endpoint := fmt.Sprintf("/users/%s/playlists", url.PathEscape(s.userID))
	if err := s.doRequest(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		return nil, err
	}

	return &models.Playlist{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		Public:      created.Public,
	}, nil
}

// AddTracks appends tracks to a playlist in batches of 100 (API limit).
//
// Track IDs are converted to spotify:track: URIs.
func (s *SpotifyService) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return nil
	}

	endpoint := fmt.Sprintf("/playlists/%s/tracks", url.PathEscape(playlistID))

	for start := 0; start < len(trackIDs); start += 100 {
		end := min(start+100, len(trackIDs))

		uris := make([]string, 0, end-start)
		for _, id := range trackIDs[start:end] {
			uris = append(uris, "spotify:track:"+id)
		}

		body := struct {
			URIs []string `json:"uris"`
		}{URIs: uris}

		if err := s.doRequest(ctx, http.MethodPost, endpoint, body, nil); err != nil {
			return fmt.Errorf("failed to add tracks: %w", err)
		}
	}

	return nil
}

// SearchTrack searches for a track by title and artist, returning the best match.
//
// Calls GET /search?q={title} artist:{artist}&type=track&limit=1.
func (s *SpotifyService) SearchTrack(ctx context.Context, title, artist string) (*models.Track, error) {
	query := title
	if artist != "" {
		query = fmt.Sprintf("%s artist:%s", title, artist)
	}
	endpoint := fmt.Sprintf("/search?q=%s&type=track&limit=1", url.QueryEscape(query))

	var response struct {
		Tracks struct {
			Items []SpotifyTrack `json:"items"`
		} `json:"tracks"`
	}

	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	if len(response.Tracks.Items) == 0 {
		return nil, fmt.Errorf("%w: no results for '%s' by '%s'", shared.ErrTrackNotFound, title, artist)
	}

	item := response.Tracks.Items[0]
	track := &models.Track{
		ID:       item.ID,
		Title:    item.Name,
		Duration: item.DurationMS / 1000,
		ISRC:     item.ExternalIDs.ISRC,
	}

	if len(item.Artists) > 0 {
		track.Artist = item.Artists[0].Name
	}
	if item.Album.Name != "" {
		track.Album = item.Album.Name
	}

	return track, nil
}
