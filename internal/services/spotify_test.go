package services

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

type mockTokenSource struct {
	token *oauth2.Token
	err   error
}

func (m *mockTokenSource) Token() (*oauth2.Token, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.token, nil
}

func TestSpotifyService(t *testing.T) {
	t.Run("NewSpotifyService", func(t *testing.T) {
		t.Run("With Valid Credentials", func(t *testing.T) {
			credentials := map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
				"redirect_uri":  "http://localhost:3000/callback",
			}

			srv, err := NewSpotifyService(credentials)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if srv == nil {
				t.Fatal("expected service to be created")
			}

			if srv.Name() != "Spotify" {
				t.Errorf("expected service name 'Spotify', got %s", srv.Name())
			}
		})

		t.Run("Missing Client ID", func(t *testing.T) {
			credentials := map[string]string{
				"client_secret": "test_client_secret",
			}

			_, err := NewSpotifyService(credentials)
			if err == nil {
				t.Error("expected error for missing client_id")
			}
		})

		t.Run("Missing Client Secret", func(t *testing.T) {
			credentials := map[string]string{
				"client_id": "test_client_id",
			}

			_, err := NewSpotifyService(credentials)
			if err == nil {
				t.Error("expected error for missing client_secret")
			}
		})

		t.Run("Default Redirect URI", func(t *testing.T) {
			credentials := map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
			}

			srv, err := NewSpotifyService(credentials)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if srv.config.RedirectURL != "http://localhost:3000/callback" {
				t.Errorf("expected default redirect URI, got %s", srv.config.RedirectURL)
			}
		})

		t.Run("Requests Write Scopes", func(t *testing.T) {
			credentials := map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
			}

			srv, err := NewSpotifyService(credentials)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			found := false
			for _, scope := range srv.config.Scopes {
				if scope == "playlist-modify-private" {
					found = true
				}
			}
			if !found {
				t.Error("expected playlist-modify-private in scopes")
			}
		})
	})

	t.Run("Get AuthURL", func(t *testing.T) {
		credentials := map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		}

		srv, err := NewSpotifyService(credentials)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		authURL := srv.GetAuthURL("test_state")
		if authURL == "" {
			t.Error("expected auth URL to be generated")
		}

		if !strings.Contains(authURL, "accounts.spotify.com") {
			t.Error("auth URL should contain Spotify domain")
		}
		if !strings.Contains(authURL, "test_client_id") {
			t.Error("auth URL should contain client_id")
		}
		if !strings.Contains(authURL, "test_state") {
			t.Error("auth URL should contain state")
		}
	})

	t.Run("Authenticate", func(t *testing.T) {
		credentials := map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		}

		srv, err := NewSpotifyService(credentials)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		t.Run("WithAccessToken", func(t *testing.T) {
			authCreds := map[string]string{
				"access_token": "test_access_token",
			}

			err := srv.Authenticate(context.Background(), authCreds)
			if err != nil {
				t.Errorf("expected no error with access token, got %v", err)
			}

			if srv.token == nil {
				t.Error("expected token to be set")
			}

			if srv.token.AccessToken != "test_access_token" {
				t.Errorf("expected access token to be 'test_access_token', got %s", srv.token.AccessToken)
			}
		})

		t.Run("WithRefreshToken", func(t *testing.T) {
			authCreds := map[string]string{
				"access_token":  "test_access_token",
				"refresh_token": "test_refresh_token",
			}

			err := srv.Authenticate(context.Background(), authCreds)
			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if srv.token.RefreshToken != "test_refresh_token" {
				t.Errorf("expected refresh token to be set, got %s", srv.token.RefreshToken)
			}
		})

		t.Run("Missing Credentials", func(t *testing.T) {
			authCreds := map[string]string{}

			err := srv.Authenticate(context.Background(), authCreds)
			if err == nil {
				t.Error("expected error for missing credentials")
			}
		})
	})

	t.Run("Unauthenticated Request", func(t *testing.T) {
		credentials := map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		}

		srv, err := NewSpotifyService(credentials)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		_, err = srv.GetPlaylists(context.Background())
		if err == nil {
			t.Error("expected error when not authenticated")
		}
	})

	t.Run("Service Interface", func(t *testing.T) {
		credentials := map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		}

		srv, err := NewSpotifyService(credentials)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		var _ Service = srv
		var _ OAuthService = srv
	})

	t.Run("SetTokenRefreshCallback", func(t *testing.T) {
		credentials := map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		}

		srv, err := NewSpotifyService(credentials)
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		t.Run("sets callback successfully", func(t *testing.T) {
			srv.SetTokenRefreshCallback(func(token *oauth2.Token) {})

			if srv.onTokenRefresh == nil {
				t.Error("expected callback to be set")
			}
		})

		t.Run("can set nil callback", func(t *testing.T) {
			srv.SetTokenRefreshCallback(nil)
			if srv.onTokenRefresh != nil {
				t.Error("expected callback to be nil")
			}
		})
	})

	t.Run("refreshableTokenSource", func(t *testing.T) {
		t.Run("calls callback on first token fetch", func(t *testing.T) {
			callbackCalled := false
			var capturedToken *oauth2.Token

			mockSource := &mockTokenSource{
				token: &oauth2.Token{AccessToken: "test_token"},
			}

			source := &refreshableTokenSource{
				source: mockSource,
				callback: func(token *oauth2.Token) {
					callbackCalled = true
					capturedToken = token
				},
			}

			token, err := source.Token()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !callbackCalled {
				t.Error("expected callback to be called on first fetch")
			}
			if capturedToken == nil || capturedToken.AccessToken != "test_token" {
				t.Errorf("expected captured token 'test_token', got %v", capturedToken)
			}
			if token.AccessToken != "test_token" {
				t.Errorf("expected returned token 'test_token', got %s", token.AccessToken)
			}
		})

		t.Run("calls callback when token changes", func(t *testing.T) {
			callCount := 0

			mockSource := &mockTokenSource{
				token: &oauth2.Token{AccessToken: "token1"},
			}

			source := &refreshableTokenSource{
				source: mockSource,
				callback: func(token *oauth2.Token) {
					callCount++
				},
			}

			_, _ = source.Token()
			if callCount != 1 {
				t.Errorf("expected callback called once, got %d", callCount)
			}

			mockSource.token = &oauth2.Token{AccessToken: "token2"}
			_, _ = source.Token()
			if callCount != 2 {
				t.Errorf("expected callback called twice, got %d", callCount)
			}
		})

		t.Run("does not call callback for unchanged token", func(t *testing.T) {
			callCount := 0

			mockSource := &mockTokenSource{
				token: &oauth2.Token{AccessToken: "stable"},
			}

			source := &refreshableTokenSource{
				source:   mockSource,
				callback: func(token *oauth2.Token) { callCount++ },
			}

			_, _ = source.Token()
			_, _ = source.Token()

			if callCount != 1 {
				t.Errorf("expected callback called once for stable token, got %d", callCount)
			}
		})

		t.Run("works without callback", func(t *testing.T) {
			mockSource := &mockTokenSource{
				token: &oauth2.Token{AccessToken: "test_token"},
			}

			source := &refreshableTokenSource{source: mockSource}

			token, err := source.Token()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token.AccessToken != "test_token" {
				t.Errorf("expected 'test_token', got %s", token.AccessToken)
			}
		})
	})
}
