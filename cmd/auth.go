package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/soundwhiskers/swx/internal/server"
	"github.com/soundwhiskers/swx/internal/services"
	"github.com/soundwhiskers/swx/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthSpotify performs the OAuth2 authorization flow for Spotify.
//
// Starts a local HTTP server, opens the browser for user authorization, and
// exchanges the auth code for tokens which are persisted to the config file.
func (r *Runner) AuthSpotify(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if config == nil {
		var err error
		if _, statErr := os.Stat(configPath); statErr == nil {
			config, err = shared.LoadConfig(configPath)
			if err != nil {
				r.logger.Warnf("failed to load config, using defaults %v", err)
				config = shared.DefaultConfig()
			}
		} else {
			config = shared.DefaultConfig()
		}
		r.config = config
	}
	r.configPath = configPath

	if config.Credentials.Spotify.ClientID == "" || config.Credentials.Spotify.ClientSecret == "" {
		return fmt.Errorf("%w: Spotify client_id and client_secret must be set in config.toml", shared.ErrInvalidArgument)
	}

	spotifyService, err := services.NewSpotifyService(config.Credentials.Spotify.Map())
	if err != nil {
		return fmt.Errorf("failed to create Spotify service: %w", err)
	}

	token, err := r.doOAuth(config, spotifyService, "authorization")
	if err != nil {
		return err
	}

	if err := r.saveTokens(token); err != nil {
		return err
	}

	r.spotify = spotifyService
	r.engine.SetDestination(spotifyService)

	r.writePlainln("✓ Authorization successful")
	r.writePlain("✓ Tokens saved to %s\n\n", configPath)
	r.writePlain("You can now use: swx export spotify <playlist>\n")

	return nil
}

// AuthStatus checks backend availability by calling the /health endpoint.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking backend status")

	health, err := r.client.Health(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	status, ok := health["status"].(string)
	if !ok {
		status = "unknown"
	}
	authenticated := false
	if auth, ok := health["authenticated"].(bool); ok {
		authenticated = auth
	}

	r.writePlain("✓ Service is healthy\n")
	r.writePlain("Status: %s\n", status)
	if authenticated {
		r.writePlain("Authentication: ✓ Authenticated\n")
	} else {
		r.writePlain("Authentication: ✗ Not authenticated\n")
	}

	return nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(config *shared.Config, oauthSrv services.OAuthService, prefix string) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := oauthSrv.GetAuthURL(state)
	oauthHandler := server.NewOAuthHandler(oauthSrv.OAuthConfig(), state)
	router := server.NewBasicRouter()
	router.Use(server.LoggingMiddleware(r.logger))
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth server for %s at %v", prefix, serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Spotify %s...\n", prefix)
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}
