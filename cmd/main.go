package main

import (
	"context"
	"errors"
	"os"

	"github.com/soundwhiskers/swx/internal/api"
	"github.com/soundwhiskers/swx/internal/services"
	"github.com/soundwhiskers/swx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	var spotifyService services.Service

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		}
	}

	client := api.NewClient(config.API.BaseURL, config.API.AccessToken, nil)
	client.SetRateLimit(config.API.RateLimit)

	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map()); err == nil {
			spotifyService = svc
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Client:     client,
		Spotify:    spotifyService,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "swx",
		Usage:    "Generate AI playlists with Sound Whiskers & export them to Spotify",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
