package main

import (
	"github.com/urfave/cli/v3"
)

// generateCommand drives the prompt-to-preview generation workflow.
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a playlist preview from a natural-language prompt",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "prompt",
				UsageText: "Natural-language description of the playlist",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Persist the generated playlist immediately",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Playlist name when saving (defaults to the prompt)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.Generate,
	}
}

// playlistCommand handles saved playlist operations against the backend.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlist",
		Usage: "Manage saved playlists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all saved playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "show",
				Usage: "Show a playlist with its tracks",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "id",
						UsageText: "Playlist ID",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "delete",
				Usage: "Delete a saved playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "id",
						UsageText: "Playlist ID",
					},
				},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "export-files",
				Usage: "Export a playlist to local files",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "id",
						UsageText: "Playlist ID",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, markdown, or text)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (file base for csv/text, directory for markdown)",
					},
				},
				Action: r.PlaylistExportFiles,
			},
		},
	}
}

// exportCommand pushes a saved playlist to an external music service.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export playlists to external music services",
		Commands: []*cli.Command{
			{
				Name:  "spotify",
				Usage: "Export a playlist to Spotify",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "playlist",
						UsageText: "Playlist name or ID",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.ExportSpotify,
			},
		},
	}
}

// authCommand handles authentication against the backend and Spotify.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authentication commands",
		Commands: []*cli.Command{
			{
				Name:  "spotify",
				Usage: "Authorize with Spotify via OAuth2",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.AuthSpotify,
			},
			{
				Name:   "status",
				Usage:  "Check backend availability and authentication state",
				Action: r.AuthStatus,
			},
		},
	}
}

// profileCommand shows the authenticated account profile.
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show the authenticated account profile and plan",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.Profile,
	}
}

// setupCommand handles local environment initialization.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize the local environment",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the local cache database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive playlist builder",
		Action:  r.TUI,
	}
}
