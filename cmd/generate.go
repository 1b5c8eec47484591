package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/soundwhiskers/swx/internal/formatter"
	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/notify"
	"github.com/soundwhiskers/swx/internal/shared"
	"github.com/soundwhiskers/swx/internal/workflows"
	"github.com/urfave/cli/v3"
)

// Generate runs one prompt-to-preview generation attempt and prints the result.
//
// With --save the previewed draft is persisted through the creation workflow
// in the same invocation.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	prompt := cmd.StringArg("prompt")
	save := cmd.Bool("save")
	name := cmd.String("name")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if prompt == "" {
		return fmt.Errorf("%w: a prompt is required", shared.ErrMissingArgument)
	}

	r.logger.Info("generating playlist", "prompt", prompt)

	generation := workflows.NewGenerationWorkflow(r.client, notify.NewLogNotifier(r.logger), r.entitlementGuard(ctx))

	if err := generation.Generate(ctx, prompt); err != nil {
		if errors.Is(err, shared.ErrOperationPending) {
			return nil
		}
		return err
	}

	preview := generation.Preview()
	if preview == nil {
		return shared.ErrNoPreview
	}

	if useJSON && !save {
		return r.writeJSON(preview, pretty)
	}

	r.writePlain("%s", formatter.RenderPreview(preview))

	if !save {
		r.writePlain("\nSave it with: swx generate --save --name \"...\" %q\n", prompt)
		return nil
	}

	if name == "" {
		name = preview.Prompt
	}

	creation := workflows.NewCreationWorkflow(r.client.CreatePlaylist, notify.NewLogNotifier(r.logger))
	playlist, err := creation.Create(ctx, models.PlaylistDraft{
		Name:   name,
		Prompt: preview.Prompt,
		Tracks: preview.Tracks,
	})
	if err != nil {
		if errors.Is(err, shared.ErrOperationPending) {
			return nil
		}
		return err
	}
	if playlist == nil {
		return fmt.Errorf("playlist was not created")
	}

	if useJSON {
		return r.writeJSON(playlist, pretty)
	}

	r.writePlainln("✓ Playlist %q created (ID: %s)", playlist.Name, playlist.ID)
	r.writePlain("Export it with: swx export spotify %s\n", playlist.ID)

	return nil
}

// entitlementGuard builds the client-side plan check from the account
// profile. When the profile cannot be fetched the guard is nil and the
// server-side check decides alone.
func (r *Runner) entitlementGuard(ctx context.Context) func() bool {
	profile, err := r.client.GetProfile(ctx)
	if err != nil {
		r.logger.Debug("profile unavailable, deferring entitlement to server", "error", err)
		return nil
	}
	return profile.IsPro
}
