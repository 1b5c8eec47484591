package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Profile shows the authenticated account profile, including the plan that
// gates AI playlist generation.
func (r *Runner) Profile(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching profile")

	profile, err := r.client.GetProfile(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(profile, pretty)
	}

	r.writePlain("Email: %s\n", profile.Email)
	if profile.DisplayName != "" {
		r.writePlain("Name: %s\n", profile.DisplayName)
	}
	r.writePlain("Plan: %s\n", profile.Plan)
	if profile.IsPro() {
		r.writePlain("✓ AI playlist generation enabled\n")
	} else {
		r.writePlain("✗ AI playlist generation requires a Pro plan\n")
	}

	return nil
}
