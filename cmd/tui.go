package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundwhiskers/swx/internal/notify"
	"github.com/soundwhiskers/swx/internal/shared"
	"github.com/soundwhiskers/swx/internal/ui"
	"github.com/soundwhiskers/swx/internal/workflows"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for playlist generation.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.client == nil {
		return fmt.Errorf("%w: backend client not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/swx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	notices := notify.NewRecorder()
	generation := workflows.NewGenerationWorkflow(r.client, notices, r.entitlementGuard(ctx))
	creation := workflows.NewCreationWorkflow(r.client.CreatePlaylist, notices)

	model := ui.NewModel(ctx, generation, creation, notices)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
