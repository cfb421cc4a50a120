package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cratedig/cratedig/internal/shared"
	"github.com/cratedig/cratedig/internal/ui"
	"github.com/urfave/cli/v3"
)

// Menu launches the interactive terminal UI over the explorer.
func (r *Runner) Menu(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/cratedig-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, e)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
