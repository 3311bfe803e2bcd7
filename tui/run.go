package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iedon/game-catalog-go/catalog"
	"github.com/iedon/game-catalog-go/search"
)

// RunOptions configures Run.
type RunOptions struct {
	Options
	Window    time.Duration
	MinLength int
}

// Run starts the terminal browser over c and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, c *catalog.Catalog, opts RunOptions) error {
	var program *tea.Program
	gate := search.NewGate(c, func(outcome search.Outcome) {
		program.Send(OutcomeMsg{Outcome: outcome})
	}, search.GateOptions{
		Window:    opts.Window,
		MinLength: opts.MinLength,
		Logger:    opts.Logger,
	})
	defer gate.Stop()

	program = tea.NewProgram(New(gate, opts.Options), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal browser: %w", err)
	}
	return nil
}
