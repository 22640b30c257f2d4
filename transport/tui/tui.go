package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type subscribableEngine interface {
	gameEngine
	Subscribe(fn func(entity.Snapshot)) (unsubscribe func())
}

var (
	headerStyle1 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4204b5ff", Dark: "#4204b5ff"}).Render
	headerStyle2 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#19b504ff", Dark: "#19b504ff"}).Render
	headerStyle3 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b55404ff", Dark: "#b55404ff"}).Render
)

func header() string {
	return fmt.Sprintf(
		"%s %s %s %s %s\n\n",
		headerStyle2("---"),
		headerStyle1("Tic"),
		headerStyle2("Tac"),
		headerStyle3("Toe"),
		headerStyle2("---"),
	)
}

// Run - plays in the terminal until the user quits or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, engine subscribableEngine, humanMark string) error {
	log := logger.With("component", "tui")

	// coalesces change signals, the model always re-reads the latest snapshot
	changes := make(chan struct{}, 1)
	unsubscribe := engine.Subscribe(func(entity.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	gameModel := newModel(header(), engine, changes, NewMarks(humanMark))

	p := tea.NewProgram(gameModel, tea.WithAltScreen(), tea.WithContext(ctx))

	log.Info("terminal ui started")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	log.Info("terminal ui stopped")

	return nil
}
