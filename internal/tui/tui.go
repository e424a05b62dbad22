// Package tui implements the terminal chat client of the assistant on top of
// bubbletea. The model is a single chat session: an append-only transcript,
// one input line, and at most one request in flight.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dudhatpatel/cyberdefender/internal/adapter"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	client adapter.AssistantClient
}

func New(client adapter.AssistantClient, _ *logger.Logger) (*TUI, error) {
	return &TUI{client: client}, nil
}

// ChatLoop runs the interactive session until the user quits.
func (t *TUI) ChatLoop(ctx context.Context, greeting string) error {
	model := newChatModel(ctx, t.client, greeting)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
