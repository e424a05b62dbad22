// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dudhatpatel/cyberdefender/internal/adapter"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/router"
	"github.com/dudhatpatel/cyberdefender/internal/tui"
)

type App struct {
	client adapter.AssistantClient
	tui    *tui.TUI

	logger *logger.Logger
}

func NewApp(log *logger.Logger) (*App, error) {
	serverURL := getenv("CYBERDEFENDER_SERVER_URL", "http://localhost:8080")

	assistant := adapter.NewAssistantClient(adapter.AssistantConfig{
		BaseURL: serverURL,
		Timeout: 30 * time.Second,
	})

	ui, err := tui.New(assistant, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{client: assistant, tui: ui, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	err := a.tui.ChatLoop(ctx, router.InitialBotMessage)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
