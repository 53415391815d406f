// Package tui implements the terminal client: a content type selector, a
// generator screen with live validation and style controls, and the saved
// history.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("client services are not set")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	mode      string

	logger *logger.Logger
}

// New builds the UI. mode describes where the history lives and is shown
// in the build info overlay.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, mode string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.PayloadService == nil || services.StyleService == nil || services.HistoryService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, mode: mode, logger: logger}, nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageTypes:     NewTypeSelectModel(),
		pageGenerator: NewGeneratorModel(ctx, t.services),
		pageHistory:   NewHistoryModel(ctx, t.services),
	}
	return NewRootModel(pages, pageTypes, t.buildInfo, t.mode)
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Str("mode", t.mode).Msg("starting tui")

	_, err := tea.NewProgram(t.newRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped with error")
		return err
	}
	return nil
}
