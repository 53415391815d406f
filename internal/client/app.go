package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-qr-forge/internal/adapter"
	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/tui"
	"github.com/MKhiriev/go-qr-forge/models"
)

// History locations shown in the build info overlay.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// UI is the part of the terminal interface the app drives.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	closer io.Closer

	logger *logger.Logger
}

// NewApp wires the client. With an adapter address the history is kept on
// the server, otherwise in the local SQLite file. Payloads are always built
// locally.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	services, closer, mode, err := newClientServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	ui, err := tui.New(services, buildInfo, mode, logger)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("error creating ui: %w", err)
	}

	return newApp(ui, closer, logger), nil
}

func newApp(ui UI, closer io.Closer, logger *logger.Logger) *App {
	return &App{ui: ui, closer: closer, logger: logger}
}

func newClientServices(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*service.ClientServices, io.Closer, string, error) {
	if cfg.Remote() {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, nil, "", fmt.Errorf("error creating server adapter: %w", err)
		}
		return service.NewRemoteClientServices(serverAdapter, logger), nil, ModeRemote, nil
	}

	db, err := store.NewConnection(ctx, cfg.Storage.DB.DSN, logger)
	if err != nil {
		return nil, nil, "", fmt.Errorf("error opening local history: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, nil, "", err
	}

	return service.NewLocalClientServices(store.NewStorages(db), logger), db, ModeLocal + " (" + cfg.Storage.DB.DSN + ")", nil
}

// Run blocks until the UI exits and then releases the local database.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.close").Msg("error closing local history")
	}
}
