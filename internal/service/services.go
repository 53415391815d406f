package service

import (
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/adapter"
	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/store"
)

// Services is the server side set of services.
type Services struct {
	PayloadService PayloadService
	StyleService   StyleService
	HistoryService HistoryService
	HistoryPruner  HistoryPruner
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	history := newHistoryService(storages.PayloadRepository, logger)

	return &Services{
		PayloadService: NewPayloadService(logger),
		StyleService:   NewStyleService(logger),
		HistoryService: history,
		HistoryPruner:  history,
		AppInfoService: appInfo,
	}, nil
}

// ClientServices is the set of services used by the TUI. Payload building
// is always local; only the history differs between local and remote mode.
type ClientServices struct {
	PayloadService PayloadService
	StyleService   StyleService
	HistoryService HistoryService
}

// NewLocalClientServices keeps the history in the local database.
func NewLocalClientServices(storages *store.Storages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		PayloadService: NewPayloadService(logger),
		StyleService:   NewStyleService(logger),
		HistoryService: NewHistoryService(storages.PayloadRepository, logger),
	}
}

// NewRemoteClientServices keeps the history on the server behind serverAdapter.
func NewRemoteClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		PayloadService: NewPayloadService(logger),
		StyleService:   NewStyleService(logger),
		HistoryService: NewClientHistoryService(serverAdapter, logger),
	}
}
