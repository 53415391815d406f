package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view used by cmd/server.
type ServerConfig struct {
	App     ServerApp
	HTTP    ServerHTTP
	Storage ServerStorage
	Workers ServerWorkers
}

// ServerApp holds application-level server settings.
type ServerApp struct {
	Version  string
	LogLevel string
}

// ServerHTTP holds listener settings.
type ServerHTTP struct {
	Address         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// ServerStorage holds the history database DSN.
type ServerStorage struct {
	DSN string
}

// ServerWorkers holds the history pruning schedule.
type ServerWorkers struct {
	PruneInterval    time.Duration
	HistoryRetention time.Duration
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		HTTP: ServerHTTP{
			Address:         cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		Storage: ServerStorage{
			DSN: cfg.Storage.DB.DSN,
		},
		Workers: ServerWorkers{
			PruneInterval:    cfg.Workers.PruneInterval,
			HistoryRetention: cfg.Workers.HistoryRetention,
		},
	}
}
