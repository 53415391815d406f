package http

import (
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
)

// Handler serves the payload, style and history endpoints on top of
// [service.Services]. Routes are registered by [Handler.Init].
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	l := log.GetChildLogger()
	l.Logger = l.With().Str("component", "http-handler").Logger()
	l.Info().Msg("payload handler created")

	return &Handler{
		services: services,
		logger:   l,
	}
}
