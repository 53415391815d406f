package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-qr-forge/internal/adapter"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

// clientHistoryService forwards history calls to the server and translates
// transport errors back into the errors the local history returns.
type clientHistoryService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientHistoryService returns a [HistoryService] backed by the server.
func NewClientHistoryService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) HistoryService {
	return &clientHistoryService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (c *clientHistoryService) Save(ctx context.Context, req models.SaveRequest) (models.SavedPayload, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.SavedPayload{}, ErrEmptyPayloadName
	}

	saved, err := c.serverAdapter.SavePayload(ctx, req)
	if err != nil {
		c.logger.Err(err).Str("func", "clientHistoryService.Save").Msg("server rejected payload")
		return models.SavedPayload{}, mapAdapterError(err)
	}
	return saved, nil
}

func (c *clientHistoryService) Get(ctx context.Context, id string) (models.SavedPayload, error) {
	saved, err := c.serverAdapter.GetPayload(ctx, id)
	if err != nil {
		return models.SavedPayload{}, mapAdapterError(err)
	}
	return saved, nil
}

func (c *clientHistoryService) List(ctx context.Context, filter models.PayloadFilter) ([]models.SavedPayload, error) {
	list, err := c.serverAdapter.ListPayloads(ctx, filter)
	if err != nil {
		c.logger.Err(err).Str("func", "clientHistoryService.List").Msg("failed to list payloads")
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (c *clientHistoryService) Delete(ctx context.Context, id string) error {
	return mapAdapterError(c.serverAdapter.DeletePayload(ctx, id))
}
