package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/go-resty/resty/v2"
)

const (
	payloadsPath = "/api/payloads"
	versionPath  = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient().ForwardTraceID(traceIDHeader)
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

const traceIDHeader = "X-Trace-ID"

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SavePayload implements [ServerAdapter]. It POSTs the request to
// POST /api/payloads and decodes the stored payload from the 201 response.
func (h *httpServerAdapter) SavePayload(ctx context.Context, req models.SaveRequest) (models.SavedPayload, error) {
	var saved models.SavedPayload

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&saved).
		Post(payloadsPath)
	if err != nil {
		return models.SavedPayload{}, fmt.Errorf("save payload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SavedPayload{}, err
	}

	return saved, nil
}

// GetPayload implements [ServerAdapter] via GET /api/payloads/{id}.
func (h *httpServerAdapter) GetPayload(ctx context.Context, id string) (models.SavedPayload, error) {
	var saved models.SavedPayload

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&saved).
		Get(payloadsPath + "/{id}")
	if err != nil {
		return models.SavedPayload{}, fmt.Errorf("get payload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SavedPayload{}, err
	}

	return saved, nil
}

// ListPayloads implements [ServerAdapter] via GET /api/payloads. The filter
// is sent as the type and limit query parameters.
func (h *httpServerAdapter) ListPayloads(ctx context.Context, filter models.PayloadFilter) ([]models.SavedPayload, error) {
	req := h.request(ctx)
	if filter.Type != nil {
		req.SetQueryParam("type", filter.Type.String())
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get(payloadsPath)
	if err != nil {
		return nil, fmt.Errorf("list payloads request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list []models.SavedPayload
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list payloads response: %w", err)
	}

	return list, nil
}

// DeletePayload implements [ServerAdapter] via DELETE /api/payloads/{id}.
func (h *httpServerAdapter) DeletePayload(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(payloadsPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete payload request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetVersion implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
