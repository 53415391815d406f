// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "0190f5a4-7c2e-7a51-9b1e-2f4d6c8a0b13"

// newTestAdapter creates an httpServerAdapter pointed at the test server
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func savedWiFi() models.SavedPayload {
	return models.SavedPayload{
		ID:        testID,
		Name:      "office",
		Type:      models.WiFi,
		Fields:    json.RawMessage(`{"ssid":"MyNet","password":"secret1","encryption":"WPA","hidden":false}`),
		Data:      "WIFI:T:WPA;S:MyNet;P:secret1;H:false;;",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://qr.example.com/", want: "https://qr.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SavePayload ─────────────────────────────────────────────────────────────

func TestSavePayload_Success(t *testing.T) {
	want := savedWiFi()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payloads", r.URL.Path)

		var req models.SaveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "office", req.Name)
		assert.Equal(t, models.WiFi, req.Type)

		writeJSON(t, w, http.StatusCreated, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SavePayload(context.Background(), models.SaveRequest{
		Name:           "office",
		ContentRequest: models.ContentRequest{Type: models.WiFi, Fields: want.Fields},
	})

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Data, got.Data)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestSavePayload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got models.SaveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, models.Phone, got.Type)
		assert.JSONEq(t, `{"number":"12"}`, string(got.Fields))

		writeJSON(t, w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:  "payload failed validation",
			Reason: "Please enter a valid phone number",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SavePayload(context.Background(), phoneSaveRequest())

	require.ErrorIs(t, err, ErrUnprocessableEntity)
	assert.Contains(t, err.Error(), "Please enter a valid phone number")
}

func phoneSaveRequest() models.SaveRequest {
	return models.SaveRequest{
		Name: "x",
		ContentRequest: models.ContentRequest{
			Type:   models.Phone,
			Fields: json.RawMessage(`{"number":"12"}`),
		},
	}
}

func TestSavePayload_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "payload name already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SavePayload(context.Background(), phoneSaveRequest())

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "conflict: payload name already exists", err.Error())
}

// ── GetPayload ──────────────────────────────────────────────────────────────

func TestGetPayload_Success(t *testing.T) {
	want := savedWiFi()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/payloads/"+testID, r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetPayload(context.Background(), testID)

	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.JSONEq(t, string(want.Fields), string(got.Fields))
}

func TestGetPayload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "payload not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPayload(context.Background(), testID)

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ListPayloads ────────────────────────────────────────────────────────────

func TestListPayloads_SendsFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payloads", r.URL.Path)
		assert.Equal(t, "wifi", r.URL.Query().Get("type"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []models.SavedPayload{savedWiFi()})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	wifi := models.WiFi
	got, err := a.ListPayloads(context.Background(), models.PayloadFilter{Type: &wifi, Limit: 10})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, testID, got[0].ID)
}

func TestListPayloads_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, []models.SavedPayload{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListPayloads(context.Background(), models.PayloadFilter{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListPayloads_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListPayloads(context.Background(), models.PayloadFilter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode list payloads response")
}

// ── DeletePayload ───────────────────────────────────────────────────────────

func TestDeletePayload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/payloads/"+testID, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeletePayload(context.Background(), testID))
}

func TestDeletePayload_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid payload id"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeletePayload(context.Background(), "nope")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad request: invalid payload id", err.Error())
}

// ── GetVersion ──────────────────────────────────────────────────────────────

func TestGetVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_PlainBodyAndUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/version":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.GetVersion(context.Background())
	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, "internal server error: boom", err.Error())

	err = a.DeletePayload(context.Background(), testID)
	require.Error(t, err)
	assert.Equal(t, "http 503: Service Unavailable", err.Error())
}
