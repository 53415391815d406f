package encoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-forge/models"
)

const (
	wifiPrefix     = "WIFI:"
	wifiTerminator = ";;"
)

var (
	// ErrNotWiFiPayload is returned when the input lacks the WIFI: prefix
	// or the ;; terminator.
	ErrNotWiFiPayload = errors.New("not a WiFi payload")

	// ErrMalformedWiFiField is returned for a field without a key.
	ErrMalformedWiFiField = errors.New("malformed WiFi field")
)

// ParseWiFi reads a payload produced by Encode for a models.WiFiData back
// into its fields. Keys may appear in any order; unknown keys are ignored.
// Values are taken verbatim, so an SSID or password containing ';' does
// not survive the round trip.
func ParseWiFi(payload string) (models.WiFiData, error) {
	if !strings.HasPrefix(payload, wifiPrefix) || !strings.HasSuffix(payload, wifiTerminator) {
		return models.WiFiData{}, ErrNotWiFiPayload
	}

	body := strings.TrimSuffix(strings.TrimPrefix(payload, wifiPrefix), wifiTerminator)

	var data models.WiFiData
	for _, field := range strings.Split(body, ";") {
		if field == "" {
			continue
		}

		key, value, ok := strings.Cut(field, ":")
		if !ok || key == "" {
			return models.WiFiData{}, fmt.Errorf("%w: %q", ErrMalformedWiFiField, field)
		}

		switch key {
		case "T":
			data.Encryption = models.WiFiEncryption(value)
		case "S":
			data.SSID = value
		case "P":
			data.Password = value
		case "H":
			data.Hidden = strings.EqualFold(value, "true")
		}
	}

	return data, nil
}
