package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Payload is the outcome of building a code from one field snapshot: the
// encoded string handed to a renderer together with the verdict that
// produced it. Data is empty whenever Validation is not valid.
type Payload struct {
	Type       ContentType      `json:"type"`
	Data       string           `json:"data"`
	Validation ValidationResult `json:"validation"`
}

// IsEmpty reports whether there is nothing to render.
func (p Payload) IsEmpty() bool {
	return strings.TrimSpace(p.Data) == ""
}

// FileName returns the download name of a rendered image, for example
// "codenest-qr-wifi.png".
func (p Payload) FileName(ext string) string {
	name := "codenest-qr-" + p.Type.String()
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// SavedPayload is a generated payload kept in the history.
type SavedPayload struct {
	// ID is a UUID assigned on save.
	ID string `json:"id"`
	// Name is a user label, unique within the history.
	Name string `json:"name"`
	// Type is the content type of Fields.
	Type ContentType `json:"type"`
	// Fields is the JSON encoded field set the payload was built from.
	Fields json.RawMessage `json:"fields"`
	// Data is the encoded payload string.
	Data string `json:"data"`
	// Style is the presentation configuration at save time.
	Style Style `json:"style"`
	// CreatedAt is set by the store.
	CreatedAt time.Time `json:"created_at"`
}

// PayloadFilter narrows a history listing.
type PayloadFilter struct {
	// Type restricts results to one content type; nil means all.
	Type *ContentType
	// Limit caps the number of results; zero means no limit.
	Limit uint64
}
