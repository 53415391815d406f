package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeContent decodes raw JSON field values into the typed field set of t.
// An empty or null document yields the zero field set, which the validator
// will reject with the appropriate "required" reason.
func DecodeContent(t ContentType, raw json.RawMessage) (Content, error) {
	content, err := NewContent(t)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return content, nil
	}

	switch t {
	case URL:
		return decodeInto[URLData](raw)
	case Text:
		return decodeInto[TextData](raw)
	case Email:
		return decodeInto[EmailData](raw)
	case Phone:
		return decodeInto[PhoneData](raw)
	case SMS:
		return decodeInto[SMSData](raw)
	case WiFi:
		data, err := decodeInto[WiFiData](raw)
		if err == nil && data.Encryption == "" {
			data.Encryption = WPA
		}
		return data, err
	case VCard:
		return decodeInto[VCardData](raw)
	case Location:
		return decodeInto[LocationData](raw)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownContentType, int(t))
}

func decodeInto[T Content](raw json.RawMessage) (T, error) {
	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("%w: %w", ErrMalformedFields, err)
	}
	return data, nil
}

// EncodeFields marshals the field set of c into JSON. It is the inverse
// of DecodeContent and is used to persist and transmit field sets.
func EncodeFields(c Content) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil content", ErrUnknownContentType)
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error encoding %s fields: %w", c.ContentType(), err)
	}
	return b, nil
}
