package models

import (
	"fmt"
	"strings"
)

// ContentType defines the semantic category of data encoded into a code.
// The value selects which field set is relevant and which text format
// the encoder produces.
type ContentType int

const (
	// URL represents a web address.
	URL ContentType = iota + 1

	// Text represents arbitrary free-form text.
	Text

	// Email represents a mailto: link with optional subject and body.
	Email

	// Phone represents a tel: link.
	Phone

	// SMS represents an sms: link with an optional message body.
	SMS

	// WiFi represents network credentials in the WIFI: format
	// understood by mobile camera apps.
	WiFi

	// VCard represents a contact card (vCard 3.0).
	VCard

	// Location represents geographic coordinates rendered as a maps link.
	Location
)

var contentTypeNames = map[ContentType]string{
	URL:      "url",
	Text:     "text",
	Email:    "email",
	Phone:    "phone",
	SMS:      "sms",
	WiFi:     "wifi",
	VCard:    "vcard",
	Location: "location",
}

// ContentTypes returns every supported content type in display order.
func ContentTypes() []ContentType {
	return []ContentType{URL, Text, Email, Phone, SMS, WiFi, VCard, Location}
}

// String returns the wire name of the content type ("url", "wifi", ...).
// Unknown values are rendered as "unknown".
func (t ContentType) String() string {
	if name, ok := contentTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether t is one of the declared content types.
func (t ContentType) IsValid() bool {
	_, ok := contentTypeNames[t]
	return ok
}

// ParseContentType converts a wire name (case-insensitive, surrounding
// whitespace ignored) into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range contentTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownContentType, s)
}

// MarshalText implements encoding.TextMarshaler so that content types
// travel as their wire names in JSON and YAML.
func (t ContentType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownContentType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ContentType) UnmarshalText(b []byte) error {
	parsed, err := ParseContentType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// WiFiEncryption is the authentication type written into the T: field
// of a WiFi payload. The value is passed through as-is.
type WiFiEncryption string

const (
	WPA    WiFiEncryption = "WPA"
	WEP    WiFiEncryption = "WEP"
	NoPass WiFiEncryption = "nopass"
)

// Content is the closed set of typed field sets, one variant per
// ContentType. Only the types declared in this package implement it.
type Content interface {
	// ContentType reports which variant the value is.
	ContentType() ContentType
	isContent()
}

// URLData holds the fields of a URL code.
type URLData struct {
	// URL is the raw address as typed by the user, with or without scheme.
	URL string `json:"url" yaml:"url"`
}

// TextData holds free-form text.
type TextData struct {
	Text string `json:"text" yaml:"text"`
}

// EmailData holds the fields of a mailto: code.
type EmailData struct {
	// Address is the recipient address.
	Address string `json:"address" yaml:"address"`
	// Subject is optional.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	// Body is optional.
	Body string `json:"body,omitempty" yaml:"body,omitempty"`
}

// PhoneData holds the number of a tel: code.
type PhoneData struct {
	Number string `json:"number" yaml:"number"`
}

// SMSData holds the fields of an sms: code.
type SMSData struct {
	Number string `json:"number" yaml:"number"`
	// Message is optional.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// WiFiData holds network credentials.
type WiFiData struct {
	// SSID is the network name.
	SSID string `json:"ssid" yaml:"ssid"`
	// Password is the network key.
	Password string `json:"password" yaml:"password"`
	// Encryption is never validated; it is written verbatim.
	Encryption WiFiEncryption `json:"encryption" yaml:"encryption"`
	// Hidden marks networks that do not broadcast their SSID.
	Hidden bool `json:"hidden" yaml:"hidden"`
}

// VCardData holds the fields of a contact card. Only Name and Phone are
// required; the rest are emitted when non-empty.
type VCardData struct {
	Name         string `json:"name" yaml:"name"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
	Phone        string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	URL          string `json:"url,omitempty" yaml:"url,omitempty"`
}

// LocationData holds coordinates as the user typed them. The strings are
// parsed during validation but encoded verbatim.
type LocationData struct {
	Latitude  string `json:"latitude" yaml:"latitude"`
	Longitude string `json:"longitude" yaml:"longitude"`
}

func (URLData) ContentType() ContentType      { return URL }
func (TextData) ContentType() ContentType     { return Text }
func (EmailData) ContentType() ContentType    { return Email }
func (PhoneData) ContentType() ContentType    { return Phone }
func (SMSData) ContentType() ContentType      { return SMS }
func (WiFiData) ContentType() ContentType     { return WiFi }
func (VCardData) ContentType() ContentType    { return VCard }
func (LocationData) ContentType() ContentType { return Location }

func (URLData) isContent()      {}
func (TextData) isContent()     {}
func (EmailData) isContent()    {}
func (PhoneData) isContent()    {}
func (SMSData) isContent()      {}
func (WiFiData) isContent()     {}
func (VCardData) isContent()    {}
func (LocationData) isContent() {}

// NewContent returns the zero field set for t, or ErrUnknownContentType.
func NewContent(t ContentType) (Content, error) {
	switch t {
	case URL:
		return URLData{}, nil
	case Text:
		return TextData{}, nil
	case Email:
		return EmailData{}, nil
	case Phone:
		return PhoneData{}, nil
	case SMS:
		return SMSData{}, nil
	case WiFi:
		return WiFiData{Encryption: WPA}, nil
	case VCard:
		return VCardData{}, nil
	case Location:
		return LocationData{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownContentType, int(t))
	}
}
