// Package encoder turns validated field sets into the exact text that is
// placed inside a code. Every function here is pure and never fails: it
// assumes the field set was accepted by the validators package and does
// not check it again.
package encoder

import (
	"strings"

	"github.com/MKhiriev/go-qr-forge/models"
)

const mapsURL = "https://www.google.com/maps?q="

// Encode returns the payload string for content. A nil content encodes to
// the empty string.
func Encode(content models.Content) string {
	switch c := content.(type) {
	case models.URLData:
		return NormalizeURL(strings.TrimSpace(c.URL))
	case models.TextData:
		return strings.TrimSpace(c.Text)
	case models.EmailData:
		return encodeEmail(c)
	case models.PhoneData:
		return "tel:" + StripWhitespace(strings.TrimSpace(c.Number))
	case models.SMSData:
		return encodeSMS(c)
	case models.WiFiData:
		return encodeWiFi(c)
	case models.VCardData:
		return encodeVCard(c)
	case models.LocationData:
		return mapsURL + strings.TrimSpace(c.Latitude) + "," + strings.TrimSpace(c.Longitude)
	default:
		return ""
	}
}

func encodeEmail(c models.EmailData) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(strings.TrimSpace(c.Address))

	params := make([]string, 0, 2)
	if subject := strings.TrimSpace(c.Subject); subject != "" {
		params = append(params, "subject="+EscapeComponent(subject))
	}
	if body := strings.TrimSpace(c.Body); body != "" {
		params = append(params, "body="+EscapeComponent(body))
	}

	if len(params) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(params, "&"))
	}

	return b.String()
}

func encodeSMS(c models.SMSData) string {
	out := "sms:" + StripWhitespace(strings.TrimSpace(c.Number))
	if msg := strings.TrimSpace(c.Message); msg != "" {
		out += "?body=" + EscapeComponent(msg)
	}
	return out
}

// encodeWiFi writes the WIFI: record. Delimiters inside the SSID or the
// password are not escaped, so such values cannot be parsed back.
func encodeWiFi(c models.WiFiData) string {
	hidden := "false"
	if c.Hidden {
		hidden = "true"
	}

	var b strings.Builder
	b.WriteString(wifiPrefix)
	b.WriteString("T:")
	b.WriteString(string(c.Encryption))
	b.WriteString(";S:")
	b.WriteString(strings.TrimSpace(c.SSID))
	b.WriteString(";P:")
	b.WriteString(strings.TrimSpace(c.Password))
	b.WriteString(";H:")
	b.WriteString(hidden)
	b.WriteString(wifiTerminator)

	return b.String()
}

// encodeVCard writes a vCard 3.0 record. Optional properties are left out
// when empty; property values are not escaped.
func encodeVCard(c models.VCardData) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + strings.TrimSpace(c.Name),
	}

	optional := []struct {
		prop  string
		value string
	}{
		{"ORG", c.Organization},
		{"TEL", c.Phone},
		{"EMAIL", c.Email},
		{"URL", c.URL},
	}
	for _, o := range optional {
		if v := strings.TrimSpace(o.value); v != "" {
			lines = append(lines, o.prop+":"+v)
		}
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}
