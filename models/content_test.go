package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	for _, ct := range ContentTypes() {
		parsed, err := ParseContentType(ct.String())
		require.NoError(t, err)
		assert.Equal(t, ct, parsed)
	}

	parsed, err := ParseContentType("  WiFi ")
	require.NoError(t, err)
	assert.Equal(t, WiFi, parsed)

	_, err = ParseContentType("fax")
	assert.ErrorIs(t, err, ErrUnknownContentType)

	assert.Equal(t, "unknown", ContentType(42).String())
	assert.False(t, ContentType(0).IsValid())
}

func TestContentType_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Type ContentType `json:"type"`
	}{Type: VCard})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"vcard"}`, string(b))

	var req ContentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"type":"sms","fields":{"number":"1"}}`), &req))
	assert.Equal(t, SMS, req.Type)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"fax"}`), &req))

	_, err = json.Marshal(struct{ T ContentType }{T: 99})
	assert.ErrorIs(t, err, ErrUnknownContentType)
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		t       ContentType
		raw     string
		want    Content
		wantErr error
	}{
		{name: "url", t: URL, raw: `{"url":"example.com"}`, want: URLData{URL: "example.com"}},
		{name: "email", t: Email, raw: `{"address":"a@b.com","subject":"s"}`, want: EmailData{Address: "a@b.com", Subject: "s"}},
		{name: "wifi default encryption", t: WiFi, raw: `{"ssid":"n","password":"p"}`, want: WiFiData{SSID: "n", Password: "p", Encryption: WPA}},
		{name: "wifi hidden", t: WiFi, raw: `{"ssid":"n","password":"p","encryption":"WEP","hidden":true}`, want: WiFiData{SSID: "n", Password: "p", Encryption: WEP, Hidden: true}},
		{name: "empty gives zero value", t: Location, raw: ``, want: LocationData{}},
		{name: "null gives zero value", t: Text, raw: `null`, want: TextData{}},
		{name: "null wifi keeps default", t: WiFi, raw: ` null `, want: WiFiData{Encryption: WPA}},
		{name: "unknown fields ignored", t: Phone, raw: `{"number":"1","extra":true}`, want: PhoneData{Number: "1"}},
		{name: "malformed", t: VCard, raw: `{"name":`, wantErr: ErrMalformedFields},
		{name: "wrong field type", t: Text, raw: `{"text":5}`, wantErr: ErrMalformedFields},
		{name: "unknown type", t: ContentType(0), raw: `{}`, wantErr: ErrUnknownContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContent(tt.t, json.RawMessage(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFields(t *testing.T) {
	in := VCardData{Name: "Jane", Phone: "1"}

	raw, err := EncodeFields(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane","phone":"1"}`, string(raw))

	out, err := DecodeContent(VCard, raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = EncodeFields(nil)
	assert.ErrorIs(t, err, ErrUnknownContentType)
}

func TestPayload_FileName(t *testing.T) {
	p := Payload{Type: WiFi, Data: "WIFI:;;"}

	assert.Equal(t, "codenest-qr-wifi.png", p.FileName("png"))
	assert.Equal(t, "codenest-qr-wifi.svg", p.FileName(".svg"))
	assert.Equal(t, "codenest-qr-wifi", p.FileName(" "))
	assert.False(t, p.IsEmpty())
	assert.True(t, Payload{Data: "  "}.IsEmpty())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" 1.0.0 ", "", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Empty(t, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "1.0.0 (abc123, N/A)", info.String())
	assert.Equal(t, "N/A (N/A, N/A)", AppBuildInfo{}.String())
}

func TestValidationResult(t *testing.T) {
	assert.Equal(t, ValidationResult{Valid: true}, Valid())
	assert.NoError(t, Valid().Err())

	res := Invalid(ErrMalformedFields)
	assert.False(t, res.Valid)
	assert.Equal(t, "malformed content fields", res.Reason)
	assert.ErrorIs(t, res.Err(), ErrMalformedFields)
}
