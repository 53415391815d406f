package validators

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-qr-forge/internal/encoder"
	"github.com/MKhiriev/go-qr-forge/models"
)

// minPhoneDigits is the smallest number of digits a phone number may have.
const minPhoneDigits = 7

var (
	emailPattern      = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)
	coordinatePattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// schemes that are meaningless without a host.
var hostSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ftp":   {},
	"ws":    {},
	"wss":   {},
}

type contentValidator struct{}

// NewContentValidator returns the ContentValidator implementing the
// per-type rules of every models.Content variant.
func NewContentValidator() ContentValidator {
	return &contentValidator{}
}

// Validate implements ContentValidator.
func (v *contentValidator) Validate(content models.Content) models.ValidationResult {
	return ValidateContent(content)
}

// ValidateContent checks content against the rules of its type. Checks run
// in a fixed order and the first failing one determines the reason.
func ValidateContent(content models.Content) models.ValidationResult {
	var err error

	switch c := content.(type) {
	case models.URLData:
		err = validateURL(c)
	case models.TextData:
		err = validateText(c)
	case models.EmailData:
		err = validateEmail(c)
	case models.PhoneData:
		err = validatePhone(c.Number)
	case models.SMSData:
		err = validatePhone(c.Number)
	case models.WiFiData:
		err = validateWiFi(c)
	case models.VCardData:
		err = validateVCard(c)
	case models.LocationData:
		err = validateLocation(c)
	default:
		err = ErrUnsupportedContent
	}

	if err != nil {
		return models.Invalid(err)
	}
	return models.Valid()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateURL(data models.URLData) error {
	if isBlank(data.URL) {
		return ErrURLRequired
	}

	value := strings.TrimSpace(data.URL)
	if isAbsoluteURL(value) {
		return nil
	}
	if !hasHTTPPrefix(value) && isAbsoluteURL("https://"+value) {
		return nil
	}

	return ErrInvalidURL
}

// hasHTTPPrefix reports whether s already names an http(s) scheme, in which
// case no https:// retry is attempted.
func hasHTTPPrefix(s string) bool {
	return len(s) >= 4 && strings.EqualFold(s[:4], "http")
}

// isAbsoluteURL reports whether s parses as a URL with a scheme. Schemes
// that address a host must carry a non-empty one.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}

	if _, ok := hostSchemes[strings.ToLower(u.Scheme)]; ok {
		return u.Hostname() != ""
	}

	return u.Opaque != "" || u.Host != "" || u.Path != ""
}

func validateText(data models.TextData) error {
	if isBlank(data.Text) {
		return ErrTextRequired
	}
	return nil
}

func validateEmail(data models.EmailData) error {
	if isBlank(data.Address) {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(data.Address) {
		return ErrInvalidEmail
	}
	return nil
}

func validatePhone(number string) error {
	if isBlank(number) {
		return ErrPhoneRequired
	}

	for _, r := range number {
		switch {
		case r >= '0' && r <= '9':
		case unicode.IsSpace(r), r == '+', r == '-', r == '(', r == ')':
		default:
			return ErrInvalidPhone
		}
	}

	if len(encoder.Digits(number)) < minPhoneDigits {
		return ErrInvalidPhone
	}
	return nil
}

func validateWiFi(data models.WiFiData) error {
	if isBlank(data.SSID) {
		return ErrWiFiSSIDRequired
	}
	if isBlank(data.Password) {
		return ErrWiFiPasswordRequired
	}
	return nil
}

func validateVCard(data models.VCardData) error {
	if isBlank(data.Name) {
		return ErrNameRequired
	}
	if isBlank(data.Phone) {
		return ErrPhoneRequired
	}
	return nil
}

func validateLocation(data models.LocationData) error {
	if isBlank(data.Latitude) || isBlank(data.Longitude) {
		return ErrCoordinatesRequired
	}

	lat, ok := parseCoordinate(data.Latitude)
	if !ok {
		return ErrInvalidCoordinates
	}
	lng, ok := parseCoordinate(data.Longitude)
	if !ok {
		return ErrInvalidCoordinates
	}

	if lat < -90 || lat > 90 {
		return ErrLatitudeOutOfRange
	}
	if lng < -180 || lng > 180 {
		return ErrLongitudeOutOfRange
	}
	return nil
}

// parseCoordinate accepts plain decimal notation with an optional exponent.
func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !coordinatePattern.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
