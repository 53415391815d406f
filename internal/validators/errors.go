package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrUnsupportedContent is reported for a nil content value.
	ErrUnsupportedContent = errors.New("Unsupported content type")
)

// Content rejection reasons. The messages are shown to users verbatim.
var (
	ErrURLRequired = errors.New("URL is required")
	ErrInvalidURL  = errors.New("Please enter a valid URL")

	ErrTextRequired = errors.New("Text is required")

	ErrEmailRequired = errors.New("Email address is required")
	ErrInvalidEmail  = errors.New("Please enter a valid email address")

	ErrPhoneRequired = errors.New("Phone number is required")
	ErrInvalidPhone  = errors.New("Please enter a valid phone number")

	ErrWiFiSSIDRequired     = errors.New("WiFi network name is required")
	ErrWiFiPasswordRequired = errors.New("WiFi password is required")

	ErrNameRequired = errors.New("Name is required")

	ErrCoordinatesRequired = errors.New("Coordinates are required")
	ErrInvalidCoordinates  = errors.New("Invalid coordinates")
	ErrLatitudeOutOfRange  = errors.New("Latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("Longitude must be between -180 and 180")
)

// Style validation errors.
var (
	ErrInvalidSize            = errors.New("invalid size")
	ErrInvalidMargin          = errors.New("invalid margin")
	ErrInvalidColor           = errors.New("invalid color")
	ErrInvalidErrorCorrection = errors.New("invalid error correction level")
	ErrInvalidPreset          = errors.New("invalid preset")
)
