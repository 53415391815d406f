package models

import "errors"

var (
	// ErrUnknownContentType is returned when a content type tag or value
	// does not name one of the declared content types.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrMalformedFields is returned when raw field JSON cannot be decoded
	// into the field set of the requested content type.
	ErrMalformedFields = errors.New("malformed content fields")
)
