// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers and the
// client side error mapping.
//
// The server writes one of the Msg* constants into the "error" field of an
// error response; the client matches the same constant to restore the
// original sentinel error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded, names an unknown content type or has malformed fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidStyle is returned when a style has an out of range size or
	// margin, a malformed color or an unknown error correction level.
	MsgInvalidStyle = "invalid style"

	// MsgUnknownPreset is returned when the requested preset does not exist.
	MsgUnknownPreset = "unknown preset"

	// MsgPayloadInvalid is returned when a field set fails validation on save.
	// The validator message is sent alongside in the "reason" field.
	MsgPayloadInvalid = "payload failed validation"

	// MsgEmptyPayloadName is returned when a save request has a blank name.
	MsgEmptyPayloadName = "payload name is empty"

	// MsgPayloadNameTooLong is returned when a name exceeds the column width.
	MsgPayloadNameTooLong = "payload name is too long"

	// MsgInvalidPayloadID is returned when a path id is not a UUID.
	MsgInvalidPayloadID = "invalid payload id"

	// MsgPayloadNotFound is returned when no saved payload has the given id.
	MsgPayloadNotFound = "payload not found"

	// MsgPayloadNameExists is returned when the name is already used.
	MsgPayloadNameExists = "payload name already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
