// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators decides whether user input can be turned into a code.
//
// Core concepts:
//   - ContentValidator: the per-content-type rules that accept a field set
//     or reject it with a single human-readable reason.
//   - Validator: generic field-scoped interface used for structured values
//     such as the presentation style.
//
// Validation never fails with an error for bad user input: content rules
// return a models.ValidationResult, and the reasons are also exported as
// sentinel errors so outer layers can match them with errors.Is.
package validators

import (
	"context"

	"github.com/MKhiriev/go-qr-forge/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// ContentValidator accepts or rejects a typed field set. Implementations
// are pure and safe for concurrent use.
type ContentValidator interface {
	Validate(content models.Content) models.ValidationResult
}
