package models

// ValidationResult is the verdict of validating a field set. A field set
// is either wholly valid or invalid with a single human-readable reason.
type ValidationResult struct {
	// Valid reports whether the field set can be encoded.
	Valid bool `json:"valid"`
	// Reason is the message shown to the user when Valid is false.
	Reason string `json:"reason,omitempty"`

	err error
}

// Valid returns an accepting verdict.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid returns a rejecting verdict whose reason is the message of err.
// The error is kept so callers can match it with errors.Is.
func Invalid(err error) ValidationResult {
	return ValidationResult{Valid: false, Reason: err.Error(), err: err}
}

// Err returns the error that caused the rejection, or nil for a valid result.
func (r ValidationResult) Err() error {
	return r.err
}
