package models

import "encoding/json"

// ContentRequest carries a content type and its raw field values.
type ContentRequest struct {
	Type   ContentType     `json:"type"`
	Fields json.RawMessage `json:"fields"`
}

// BuildRequest asks the server to validate and encode a field set.
// Style is optional; the default style is used when omitted.
type BuildRequest struct {
	ContentRequest
	Style *Style `json:"style,omitempty"`
}

// BuildResponse is returned by the build endpoint.
type BuildResponse struct {
	Payload
	Style    Style  `json:"style"`
	FileName string `json:"file_name"`
}

// SaveRequest asks to store a generated payload in the history.
type SaveRequest struct {
	Name string `json:"name"`
	ContentRequest
	Style *Style `json:"style,omitempty"`
}

// ErrorResponse is the JSON body of failed API calls.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
