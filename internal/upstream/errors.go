// Package upstream defines the error taxonomy for external collaborators
// (the LLM completion provider and the TTS provider).
package upstream

import "errors"

// ErrUnavailable is returned when an upstream call fails at the transport
// level, times out, or answers with a non-success status.
var ErrUnavailable = errors.New("upstream unavailable")

// ErrBadPayload is returned when an upstream call succeeds but the response
// body is undecodable or missing the expected content.
var ErrBadPayload = errors.New("upstream returned unusable data")

// Stable machine-readable codes surfaced in error responses.
const (
	CodeUnavailable = "upstream_unavailable"
	CodeBadPayload  = "upstream_invalid_response"
)

// Code maps an upstream error to its stable code, or "" for other errors.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnavailable):
		return CodeUnavailable
	case errors.Is(err, ErrBadPayload):
		return CodeBadPayload
	}
	return ""
}
