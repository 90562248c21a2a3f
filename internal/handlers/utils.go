package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/songwish/apiserver/internal/upstream"
	"github.com/songwish/apiserver/internal/validate"
)

// ErrorResponse is a simple error payload. Code is set only for upstream
// failures and is stable across releases.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ValidationErrorResponse lists the individual field violations.
type ValidationErrorResponse struct {
	Error  string           `json:"error"`
	Issues []validate.Issue `json:"issues"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeIssues(w http.ResponseWriter, issues []validate.Issue) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  "validation failed",
		Issues: issues,
	})
}

// writeUpstreamError maps an upstream failure to 502 with its stable code.
func writeUpstreamError(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusBadGateway, ErrorResponse{
		Error: message,
		Code:  upstream.Code(err),
	})
}
