package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// WriteJSON writes data as the JSON response body with the given status.
// The Content-Type header is set before the status code so order responses
// and error bodies alike go out as application/json.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse is the error body shared by every endpoint: a stable
// machine-readable code (e.g. "order_not_found", "duplicate_product_id")
// plus a human-readable message.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes an errorResponse with the given status code.
func WriteError(w http.ResponseWriter, status int, errorCode, message string) {
	WriteJSON(w, status, errorResponse{
		Error:   errorCode,
		Message: message,
	})
}

var errContentType = errors.New("Content-Type must be application/json")

// ParseJSON decodes the request body into v. Decoding is strict: the
// Content-Type header must be application/json and fields not present in v
// are rejected, so a typo in a sale or stock payload fails loudly instead
// of being silently dropped.
func ParseJSON(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "application/json") {
		return errContentType
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("request body is not valid JSON: %v", err)
	}

	return nil
}
