package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Response is the standard GraphQL response envelope.
type Response struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Errors     []Error         `json:"errors,omitempty"`
	Extensions map[string]any  `json:"extensions,omitempty"`

	// Raw is the body exactly as received.
	Raw []byte `json:"-"`
}

// Location points at a position in the query document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error is a single entry of the top-level "errors" array.
type Error struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e Error) Error() string {
	return e.Message
}

// HasErrors reports whether the backend returned GraphQL-level errors.
func (r *Response) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// HasData reports whether a non-null "data" member is present.
func (r *Response) HasData() bool {
	return r != nil && len(r.Data) > 0 && string(r.Data) != "null"
}

// Decode unmarshals the "data" member into v.
func (r *Response) Decode(v any) error {
	if !r.HasData() {
		return ErrNoData
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode graphql data: %w", err)
	}
	return nil
}

// ErrNoData is returned by Decode when the response carried no data.
var ErrNoData = errors.New("graphql response has no data")

// StatusError reports a non-2xx HTTP response from the endpoint.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graphql endpoint responded with status %d", e.StatusCode)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
