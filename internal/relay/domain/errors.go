package domain

import (
	"errors"
	"fmt"
)

// UpstreamError represents a non-200 response from the upstream API.
// It carries the upstream status code and the raw response body so both
// can be surfaced to the caller unchanged.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// NewUpstreamError creates a new UpstreamError.
func NewUpstreamError(statusCode int, body string) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		Body:       body,
	}
}

// AsUpstream extracts an UpstreamError from err or anything it wraps.
func AsUpstream(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}
