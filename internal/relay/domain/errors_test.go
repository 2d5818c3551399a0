package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamError(t *testing.T) {
	err := NewUpstreamError(404, `{"message":"Not Found"}`)

	expected := `upstream returned status 404: {"message":"Not Found"}`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestAsUpstream(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       bool
		wantStatus int
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name:       "typed UpstreamError",
			err:        NewUpstreamError(404, "not found"),
			want:       true,
			wantStatus: 404,
		},
		{
			name:       "wrapped UpstreamError",
			err:        fmt.Errorf("listing pull requests: %w", NewUpstreamError(503, "unavailable")),
			want:       true,
			wantStatus: 503,
		},
		{
			name: "generic error mentioning a status",
			err:  errors.New("upstream returned status 404"),
			want: false,
		},
		{
			name: "validation error",
			err:  fmt.Errorf("%w: owner is required", ErrInvalidQuery),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsUpstream(tt.err)
			if ok != tt.want {
				t.Fatalf("AsUpstream(%v) ok = %v, want %v", tt.err, ok, tt.want)
			}
			if ok && got.StatusCode != tt.wantStatus {
				t.Errorf("AsUpstream(%v) status = %d, want %d", tt.err, got.StatusCode, tt.wantStatus)
			}
		})
	}
}
