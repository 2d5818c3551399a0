// Package ghapi fetches pull-request listings from the GitHub REST API.
package ghapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/go-github/v68/github"

	"github.com/nathantilsley/pr-relay/internal/relay/domain"
)

// Adapter implements app.PullSource against the GitHub API.
type Adapter struct {
	client *github.Client
}

// New creates a new GitHub API adapter.
func New(client *github.Client) *Adapter {
	return &Adapter{client: client}
}

// ListPullRequests issues one GET against the repository's pulls resource
// and returns the response body verbatim. The request goes through
// BareDo rather than a typed API call so the payload is never decoded
// or re-encoded on the way through.
func (a *Adapter) ListPullRequests(ctx context.Context, q domain.PullRequestQuery) ([]byte, error) {
	req, err := a.client.NewRequest(http.MethodGet, q.Path(), nil)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}

	// BareDo reports non-2xx statuses as errors, but the response body is
	// re-populated and still readable; the status branch below is what
	// decides success vs. upstream failure.
	resp, bareErr := a.client.BareDo(ctx, req)
	if resp == nil {
		return nil, fmt.Errorf("calling upstream: %w", bareErr)
	}
	//nolint:errcheck // Deferred cleanup, error not actionable
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(resp.StatusCode, string(body))
	}
	return body, nil
}
