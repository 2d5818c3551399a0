// Package app wires the relay's use cases to their ports.
package app

import (
	"context"
	"fmt"

	"github.com/nathantilsley/pr-relay/internal/relay/domain"
)

// PullSource fetches the raw pull-request listing for a repository.
type PullSource interface {
	ListPullRequests(ctx context.Context, q domain.PullRequestQuery) ([]byte, error)
}

// Service relays pull-request queries to a PullSource.
type Service struct {
	source PullSource
}

// NewService creates a new relay service.
func NewService(source PullSource) *Service {
	return &Service{source: source}
}

// ListPullRequests validates the query and returns the upstream payload
// byte-for-byte. The service never decodes the payload.
func (s *Service) ListPullRequests(ctx context.Context, q domain.PullRequestQuery) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	body, err := s.source.ListPullRequests(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests for %s/%s: %w", q.Owner, q.Repo, err)
	}
	return body, nil
}
