package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery is wrapped by validation failures on incoming queries.
var ErrInvalidQuery = errors.New("invalid query")

// PullRequestQuery identifies the repository whose pull requests are requested.
type PullRequestQuery struct {
	Owner string
	Repo  string
}

// Validate checks that both path parameters are present.
func (q PullRequestQuery) Validate() error {
	if q.Owner == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidQuery)
	}
	if q.Repo == "" {
		return fmt.Errorf("%w: repo is required", ErrInvalidQuery)
	}
	return nil
}

// Path returns the upstream resource path relative to the API root.
func (q PullRequestQuery) Path() string {
	return fmt.Sprintf("repos/%s/%s/pulls", q.Owner, q.Repo)
}
