package domain

import (
	"errors"
	"testing"
)

func TestPullRequestQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   PullRequestQuery
		wantErr bool
	}{
		{
			name:    "both parameters present",
			query:   PullRequestQuery{Owner: "octocat", Repo: "Hello-World"},
			wantErr: false,
		},
		{
			name:    "missing owner",
			query:   PullRequestQuery{Repo: "Hello-World"},
			wantErr: true,
		},
		{
			name:    "missing repo",
			query:   PullRequestQuery{Owner: "octocat"},
			wantErr: true,
		},
		{
			name:    "both missing",
			query:   PullRequestQuery{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("Validate() error = %v, want wrapped ErrInvalidQuery", err)
			}
		})
	}
}

func TestPullRequestQuery_Path(t *testing.T) {
	q := PullRequestQuery{Owner: "octocat", Repo: "Hello-World"}

	expected := "repos/octocat/Hello-World/pulls"
	if got := q.Path(); got != expected {
		t.Errorf("Path() = %q, want %q", got, expected)
	}
}
