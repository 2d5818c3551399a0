package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/nathantilsley/pr-relay/internal/relay/app"
	"github.com/nathantilsley/pr-relay/internal/relay/domain"
)

// PullsController relays pull-request listings from the upstream API.
type PullsController struct {
	Service *app.Service
	Logger  *log.Logger
}

// errorBody is the error envelope surfaced to callers.
type errorBody struct {
	Detail string `json:"detail"`
}

// Get handles GET /repos/{owner}/{repo}/pulls. The upstream body is
// written through unchanged on success; on an upstream failure the
// response carries the upstream's status code and its raw body as the
// error detail.
func (c *PullsController) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	q := domain.PullRequestQuery{Owner: vars["owner"], Repo: vars["repo"]}

	body, err := c.Service.ListPullRequests(r.Context(), q)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // Relayed payload, write errors not actionable
	_, _ = w.Write(body)
}

func (c *PullsController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	// Default for transport-level failures where no upstream status exists.
	status := http.StatusBadGateway
	detail := err.Error()

	switch upstreamErr, ok := domain.AsUpstream(err); {
	case ok:
		status = upstreamErr.StatusCode
		detail = upstreamErr.Body
	case errors.Is(err, domain.ErrInvalidQuery):
		status = http.StatusBadRequest
	}

	if c.Logger != nil {
		c.Logger.Warn("relay failed",
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Error path, write errors not actionable
	_ = json.NewEncoder(w).Encode(errorBody{Detail: detail})
}
