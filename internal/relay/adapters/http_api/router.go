// Package httpapi exposes the relay's HTTP surface.
package httpapi

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// NewRouter builds the route table with request-id and logging middleware.
func NewRouter(logger *log.Logger, pulls *PullsController) *mux.Router {
	requestID := &RequestID{}
	requestLogger := &RequestLogger{Logger: logger}

	router := mux.NewRouter()
	router.Use(requestID.Middleware, requestLogger.Middleware)
	router.HandleFunc("/", Greeting).Methods(http.MethodGet)
	router.HandleFunc("/healthz", Healthz).Methods(http.MethodGet)
	router.HandleFunc("/repos/{owner}/{repo}/pulls", pulls.Get).Methods(http.MethodGet)

	return router
}

// Greeting serves the fixed root payload.
func Greeting(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Fixed payload, write errors not actionable
	_, _ = w.Write([]byte(`{"message":"Hello World"}`))
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Fixed payload, write errors not actionable
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
