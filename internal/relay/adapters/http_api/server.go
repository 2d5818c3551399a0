package httpapi

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/negroni"
)

const shutdownTimeout = 5 * time.Second

// Server runs the relay's HTTP listener with panic recovery and
// graceful shutdown.
type Server struct {
	logger *log.Logger
	srv    *http.Server
}

// NewServer wraps the handler in recovery middleware and binds it to addr.
func NewServer(addr string, logger *log.Logger, handler http.Handler) *Server {
	n := negroni.New(&negroni.Recovery{
		Logger:     stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		PrintStack: false,
		StackAll:   false,
		StackSize:  1024 * 8,
	})
	n.UseHandler(handler)

	return &Server{
		logger: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           n,
			ReadHeaderTimeout: time.Second * 10,
		},
	}
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
