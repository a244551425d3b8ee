// Package httpapi exposes the account service over HTTP/JSON. The handlers
// stay thin: parse the request, call the service, translate the error kind
// into a status code.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userauth/internal/logging"
	"github.com/dmitrijs2005/userauth/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	address   string
	accounts  *services.AccountService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, as *services.AccountService, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		accounts:  as,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestLogMiddleware)
	r.Use(corsMiddleware)

	r.Get("/", s.handleHome)
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Get("/register/users", s.handleListAccounts)

	r.Group(func(r chi.Router) {
		r.Use(s.bearerAuthMiddleware)
		r.Get("/user", s.handleGetSelf)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
