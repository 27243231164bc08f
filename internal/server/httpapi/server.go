// Package httpapi exposes the note-taking service over HTTP. Every route
// passes the rate limiter first; the note routes additionally require a
// valid session token in the auth-token header.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/dmitrijs2005/notekeeper/internal/server/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/notekeeper/internal/server/users"
	"github.com/gorilla/mux"
)

type userSvc interface {
	Register(ctx context.Context, name, username, password string, isAdmin bool) (*users.View, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type noteSvc interface {
	Create(ctx context.Context, actor *auth.Claims, description *string) (*notes.Note, error)
	Get(ctx context.Context, actor *auth.Claims, id int64) (*notes.Note, error)
	Update(ctx context.Context, actor *auth.Claims, id int64, description *string) (*notes.Note, error)
	Delete(ctx context.Context, actor *auth.Claims, id int64) error
}

type Server struct {
	address   string
	logger    logging.Logger
	users     userSvc
	notes     noteSvc
	limiter   *ratelimit.Limiter
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us userSvc, ns noteSvc, limiter *ratelimit.Limiter, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "httpapi"),
		users:     us,
		notes:     ns,
		limiter:   limiter,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router builds the route table. The middleware order is fixed: request
// logging, then rate admission, then (for note routes) token auth.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logMiddleware)

	r.HandleFunc("/users/register", s.rateLimit(s.handleRegister)).Methods(http.MethodPost)
	r.HandleFunc("/users/login", s.rateLimit(s.handleLogin)).Methods(http.MethodPost)

	n := r.PathPrefix("/notes").Subrouter()
	n.HandleFunc("/new", s.rateLimit(s.requireAuth(s.handleCreateNote))).Methods(http.MethodPost)
	n.HandleFunc("/{noteId:[0-9]+}", s.rateLimit(s.requireAuth(s.handleGetNote))).Methods(http.MethodGet)
	n.HandleFunc("/{noteId:[0-9]+}", s.rateLimit(s.requireAuth(s.handleUpdateNote))).Methods(http.MethodPut)
	n.HandleFunc("/{noteId:[0-9]+}", s.rateLimit(s.requireAuth(s.handleDeleteNote))).Methods(http.MethodDelete)

	return r
}

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
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
