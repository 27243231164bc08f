// Package server initializes and runs the application: it wires storage,
// services, the rate limiter and the HTTP endpoint, and handles graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/notekeeper/internal/server/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/notekeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/notekeeper/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     db.RepositoryManager
	userService *users.Service
	noteService *notes.Service
	limiter     *ratelimit.Limiter
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), c)
	ns := notes.NewService(m.Notes())

	limiter := ratelimit.New(c.RateLimitPerMinute, c.RateLimitWindow)

	return &App{
		config:      c,
		logger:      logger,
		manager:     m,
		userService: us,
		noteService: ns,
		limiter:     limiter,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.noteService, app.limiter, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "config", app.config.String())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	// the window reset loop is the only recurring background task
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.limiter.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
