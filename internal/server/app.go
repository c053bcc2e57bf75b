// Package server initializes and runs the Writely backend. It opens the
// database, applies migrations, wires services to the HTTP router, and
// handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shivam7262/Writely/internal/logging"
	"github.com/Shivam7262/Writely/internal/server/config"
	"github.com/Shivam7262/Writely/internal/server/httpapi"
	"github.com/Shivam7262/Writely/internal/server/repositories/repomanager"
	"github.com/Shivam7262/Writely/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	documentService *services.DocumentService
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	ds := services.NewDocumentService(db, rm)

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		userService:     us,
		documentService: ds,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	router := httpapi.SetupRouter(app.logger, app.userService, app.documentService)
	srv := &http.Server{Addr: app.config.EndpointAddr, Handler: router}

	go func() {
		<-ctx.Done()
		app.logger.Info(context.Background(), "stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(context.Background(), "shutdown error", "error", err.Error())
		}
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "error", err.Error())
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
	}
}
