package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/config"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/repository"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-threemark/transport/rest"
	"github.com/rocketscienceinc/tictactoe-threemark/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrDSNNotFound  = errors.New("postgres dsn is empty")
)

// RunApp - runs the application until ctx is done or SIGINT/SIGTERM arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	if conf.Postgres.DSN == "" {
		return ErrDSNNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	postgresStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("could not connect to postgres storage: %w", err)
	}
	defer postgresStorage.Close()

	if err = postgresStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init postgres storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.SessionTTL)
	profileRepo := repository.NewProfileRepository(postgresStorage.Connection)

	gameUseCase := usecase.NewGameUseCase(logger, gameRepo)
	presenceUseCase := usecase.NewPresenceUseCase(profileRepo)

	router := httprouter.New()
	rest.Register(router, rest.NewHandlers(logger, conf.PublicURL, gameUseCase, presenceUseCase))
	websocket.New(logger, gameUseCase, presenceUseCase).Register(router)

	srv := &http.Server{
		Addr:         ":" + conf.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := srv.ListenAndServe(); httpErr != nil && !errors.Is(httpErr, http.ErrServerClosed) {
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}
