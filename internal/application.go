package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ludo-authority/ludo-backend/internal/config"
	"github.com/ludo-authority/ludo-backend/internal/ludo"
	"github.com/ludo-authority/ludo-backend/internal/monitor"
	"github.com/ludo-authority/ludo-backend/internal/repository"
	"github.com/ludo-authority/ludo-backend/internal/repository/storage"
	"github.com/ludo-authority/ludo-backend/internal/service"
	"github.com/ludo-authority/ludo-backend/internal/usecase"
	"github.com/ludo-authority/ludo-backend/transport/rest"
	"github.com/ludo-authority/ludo-backend/transport/websocket"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownStorage = errors.New("unknown storage")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	matchRepo, closeStorage, err := newMatchRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	metrics := monitor.New(conf.MetricsNamespace)
	hub := websocket.NewHub(logger, conf.CORS.AllowedOrigins)

	matchService := service.NewMatchService(matchRepo)
	gamePlayService := service.NewGamePlayService(logger, matchService, service.NewPlayerService(), ludo.NewRoller(ludo.NewRandomSource()))
	gameUseCase := usecase.NewGameUseCase(logger, matchService, gamePlayService, metrics, hub)
	hub.Attach(gameUseCase)

	server := rest.New(logger, rest.NewHandlers(logger, gameUseCase), conf.CORS.AllowedOrigins, metrics.Handler(), hub)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newMatchRepository(ctx context.Context, conf *config.Config) (repository.MatchRepository, func(), error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemoryMatchRepository(), func() {}, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisClient, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewMatchRepository(redisClient), closeStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownStorage, conf.Storage)
	}
}
