package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/config"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/repository"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/repository/storage"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/service"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/usecase"
	"github.com/rocketscienceinc/rockpaperscissors-backend/transport/rest"
	"github.com/rocketscienceinc/rockpaperscissors-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisAddr := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection, conf.Match.TTL)
	matchRepo := repository.NewMatchRepository(redisStorage.Connection, conf.Match.TTL)

	botService := service.NewBotService()
	playerService := service.NewPlayerService(playerRepo)
	matchService := service.NewMatchService(matchRepo)
	gamePlayService := service.NewGamePlayService(logger, playerService, matchService, botService, conf.Match.BestOf)

	gameUseCase := usecase.NewGameUseCase(logger, playerService, gamePlayService)

	return serve(ctx, log,
		server{name: "HTTP", run: func(ctx context.Context) error {
			return rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, botService))
		}},
		server{name: "WebSocket", run: func(ctx context.Context) error {
			return websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort)
		}},
	)
}

type server struct {
	name string
	run  func(ctx context.Context) error
}

// serve - runs servers until one of them stops or ctx is cancelled, then waits for all of them to return.
func serve(ctx context.Context, log *slog.Logger, servers ...server) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func() {
			log.Info("Starting server", "server", srv.name)

			if err := srv.run(ctx); err != nil {
				errCh <- fmt.Errorf("%s server error: %w", srv.name, err)
				return
			}
			errCh <- nil
		}()
	}

	remaining := len(servers)

	var runErr error
	select {
	case runErr = <-errCh:
		remaining--
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	cancel()

	for ; remaining > 0; remaining-- {
		if err := <-errCh; err != nil && runErr == nil {
			runErr = err
		}
	}

	return runErr
}
