package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type bot interface {
	ChooseMove() entity.Move
}

// NewRouter - registers the stateless HTTP endpoints.
func NewRouter(logger *slog.Logger, bot bot) http.Handler {
	rounds := newRoundHandler(logger, bot)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("GET /api/resolve", rounds.resolve)
	mux.HandleFunc("GET /api/bot/move", rounds.botMove)
	mux.HandleFunc("GET /api/play", rounds.play)

	return mux
}

// Start - serves handler on port until ctx is cancelled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
