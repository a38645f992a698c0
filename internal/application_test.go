package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBind = errors.New("address already in use")

// drainingServer blocks until ctx is cancelled and then takes a while to stop.
func drainingServer(name string, stopped *atomic.Bool) server {
	return server{name: name, run: func(ctx context.Context) error {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		stopped.Store(true)
		return nil
	}}
}

func TestServe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Waits for servers to drain on cancel", func(t *testing.T) {
		var httpStopped, wsStopped atomic.Bool

		// Given: two running servers
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)

		// When: the context is cancelled
		err := serve(ctx, logger, drainingServer("HTTP", &httpStopped), drainingServer("WebSocket", &wsStopped))

		// Then: serve returns only after both servers stopped
		require.NoError(t, err)
		assert.True(t, httpStopped.Load())
		assert.True(t, wsStopped.Load())
	})

	t.Run("Failing server stops the others", func(t *testing.T) {
		var wsStopped atomic.Bool

		failing := server{name: "HTTP", run: func(context.Context) error {
			return errBind
		}}

		// When: one server fails to start
		err := serve(context.Background(), logger, failing, drainingServer("WebSocket", &wsStopped))

		// Then: its error is returned after the other server was shut down
		require.ErrorIs(t, err, errBind)
		assert.Contains(t, err.Error(), "HTTP server error")
		assert.True(t, wsStopped.Load())
	})
}
