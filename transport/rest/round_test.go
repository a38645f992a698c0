package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

type stubBot struct {
	move entity.Move
}

func (that stubBot) ChooseMove() entity.Move {
	return that.move
}

func newTestRouter(botMove entity.Move) http.Handler {
	return NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), stubBot{move: botMove})
}

func get(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]string
	if recorder.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}

	return recorder, body
}

func TestPing(t *testing.T) {
	recorder, _ := get(t, newTestRouter(entity.Rock), "/ping")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestResolveHandler(t *testing.T) {
	t.Run("Rock beats scissors", func(t *testing.T) {
		// When: resolving rock against scissors
		recorder, body := get(t, newTestRouter(entity.Rock), "/api/resolve?player1=rock&player2=scissors")

		// Then: player one wins
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, map[string]string{"player1": "rock", "player2": "scissors", "outcome": "win"}, body)
	})

	t.Run("Invalid move", func(t *testing.T) {
		recorder, body := get(t, newTestRouter(entity.Rock), "/api/resolve?player1=rock&player2=spock")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, body["error"], "invalid move")
	})

	t.Run("Missing move", func(t *testing.T) {
		recorder, body := get(t, newTestRouter(entity.Rock), "/api/resolve?player1=paper")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "missing player2", body["error"])
	})
}

func TestBotMoveHandler(t *testing.T) {
	recorder, body := get(t, newTestRouter(entity.Scissors), "/api/bot/move")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "scissors", body["move"])
}

func TestPlayHandler(t *testing.T) {
	t.Run("Loses to paper", func(t *testing.T) {
		recorder, body := get(t, newTestRouter(entity.Paper), "/api/play?move=Rock")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, map[string]string{"player": "rock", "bot": "paper", "outcome": "lose"}, body)
	})

	t.Run("Wrong method", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newTestRouter(entity.Rock).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/play?move=rock", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
