package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/rps"
)

type roundHandler struct {
	logger *slog.Logger
	bot    bot
}

type resolveResponse struct {
	Player1 entity.Move    `json:"player1"`
	Player2 entity.Move    `json:"player2"`
	Outcome entity.Outcome `json:"outcome"`
}

type botMoveResponse struct {
	Move entity.Move `json:"move"`
}

type playResponse struct {
	Player  entity.Move    `json:"player"`
	Bot     entity.Move    `json:"bot"`
	Outcome entity.Outcome `json:"outcome"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRoundHandler(logger *slog.Logger, bot bot) *roundHandler {
	return &roundHandler{
		logger: logger.With("component", "rest"),
		bot:    bot,
	}
}

// resolve - GET /api/resolve?player1=rock&player2=scissors.
func (that *roundHandler) resolve(w http.ResponseWriter, r *http.Request) {
	move1, err := queryMove(r, "player1")
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	move2, err := queryMove(r, "player2")
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	outcome, err := rps.Resolve(move1, move2)
	if err != nil {
		that.logger.Error("failed to resolve round", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	that.writeJSON(w, http.StatusOK, resolveResponse{Player1: move1, Player2: move2, Outcome: outcome})
}

func (that *roundHandler) botMove(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, botMoveResponse{Move: that.bot.ChooseMove()})
}

// play - GET /api/play?move=paper, one round against the bot with no match state.
func (that *roundHandler) play(w http.ResponseWriter, r *http.Request) {
	move, err := queryMove(r, "move")
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	botMove := that.bot.ChooseMove()

	outcome, err := rps.Resolve(move, botMove)
	if err != nil {
		that.logger.Error("failed to resolve round", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	that.writeJSON(w, http.StatusOK, playResponse{Player: move, Bot: botMove, Outcome: outcome})
}

func queryMove(r *http.Request, name string) (entity.Move, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, fmt.Errorf("missing %s", name)
	}

	move, err := entity.ParseMove(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return move, nil
}

func (that *roundHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
