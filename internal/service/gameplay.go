package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/repository"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/rps"
)

type GamePlayService interface {
	StartMatch(ctx context.Context, playerID string, bestOf int) (*entity.Match, *entity.Player, error)
	PlayRound(ctx context.Context, playerID string, move entity.Move) (*entity.Match, error)
	GetMatchState(ctx context.Context, playerID string) (*entity.Match, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	matchService  MatchService
	botService    BotService

	defaultBestOf int
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	matchService MatchService,
	botService BotService,
	defaultBestOf int,
) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		playerService: playerService,
		matchService:  matchService,
		botService:    botService,
		defaultBestOf: defaultBestOf,
	}
}

// StartMatch - returns the player's ongoing match or starts a new one,
// replacing a finished or expired one. bestOf 0 uses the default.
func (that *gamePlayService) StartMatch(ctx context.Context, playerID string, bestOf int) (*entity.Match, *entity.Player, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.InMatch() {
		current, err := that.matchService.GetMatchByID(ctx, player.MatchID)
		switch {
		case err == nil && current.IsOngoing():
			return current, player, nil
		case err == nil:
			that.dropMatch(ctx, current)
		case !errors.Is(err, repository.ErrMatchNotFound):
			return nil, nil, fmt.Errorf("failed to get current match: %w", err)
		}
	}

	if bestOf == 0 {
		bestOf = that.defaultBestOf
	}

	match, err := that.matchService.CreateMatch(ctx, player, bestOf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create match: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, nil, fmt.Errorf("failed to update player: %w", err)
	}

	that.logger.Info("match started", "player_id", player.ID, "match_id", match.ID, "best_of", match.BestOf)

	return match, player, nil
}

func (that *gamePlayService) PlayRound(ctx context.Context, playerID string, move entity.Move) (*entity.Match, error) {
	if !move.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMove, int(move))
	}

	player, match, err := that.currentMatch(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if match.IsFinished() {
		return match, apperror.ErrMatchFinished
	}

	botMove := that.botService.ChooseMove()

	outcome, err := rps.Resolve(move, botMove)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve round: %w", err)
	}

	if _, err = match.AddRound(move, botMove, outcome); err != nil {
		return nil, fmt.Errorf("failed to record round: %w", err)
	}

	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	// keeps the player key alive as long as its match
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	that.logger.Debug("round played",
		"match_id", match.ID, "player_move", move, "bot_move", botMove, "outcome", outcome)

	if match.IsFinished() {
		that.logger.Info("match finished",
			"match_id", match.ID, "winner", match.Winner, "wins", match.Score.Wins, "losses", match.Score.Losses)
	}

	return match, nil
}

func (that *gamePlayService) GetMatchState(ctx context.Context, playerID string) (*entity.Match, error) {
	_, match, err := that.currentMatch(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return match, nil
}

func (that *gamePlayService) currentMatch(ctx context.Context, playerID string) (*entity.Player, *entity.Match, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InMatch() {
		return nil, nil, apperror.ErrNoActiveMatch
	}

	match, err := that.matchService.GetMatchByID(ctx, player.MatchID)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return nil, nil, fmt.Errorf("%w: match %s expired", apperror.ErrNoActiveMatch, player.MatchID)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	return player, match, nil
}

// dropMatch - deletes a finished match before it is replaced; failures are only logged.
func (that *gamePlayService) dropMatch(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "dropMatch", "match_id", match.ID)

	if err := that.matchService.DeleteMatch(ctx, match.ID); err != nil && !errors.Is(err, repository.ErrMatchNotFound) {
		log.Error("failed to delete finished match", "error", err)
		return
	}

	log.Debug("finished match deleted")
}
