package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/repository"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartMatch(ctx context.Context, playerID string, bestOf int) (*entity.Match, *entity.Player, error)
	GetMatch(ctx context.Context, playerID string) (*entity.Match, error)

	PlayRound(ctx context.Context, playerID string, move entity.Move) (*entity.Match, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	StartMatch(ctx context.Context, playerID string, bestOf int) (*entity.Match, *entity.Player, error)
	PlayRound(ctx context.Context, playerID string, move entity.Move) (*entity.Match, error)
	GetMatchState(ctx context.Context, playerID string) (*entity.Match, error)
}

type gameUseCase struct {
	logger *slog.Logger

	playerService   playerService
	gamePlayService gamePlayService
}

func NewGameUseCase(logger *slog.Logger, playerService playerService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		logger:          logger.With("component", "usecase"),
		playerService:   playerService,
		gamePlayService: gamePlayService,
	}
}

// GetOrCreatePlayer - an empty or expired id gets a fresh player.
func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID != "" {
		player, err := that.playerService.GetPlayerByID(ctx, playerID)
		if err == nil {
			return player, nil
		}

		if !errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to get player by id: %w", err)
		}

		that.logger.Info("player session expired, creating a new one", "player_id", playerID)
	}

	player, err := that.playerService.CreatePlayer(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create player: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) StartMatch(ctx context.Context, playerID string, bestOf int) (*entity.Match, *entity.Player, error) {
	match, player, err := that.gamePlayService.StartMatch(ctx, playerID, bestOf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start match: %w", err)
	}

	return match, player, nil
}

func (that *gameUseCase) GetMatch(ctx context.Context, playerID string) (*entity.Match, error) {
	match, err := that.gamePlayService.GetMatchState(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match state: %w", err)
	}

	return match, nil
}

func (that *gameUseCase) PlayRound(ctx context.Context, playerID string, move entity.Move) (*entity.Match, error) {
	match, err := that.gamePlayService.PlayRound(ctx, playerID, move)
	if err != nil {
		return match, fmt.Errorf("failed to play round: %w", err)
	}

	return match, nil
}
