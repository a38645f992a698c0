package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, session *session, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(session, msg.Action, "invalid payload")
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendError(session, msg.Action, "failed to create a new player")
	}

	session.playerID = player.ID

	log.Info("player connected", "player_id", player.ID)

	return that.sendMessage(session, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewMatch(ctx context.Context, session *session, msg *Message) error {
	log := that.logger.With("method", "handleNewMatch")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(session, msg.Action, "invalid payload")
	}

	match, player, err := that.gameUseCase.StartMatch(ctx, session.playerID, payload.BestOf)
	if err != nil {
		log.Error("failed to start match", "player_id", session.playerID, "error", err)
		return that.sendError(session, msg.Action, clientError(err, "failed to start match"))
	}

	return that.sendMessage(session, msg.Action, ResponsePayload{Player: player, Match: match})
}

func (that *Server) handlePlay(ctx context.Context, session *session, msg *Message) error {
	log := that.logger.With("method", "handlePlay")

	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(session, msg.Action, "invalid payload")
	}

	move, err := entity.ParseMove(payload.Move)
	if err != nil {
		return that.sendError(session, msg.Action, err.Error())
	}

	match, err := that.gameUseCase.PlayRound(ctx, session.playerID, move)
	if err != nil {
		log.Warn("failed to play round", "player_id", session.playerID, "error", err)
		return that.sendMessage(session, msg.Action, ResponsePayload{
			Match: match,
			Error: clientError(err, "failed to play round"),
		})
	}

	return that.sendMessage(session, msg.Action, ResponsePayload{Match: match, Round: match.LastRound()})
}

func (that *Server) handleState(ctx context.Context, session *session, msg *Message) error {
	match, err := that.gameUseCase.GetMatch(ctx, session.playerID)
	if err != nil {
		return that.sendError(session, msg.Action, clientError(err, "failed to get match"))
	}

	return that.sendMessage(session, msg.Action, ResponsePayload{Match: match})
}

// clientError - exposes domain errors to the client and hides everything else behind fallback.
func clientError(err error, fallback string) string {
	for _, known := range []error{
		apperror.ErrInvalidMove,
		apperror.ErrInvalidBestOf,
		apperror.ErrMatchFinished,
		apperror.ErrNoActiveMatch,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return fallback
}
