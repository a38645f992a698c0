package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the fields a client may send; each action reads its own.
type RequestPayload struct {
	Player *entity.Player `json:"player,omitempty"`
	BestOf int            `json:"best_of,omitempty"`
	Move   string         `json:"move,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Match  *entity.Match  `json:"match,omitempty"`
	Round  *entity.Round  `json:"round,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

func (that *Server) sendMessage(session *session, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = session.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(session *session, action, message string) error {
	return that.sendMessage(session, action, ResponsePayload{Error: message})
}
