package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

const (
	actionGameState = "game:state"
	actionGameNames = "game:names"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
)

// Message - a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player1 string `json:"player1,omitempty"`
	Player2 string `json:"player2,omitempty"`
	Cell    *int   `json:"cell,omitempty"`

	Game  *entity.GameView `json:"game,omitempty"`
	Error string           `json:"error,omitempty"`
}

func newMessage(action string, payload Payload) (*Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{
		Action:  action,
		Payload: raw,
	}, nil
}
