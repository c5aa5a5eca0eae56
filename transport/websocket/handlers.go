package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

func (that *Server) handleGameState(ctx context.Context, c *client, _ *Payload) (*entity.Game, error) {
	return that.game.GetGame(ctx, c.gameID)
}

func (that *Server) handleGameNames(ctx context.Context, c *client, payload *Payload) (*entity.Game, error) {
	return that.game.SetPlayerNames(ctx, c.gameID, payload.Player1, payload.Player2)
}

func (that *Server) handleGameTurn(ctx context.Context, c *client, payload *Payload) (*entity.Game, error) {
	if payload.Cell == nil {
		return nil, fmt.Errorf("%w: cell is required", apperror.ErrInvalidCell)
	}

	return that.game.PlaceMarker(ctx, c.gameID, *payload.Cell)
}

func (that *Server) handleGameReset(ctx context.Context, c *client, _ *Payload) (*entity.Game, error) {
	return that.game.ResetGame(ctx, c.gameID)
}
