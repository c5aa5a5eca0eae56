package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

type gameUseCase interface {
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	SetPlayerNames(ctx context.Context, gameID, player1, player2 string) (*entity.Game, error)
	PlaceMarker(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type presenceUseCase interface {
	SetOnline(ctx context.Context, id string, online bool) error
}

type Server struct {
	logger *slog.Logger

	game     gameUseCase
	presence presenceUseCase

	upgrader websocket.Upgrader

	hubsMutex sync.Mutex
	hubs      map[string]*hub

	handlers map[string]func(ctx context.Context, c *client, payload *Payload) (*entity.Game, error)
}

func New(logger *slog.Logger, game gameUseCase, presence presenceUseCase) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		game:     game,
		presence: presence,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		hubs: make(map[string]*hub),

		handlers: make(map[string]func(context.Context, *client, *Payload) (*entity.Game, error)),
	}

	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameNames] = server.handleGameNames
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleGameReset

	return server
}

// Register - mounts the per-game socket on the shared router.
func (that *Server) Register(router *httprouter.Router) {
	router.GET("/ws/:id", that.ServeWS)
}

// ServeWS - upgrades the connection and joins the game's hub. ?user= marks that profile online while connected.
func (that *Server) ServeWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("id")
	userID := r.URL.Query().Get("user")

	log := that.logger.With("method", "ServeWS", "gameID", gameID, "userID", userID)

	game, err := that.game.GetGame(r.Context(), gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.Error(w, apperror.ErrGameNotFound.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn, gameID, userID)
	that.join(c)
	that.setOnline(r.Context(), log, userID, true)

	log.Info("WebSocket connection established")

	if msg, msgErr := newMessage(actionGameState, Payload{Game: entity.NewGameView(game)}); msgErr == nil {
		that.reply(c, msg)
	}

	go c.writePump()
	that.readPump(r.Context(), c)

	that.leave(c)
	that.setOnline(context.WithoutCancel(r.Context()), log, userID, false)

	log.Info("WebSocket connection closed")
}

// readPump - processes messages from the client until the connection drops.
func (that *Server) readPump(ctx context.Context, c *client) {
	log := that.logger.With("method", "readPump", "gameID", c.gameID)

	defer c.conn.Close()

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("error reading message", "error", err)
			}
			return
		}

		that.handleMessage(ctx, c, &msg)
	}
}

func (that *Server) handleMessage(ctx context.Context, c *client, msg *Message) {
	log := that.logger.With("method", "handleMessage", "gameID", c.gameID, "action", msg.Action)

	handler, ok := that.handlers[msg.Action]
	if !ok {
		that.sendError(c, msg.Action, "unknown action")
		return
	}

	var payload Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			that.sendError(c, msg.Action, "invalid payload")
			return
		}
	}

	game, err := handler(ctx, c, &payload)
	if err != nil {
		that.sendError(c, msg.Action, errorText(log, err))
		return
	}

	resp, err := newMessage(msg.Action, Payload{Game: entity.NewGameView(game)})
	if err != nil {
		log.Error("failed to marshal game", "error", err)
		return
	}

	that.broadcast(c.gameID, resp)
}

func (that *Server) sendError(c *client, action, text string) {
	msg, err := newMessage(action, Payload{Error: text})
	if err != nil {
		return
	}

	that.reply(c, msg)
}

func (that *Server) setOnline(ctx context.Context, log *slog.Logger, userID string, online bool) {
	if userID == "" {
		return
	}

	if err := that.presence.SetOnline(ctx, userID, online); err != nil {
		log.Warn("failed to update presence", "online", online, "error", err)
	}
}

// errorText - the message shown to the sender. Unexpected errors are logged and hidden.
func errorText(log *slog.Logger, err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return apperror.ErrGameNotFound.Error()
	case errors.Is(err, apperror.ErrInvalidCell):
		return apperror.ErrInvalidCell.Error()
	case apperror.IsNameError(err):
		return err.Error()
	default:
		log.Error("failed to handle message", "error", err)
		return "internal server error"
	}
}
