package websocket

import (
	"github.com/gorilla/websocket"
)

const sendBufferSize = 8

type client struct {
	conn   *websocket.Conn
	send   chan *Message
	gameID string
	userID string
}

func newClient(conn *websocket.Conn, gameID, userID string) *client {
	return &client{
		conn:   conn,
		send:   make(chan *Message, sendBufferSize),
		gameID: gameID,
		userID: userID,
	}
}

// writePump - the only writer of the connection.
func (that *client) writePump() {
	defer that.conn.Close()

	for msg := range that.send {
		if err := that.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// hub - the connections watching one game.
type hub struct {
	gameID  string
	clients map[*client]struct{}
}

func newHub(gameID string) *hub {
	return &hub{
		gameID:  gameID,
		clients: make(map[*client]struct{}),
	}
}

func (that *Server) join(c *client) {
	that.hubsMutex.Lock()
	defer that.hubsMutex.Unlock()

	h, ok := that.hubs[c.gameID]
	if !ok {
		h = newHub(c.gameID)
		that.hubs[c.gameID] = h
	}
	h.clients[c] = struct{}{}
}

// leave - closes the client's send channel and drops the hub once it is empty.
func (that *Server) leave(c *client) {
	that.hubsMutex.Lock()
	defer that.hubsMutex.Unlock()

	h, ok := that.hubs[c.gameID]
	if !ok {
		return
	}

	if _, ok = h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}

	if len(h.clients) == 0 {
		delete(that.hubs, c.gameID)
	}
}

// broadcast - queues msg for every connection of the game. Connections whose buffer is full miss it.
func (that *Server) broadcast(gameID string, msg *Message) {
	that.hubsMutex.Lock()
	defer that.hubsMutex.Unlock()

	h, ok := that.hubs[gameID]
	if !ok {
		return
	}

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			that.logger.Warn("dropping message for slow client", "gameID", gameID, "userID", c.userID)
		}
	}
}

// reply - queues msg for a single connection.
func (that *Server) reply(c *client, msg *Message) {
	that.hubsMutex.Lock()
	defer that.hubsMutex.Unlock()

	h, ok := that.hubs[c.gameID]
	if !ok {
		return
	}
	if _, ok = h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		that.logger.Warn("dropping reply for slow client", "gameID", c.gameID, "userID", c.userID)
	}
}

func (that *Server) connections(gameID string) int {
	that.hubsMutex.Lock()
	defer that.hubsMutex.Unlock()

	h, ok := that.hubs[gameID]
	if !ok {
		return 0
	}
	return len(h.clients)
}
