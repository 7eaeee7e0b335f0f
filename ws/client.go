package ws

import (
	"context"

	"chefbazaar_backend/internal/logger"

	"github.com/gorilla/websocket"
)

type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan any
	Ctx  context.Context

	Manager *WebSocketManager
}

// readPump drains the connection. Listeners have nothing to say; reads
// exist only to detect close frames and tear the client down.
func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error", "client", c.ID, "error", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Warn("WebSocket write error", "client", c.ID, "error", err)
			break
		}
	}
	c.Conn.Close()
}
