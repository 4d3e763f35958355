package websocket

import (
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait     = 10 * time.Second
	pongWait      = 60 * time.Second
	pingPeriod    = (pongWait * 9) / 10
	maxFrameBytes = 4096
	sendBuffer    = 256
)

// Client is one open chat tab. Several clients may share a UserID.
type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	UserID string
	Send   chan []byte
}

// ServeWs registers the connection under userID and blocks until it closes.
func ServeWs(ctx context.Context, hub *Hub, conn *websocket.Conn, userID string) {
	client := &Client{Hub: hub, Conn: conn, UserID: userID, Send: make(chan []byte, sendBuffer)}
	select {
	case hub.register <- client:
	case <-ctx.Done():
		conn.Close()
		return
	}

	go client.writeLoop()
	client.readLoop(ctx)
}

func (c *Client) readLoop(ctx context.Context) {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-ctx.Done():
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxFrameBytes)
	extend := func(string) error { return c.Conn.SetReadDeadline(time.Now().Add(pongWait)) }
	_ = extend("")
	c.Conn.SetPongHandler(extend)

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("WS_CLIENT", "Connection dropped", map[string]interface{}{
					"user_id": c.UserID,
					"error":   err.Error(),
				})
			}
			return
		}
		c.Hub.handleInbound(ctx, c, data)
	}
}

// writeLoop owns all writes on the connection. A closed Send channel ends it.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		var err error
		select {
		case frame, ok := <-c.Send:
			if !ok {
				_ = c.write(websocket.CloseMessage, nil)
				return
			}
			err = c.write(websocket.TextMessage, frame)
		case <-ticker.C:
			err = c.write(websocket.PingMessage, nil)
		}
		if err != nil {
			return
		}
	}
}

func (c *Client) write(kind int, payload []byte) error {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.Conn.WriteMessage(kind, payload)
}
