package livecheck

import (
	"time"

	"github.com/gorilla/websocket"
)

// Client holds one websocket connection to a livecheck server and checks
// documents over it.
type Client struct {
	conn *websocket.Conn
}

// NewClient dials the livecheck server at the given ws:// URL.
func NewClient(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn: conn,
	}, nil
}

// Check submits one CND document and waits for its Result.
func (c *Client) Check(document string) (*Result, error) {
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(document)); err != nil {
		return nil, err
	}
	res := &Result{}
	if err := c.conn.ReadJSON(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Close sends a close frame before closing the connection, with a short
// deadline to avoid blocking.
func (c *Client) Close() error {
	deadline := time.Now().Add(time.Second)
	err := c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		deadline,
	)

	closeErr := c.conn.Close()

	if err != nil {
		return err
	}
	return closeErr
}
