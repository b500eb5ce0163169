package client

import (
	"fmt"

	"tictacpro/communication"

	"github.com/gorilla/websocket"
)

// Client speaks the session protocol over a websocket connection.
type Client struct {
	conn *websocket.Conn
}

var _ communication.Communicator = (*Client)(nil)

func Dial(url string) (*Client, error) {
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Send(req communication.Request) error {
	return c.conn.WriteJSON(req)
}

// Receive blocks until the next response. Opponent replies arrive here
// without a matching request.
func (c *Client) Receive() (communication.Response, error) {
	var resp communication.Response
	err := c.conn.ReadJSON(&resp)
	return resp, err
}

// Do sends req and waits for the next response.
func (c *Client) Do(req communication.Request) (communication.Response, error) {
	if err := c.Send(req); err != nil {
		return communication.Response{}, err
	}
	return c.Receive()
}

func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
