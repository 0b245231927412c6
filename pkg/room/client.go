package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// ID identifies the connection, it doubles as the player ID
	ID string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer

	tableID string
	name    string
}

// NewClient returns a new client object
// name is the display name used if the join message does not carry one
func NewClient(conn *websocket.Conn, tableID, name string) *Client {
	return &Client{
		ID:      uuid.New().String(),
		send:    make(chan interface{}, 256),
		Close:   make(chan string),
		Conn:    conn,
		tableID: tableID,
		name:    name,
	}
}

// Send send a message to the web client
// The message is dropped if the client is not keeping up
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("client send buffer is full")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// TableID returns the table the client is connected to
func (c *Client) TableID() string {
	return c.tableID
}

// String returns a traceable identifier for the client and table
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.ID, c.tableID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
