package room

import (
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// PitBoss is responsible for dispatching players to tables
type PitBoss struct {
	logger     logrus.FieldLogger
	options    texasholdem.Options
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
// Every table it opens uses opts
func NewPitBoss(logger logrus.FieldLogger, opts texasholdem.Options) *PitBoss {
	return &PitBoss{
		logger:     logger,
		options:    opts,
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			p.clientConnected(client)
		case client := <-p.disconnect:
			p.clientDisconnected(client)
		}
	}
}

func (p *PitBoss) clientConnected(client *Client) {
	p.logger.WithField("client", client.String()).Debug("client connected")
	dealer, found := p.dealers[client.TableID()]
	if !found {
		var err error
		dealer, err = NewDealer(p.logger, client.TableID(), p.options)
		if err != nil {
			p.logger.WithError(err).WithField("table", client.TableID()).Error("could not open table")
			client.Send(newErrorResponse("", err))
			return
		}

		dealer.StartShift()
		p.dealers[client.TableID()] = dealer
	}

	dealer.AddClient(client)
}

func (p *PitBoss) clientDisconnected(client *Client) {
	p.logger.WithField("client", client.String()).Debug("client disconnected")
	dealer, found := p.dealers[client.TableID()]
	if !found {
		p.logger.WithField("table", client.TableID()).WithField("type", "exception").Error("table not found")
		return
	}

	if dealer.RemoveClient(client) {
		dealer.EndShift()
		delete(p.dealers, client.TableID())
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
