package room

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"holdem-server/internal/util"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// Dealer owns one table and serializes every event that touches it
type Dealer struct {
	id      string
	logger  logrus.FieldLogger
	table   *texasholdem.Table
	clients map[*Client]bool
	lock    sync.RWMutex

	nextHand    *nextHandTimer
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, id string, opts texasholdem.Options) (*Dealer, error) {
	d := &Dealer{
		id:            id,
		logger:        logger.WithFields(logrus.Fields{"table": id}),
		clients:       make(map[*Client]bool),
		logMessages:   make([]*playable.LogMessage, 0, logMessageLimit),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	d.nextHand = newNextHandTimer(func(generation uint64) {
		select {
		case d.execInRunLoop <- func() { d.handleNextHand(generation) }:
		case <-d.close:
		}
	})

	table, err := texasholdem.NewTable(d.logger, opts, d.nextHand)
	if err != nil {
		return nil, err
	}

	d.table = table
	return d, nil
}

// ID returns the table ID
func (d *Dealer) ID() string {
	return d.id
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.nextHand.CancelNextHand()
			d.logger.Debug("ending dealer run loop")
			return
		}
	}
}

// AddClient adds a client to the dealer
// The client is a spectator until it sends a join message
func (d *Dealer) AddClient(c *Client) {
	d.lock.Lock()
	d.clients[c] = true
	c.dealer = d
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		d.sendInitialState(c)
	}
}

// RemoveClient removes a client from the dealer
// Returns true if this was the last client
func (d *Dealer) RemoveClient(c *Client) bool {
	d.lock.Lock()
	delete(d.clients, c)
	lastClient := len(d.clients) == 0
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		d.handleDisconnect(c)
	}

	return lastClient
}

// EndShift stops the run loop
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.execInRunLoop <- func() {
		d.handleMessage(c, msg)
	}
}

// handleMessage dispatches one client message
// Note: this must only be called from within the run loop
func (d *Dealer) handleMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "join":
		d.handleJoin(c, msg)
	case "start_game":
		d.handleStart(c, msg)
	default:
		act, err := action.FromString(msg.Action)
		if err != nil {
			d.logger.WithField("client", c.String()).WithError(err).Warn("unknown message")
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		amount, _ := msg.AdditionalData.GetInt("amount")
		d.handleAction(c, act, amount)
	}
}

func (d *Dealer) handleJoin(c *Client, msg *playable.PayloadIn) {
	name, _ := msg.AdditionalData.GetString("name")
	if name == "" {
		name = c.name
	}

	if name == "" {
		name = util.GetRandomName()
	}

	if _, err := d.table.Join(c.ID, name); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(playable.OK(msg.Context))
	d.broadcastState()
}

func (d *Dealer) handleStart(c *Client, msg *playable.PayloadIn) {
	err := d.table.Start(c.ID)
	if errors.Is(err, texasholdem.ErrInsufficientPlayers) {
		d.broadcastInsufficientPlayers()
		d.broadcastState()
		return
	}

	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(playable.OK(msg.Context))
	d.broadcast(newSystemMessage("Game started! Cards dealt!"))
	d.broadcastState()
}

// handleAction applies a betting action
// Illegal actions leave the table untouched, they are logged and dropped
func (d *Dealer) handleAction(c *Client, act action.Action, amount int) {
	if err := d.table.Act(c.ID, act, amount); err != nil {
		d.logger.WithFields(logrus.Fields{
			"client": c.String(),
			"action": act,
			"amount": amount,
		}).WithError(err).Debug("ignored action")
		return
	}

	d.broadcastState()
}

func (d *Dealer) handleDisconnect(c *Client) {
	if err := d.table.Leave(c.ID); err != nil {
		// spectators were never seated
		return
	}

	d.broadcastState()
}

func (d *Dealer) handleNextHand(generation uint64) {
	if !d.nextHand.claim(generation) {
		d.logger.WithField("generation", generation).Debug("dropped stale next hand timer")
		return
	}

	d.startNextHand()
}

func (d *Dealer) startNextHand() {
	err := d.table.StartNewRound()
	switch {
	case err == nil:
		d.broadcast(newSystemMessage("New hand started! Cards dealt!"))
	case errors.Is(err, texasholdem.ErrInsufficientPlayers):
		d.broadcastInsufficientPlayers()
	default:
		d.logger.WithError(err).Error("could not start the next hand")
	}

	d.broadcastState()
}

func (d *Dealer) broadcastInsufficientPlayers() {
	d.broadcast(newSystemMessage(fmt.Sprintf("Waiting for players, at least %d are needed to deal", d.table.Options().MinPlayers)))
}

func (d *Dealer) sendInitialState(c *Client) {
	c.Send(&playable.Response{
		Key:  keyUpdateState,
		Data: d.table.StateFor(c.ID),
	})

	if len(d.logMessages) > 0 {
		c.Send(&playable.Response{
			Key:  keyLogs,
			Data: d.logMessages,
		})
	}
}

// broadcastState sends every client its own view of the table
// If a hand was just settled, the winners follow the state
func (d *Dealer) broadcastState() {
	d.flushLogs()

	for _, c := range d.Clients() {
		c.Send(&playable.Response{
			Key:  keyUpdateState,
			Data: d.table.StateFor(c.ID),
		})
	}

	if result := d.table.TakeHandResult(); result != nil {
		d.broadcast(&playable.Response{
			Key:  keyWinners,
			Data: result,
		})
	}
}

func (d *Dealer) broadcast(msg interface{}) {
	for _, c := range d.Clients() {
		c.Send(msg)
	}
}
