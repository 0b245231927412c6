package texasholdem

import (
	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/handanalyzer"
)

// HandEvaluator ranks the seven cards a player holds at showdown
type HandEvaluator interface {
	Evaluate(cards []*deck.Card) (*handanalyzer.Evaluation, error)
	Compare(a, b *handanalyzer.Evaluation) int
}

// Table is a single no-limit Texas Hold'em table
// A table is not safe for concurrent use, the owner must serialize every call
type Table struct {
	logger    logrus.FieldLogger
	options   Options
	scheduler Scheduler
	evaluator HandEvaluator
	newDeck   func() *deck.Deck

	seats  []*Player
	hostID string

	stage          Stage
	handNumber     int
	deck           *deck.Deck
	communityCards deck.Hand
	potDisplay     int
	dealerSeat     int
	activeSeat     int
	currentMaxBet  int
	minRaise       int

	// showdown is true once hands were compared, other players' cards are visible
	showdown   bool
	lastResult *HandResult

	logChan chan []*playable.LogMessage
}

// NewTable returns an empty table waiting for players
func NewTable(logger logrus.FieldLogger, opts Options, scheduler Scheduler) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Table{
		logger:    logger,
		options:   opts,
		scheduler: scheduler,
		evaluator: handanalyzer.NewEvaluator(),
		newDeck: func() *deck.Deck {
			return deck.NewShuffled(rng.Crypto{})
		},
		seats:          make([]*Player, 0, opts.MaxSeats),
		stage:          StageWaiting,
		communityCards: make(deck.Hand, 0, 5),
		dealerSeat:     -1,
		activeSeat:     -1,
		logChan:        make(chan []*playable.LogMessage, 256),
	}, nil
}

// SetShuffler makes every following hand shuffle with gen
func (t *Table) SetShuffler(gen rng.Generator) {
	t.newDeck = func() *deck.Deck {
		return deck.NewShuffled(gen)
	}
}

// LogChan returns the channel game log messages are sent to
func (t *Table) LogChan() <-chan []*playable.LogMessage {
	return t.logChan
}

// Stage returns the current stage
func (t *Table) Stage() Stage {
	return t.stage
}

// HostID returns the ID of the player allowed to start the game
func (t *Table) HostID() string {
	return t.hostID
}

// Options returns the options the table was created with
func (t *Table) Options() Options {
	return t.options
}

// Player returns the seated player with the given ID
func (t *Table) Player(id string) (*Player, bool) {
	if seat := t.seatIndex(id); seat >= 0 {
		return t.seats[seat], true
	}

	return nil, false
}

// Players returns the seated players in seat order
func (t *Table) Players() []*Player {
	players := make([]*Player, len(t.seats))
	copy(players, t.seats)
	return players
}

// Join seats a new player
// Players joining during a hand sit out until the next one
func (t *Table) Join(id, name string) (*Player, error) {
	if t.seatIndex(id) >= 0 {
		return nil, ErrAlreadySeated
	}

	if len(t.seats) >= t.options.MaxSeats {
		return nil, ErrTableFull
	}

	p := newPlayer(id, name, t.options.StartingChips)
	if t.stage != StageWaiting {
		p.IsWaiting = true
		p.Folded = true
	}

	t.seats = append(t.seats, p)
	if t.hostID == "" {
		t.hostID = id
	}

	t.logger.WithFields(logrus.Fields{
		"player": id,
		"seat":   len(t.seats) - 1,
	}).Info("player joined")
	t.sendLogMessages(playable.SimpleLogMessage(id, "%s sat down with ${%d}", name, p.Chips))

	return p, nil
}

// Leave removes a player
// Between hands the seat is freed immediately, otherwise the player is folded and removed before the next hand
func (t *Table) Leave(id string) error {
	seat := t.seatIndex(id)
	if seat < 0 {
		return ErrNotSeated
	}

	p := t.seats[seat]
	t.logger.WithField("player", id).Info("player left")

	if t.stage == StageWaiting {
		t.removeSeat(seat)
		t.sendLogMessages(playable.SimpleLogMessage(id, "%s left the table", p.Name))
		return nil
	}

	p.IsOffline = true
	if !t.stage.InBettingRound() || p.Folded {
		return nil
	}

	p.fold()
	t.sendLogMessages(playable.SimpleLogMessage(id, "%s disconnected and folded", p.Name))

	if seat == t.activeSeat {
		t.afterAction(seat)
		return nil
	}

	if live := t.liveSeats(); len(live) == 1 {
		t.finishGame(live[0])
	}

	return nil
}

// Start starts a hand on behalf of a player, only the host may do this
func (t *Table) Start(id string) error {
	if id != t.hostID {
		return ErrNotHost
	}

	return t.StartNewRound()
}

// removeSeat must only be called between hands
func (t *Table) removeSeat(seat int) {
	if t.stage != StageWaiting && t.stage != StageShowdown {
		panic("cannot remove a seat during a hand")
	}

	id := t.seats[seat].ID
	t.seats = append(t.seats[:seat], t.seats[seat+1:]...)

	if seat <= t.dealerSeat {
		t.dealerSeat--
	}

	if id == t.hostID {
		t.hostID = ""
		if len(t.seats) > 0 {
			t.hostID = t.seats[0].ID
		}
	}
}

func (t *Table) purgeOfflinePlayers() {
	for seat := len(t.seats) - 1; seat >= 0; seat-- {
		if t.seats[seat].IsOffline {
			t.removeSeat(seat)
		}
	}
}

func (t *Table) seatIndex(id string) int {
	for i, p := range t.seats {
		if p.ID == id {
			return i
		}
	}

	return -1
}

// liveSeats returns the seats that have not folded
func (t *Table) liveSeats() []int {
	seats := make([]int, 0, len(t.seats))
	for i, p := range t.seats {
		if !p.Folded {
			seats = append(seats, i)
		}
	}

	return seats
}

// sendLogMessages never blocks, messages are dropped if nobody is reading
func (t *Table) sendLogMessages(msgs ...*playable.LogMessage) {
	select {
	case t.logChan <- msgs:
	default:
		t.logger.WithField("messages", len(msgs)).Warn("log channel is full")
	}
}
