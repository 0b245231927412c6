package texasholdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
)

// StartNewRound deals a new hand
// ErrInsufficientPlayers leaves the table waiting, it is not fatal
func (t *Table) StartNewRound() error {
	if t.stage.InBettingRound() {
		return ErrHandInProgress
	}

	t.scheduler.CancelNextHand()
	t.purgeOfflinePlayers()

	for _, p := range t.seats {
		if p.Chips == 0 {
			p.Chips = t.options.StartingChips
			t.logger.WithField("player", p.ID).Info("topped up broke player")
			t.sendLogMessages(playable.SimpleLogMessage(p.ID, "%s is out of chips and was topped up to ${%d}", p.Name, p.Chips))
		}

		p.IsWaiting = false
	}

	if len(t.seats) < t.options.MinPlayers {
		t.resetHand()
		t.stage = StageWaiting
		return ErrInsufficientPlayers
	}

	t.resetHand()
	t.deck = t.newDeck()
	t.handNumber++

	n := len(t.seats)
	t.dealerSeat = (t.dealerSeat + 1) % n
	sb, bb := t.blindSeats()

	t.stage = StagePreflop
	for i := 0; i < 2; i++ {
		for offset := 1; offset <= n; offset++ {
			p := t.seats[(t.dealerSeat+offset)%n]
			p.Hand.AddCard(t.draw())
		}
	}

	t.postBlind(sb, t.options.SmallBlind, action.SmallBlind)
	t.postBlind(bb, t.options.BigBlind, action.BigBlind)
	t.currentMaxBet = t.options.BigBlind
	t.minRaise = t.options.BigBlind

	t.logger.WithFields(logrus.Fields{
		"hand":   t.handNumber,
		"dealer": t.dealerSeat,
		"seats":  n,
	}).Info("hand started")
	t.sendLogMessages(playable.SimpleLogMessage("", "hand #%d started, %s has the button", t.handNumber, t.seats[t.dealerSeat].Name))

	if t.isRoundOver() {
		t.nextStage()
		return nil
	}

	t.activeSeat = t.nextActiveSeat(bb)
	return nil
}

// resetHand clears everything that belongs to a single hand
func (t *Table) resetHand() {
	for _, p := range t.seats {
		p.resetForHand()
	}

	t.communityCards = make(deck.Hand, 0, 5)
	t.potDisplay = 0
	t.activeSeat = -1
	t.currentMaxBet = 0
	t.minRaise = t.options.BigBlind
	t.showdown = false
}

// blindSeats returns the small and big blind seats
// Heads-up the dealer posts the small blind
func (t *Table) blindSeats() (int, int) {
	n := len(t.seats)
	if n == 2 {
		return t.dealerSeat, (t.dealerSeat + 1) % n
	}

	return (t.dealerSeat + 1) % n, (t.dealerSeat + 2) % n
}

// postBlind posts a blind, capped at the player's stack
func (t *Table) postBlind(seat, amount int, blind action.Action) {
	p := t.seats[seat]
	paid := p.pay(amount)
	p.LastAction = blind

	t.sendLogMessages(playable.SimpleLogMessage(p.ID, "%s %s", p.Name, blind.LogMessage(paid)))
}

// draw deals the next card
// Running out of cards is a bug, not something a player can cause
func (t *Table) draw() *deck.Card {
	card, err := t.deck.Draw()
	if err != nil {
		panic(fmt.Sprintf("could not deal a card: %v", err))
	}

	return card
}

func (t *Table) dealCommunity(n int) {
	for i := 0; i < n; i++ {
		t.communityCards.AddCard(t.draw())
	}
}

// collectBets closes the street
func (t *Table) collectBets() {
	for _, p := range t.seats {
		p.TotalHandBet += p.Bet
		t.potDisplay += p.Bet
		p.Bet = 0
		p.HasActed = false
		p.LastAction = ""
	}

	t.currentMaxBet = 0
	t.minRaise = t.options.BigBlind
}

// nextStage moves to the next street, or settles the hand once no more betting is possible
func (t *Table) nextStage() {
	t.collectBets()
	t.activeSeat = -1

	canAct := 0
	for _, p := range t.seats {
		if p.canAct() {
			canAct++
		}
	}

	if canAct < 2 {
		t.dealCommunity(5 - len(t.communityCards))
		t.settle()
		return
	}

	switch t.stage {
	case StagePreflop:
		t.dealCommunity(3)
		t.stage = StageFlop
	case StageFlop:
		t.dealCommunity(1)
		t.stage = StageTurn
	case StageTurn:
		t.dealCommunity(1)
		t.stage = StageRiver
	case StageRiver:
		t.settle()
		return
	default:
		panic(fmt.Sprintf("cannot advance from stage %s", t.stage))
	}

	msg := playable.SimpleLogMessage("", "dealt the %s", t.stage)
	msg.Cards = t.communityCards.Clone()
	t.sendLogMessages(msg)

	t.activeSeat = t.nextActiveSeat(t.dealerSeat)
}
