package texasholdem

import (
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
)

// Act applies a player's decision
// amount is only used by a raise and is the player's new total bet for the street
// A rejected action wraps ErrIllegalAction and leaves the table untouched
func (t *Table) Act(id string, act action.Action, amount int) error {
	if !t.stage.InBettingRound() {
		return illegalAction("no betting round is open")
	}

	seat := t.seatIndex(id)
	if seat < 0 {
		return illegalAction("player %s is not seated", id)
	}

	if seat != t.activeSeat {
		return illegalAction("it is not your turn")
	}

	p := t.seats[seat]
	logAmount := 0

	switch act {
	case action.Fold:
		p.fold()
	case action.Check:
		if p.Bet != t.currentMaxBet {
			return illegalAction("cannot check, ${%d} is owed", t.currentMaxBet-p.Bet)
		}

		p.HasActed = true
		p.LastAction = action.Check
	case action.Call:
		// nothing owed is a call for zero, the same as a check
		logAmount = p.pay(t.currentMaxBet - p.Bet)
		p.HasActed = true
		p.LastAction = action.Call
		if p.Chips == 0 {
			p.LastAction = action.AllIn
			logAmount = p.Bet
		}
	case action.Raise:
		if err := t.raise(p, amount); err != nil {
			return err
		}

		logAmount = p.Bet
	default:
		return illegalAction("unknown action %q", act)
	}

	t.logger.WithFields(logrus.Fields{
		"player": p.ID,
		"action": p.LastAction,
		"bet":    p.Bet,
	}).Debug("player acted")
	t.sendLogMessages(playable.SimpleLogMessage(p.ID, "%s %s", p.Name, p.LastAction.LogMessage(logAmount)))

	t.afterAction(seat)
	return nil
}

// raise validates and applies a raise to amount
// An amount at or above the player's stack is an all-in
func (t *Table) raise(p *Player, amount int) error {
	stack := p.Chips + p.Bet
	if amount > stack {
		amount = stack
	}

	allIn := amount == stack

	if amount <= t.currentMaxBet {
		return illegalAction("a raise must be more than the current bet of ${%d}", t.currentMaxBet)
	}

	if amount < t.currentMaxBet+t.minRaise && !allIn {
		return illegalAction("the minimum raise is to ${%d}", t.currentMaxBet+t.minRaise)
	}

	previous := t.currentMaxBet
	p.pay(amount - p.Bet)
	t.minRaise = amount - previous
	t.currentMaxBet = amount

	for _, other := range t.seats {
		if other != p && other.canAct() {
			other.HasActed = false
		}
	}

	p.HasActed = true
	p.LastAction = action.Raise
	if allIn {
		p.LastAction = action.AllIn
	}

	return nil
}

// afterAction decides what happens once seat has acted
func (t *Table) afterAction(seat int) {
	if live := t.liveSeats(); len(live) == 1 {
		t.finishGame(live[0])
		return
	}

	if t.isRoundOver() {
		t.nextStage()
		return
	}

	t.activeSeat = t.nextActiveSeat(seat)
}

// isRoundOver returns true when every player still in the hand is all-in or has matched the bet
func (t *Table) isRoundOver() bool {
	for _, p := range t.seats {
		if p.Folded || p.Chips == 0 {
			continue
		}

		if !p.HasActed || p.Bet != t.currentMaxBet {
			return false
		}
	}

	return true
}

// nextActiveSeat returns the next seat after seat that can act, or -1
// seat itself is the last one considered
func (t *Table) nextActiveSeat(seat int) int {
	n := len(t.seats)
	for offset := 1; offset <= n; offset++ {
		i := (seat + offset) % n
		if t.seats[i].canAct() {
			return i
		}
	}

	return -1
}
