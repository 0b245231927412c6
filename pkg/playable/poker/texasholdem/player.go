package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/action"
)

// Player is a seated player
type Player struct {
	ID    string
	Name  string
	Chips int
	Hand  deck.Hand

	// Bet is what the player put in on the current street
	Bet int
	// TotalHandBet is what the player put in on completed streets
	TotalHandBet int

	Folded     bool
	HasActed   bool
	LastAction action.Action

	// IsOffline players are folded and removed before the next hand
	IsOffline bool
	// IsWaiting players joined mid-hand and sit out until the next one
	IsWaiting bool
}

func newPlayer(id, name string, chips int) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Chips: chips,
		Hand:  make(deck.Hand, 0, 2),
	}
}

func (p *Player) resetForHand() {
	p.Hand = make(deck.Hand, 0, 2)
	p.Bet = 0
	p.TotalHandBet = 0
	p.Folded = false
	p.HasActed = false
	p.LastAction = ""
}

// pay moves up to amount from the stack into the current bet
// The amount actually paid is returned
func (p *Player) pay(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}

	p.Chips -= amount
	p.Bet += amount

	return amount
}

// canAct returns true if the player can still make a decision this hand
func (p *Player) canAct() bool {
	return !p.Folded && p.Chips > 0
}

// fold marks the player out of the hand, chips already bet stay in the pot
func (p *Player) fold() {
	p.Folded = true
	p.HasActed = true
	p.LastAction = action.Fold
}
