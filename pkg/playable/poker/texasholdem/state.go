package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker"
	"holdem-server/pkg/playable/poker/action"
)

// PlayerState is a player as seen by a viewer
type PlayerState struct {
	Seat         int           `json:"seat"`
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Chips        int           `json:"chips"`
	Hand         deck.Hand     `json:"hand"`
	Bet          int           `json:"bet"`
	TotalHandBet int           `json:"totalHandBet"`
	Folded       bool          `json:"folded"`
	HasActed     bool          `json:"hasActed"`
	LastAction   action.Action `json:"lastAction"`
	IsOffline    bool          `json:"isOffline"`
	IsWaiting    bool          `json:"isWaiting"`
	IsDealer     bool          `json:"isDealer"`
	IsHost       bool          `json:"isHost"`
}

// TableState is a snapshot of the table
type TableState struct {
	Stage      Stage          `json:"stage"`
	HandNumber int            `json:"handNumber"`
	Players    []*PlayerState `json:"players"`
	DealerSeat int            `json:"dealerSeat"`
	ActiveSeat int            `json:"activeSeat"`
	PokerState *poker.State   `json:"pokerState"`
}

// ViewerState is the table as seen by one player
type ViewerState struct {
	Table *TableState `json:"table"`
	// Seat is -1 for spectators
	Seat       int             `json:"seat"`
	Actions    []action.Action `json:"actions"`
	CallAmount int             `json:"callAmount"`
	MinRaiseTo int             `json:"minRaiseTo"`
	MaxRaiseTo int             `json:"maxRaiseTo"`
}

// State returns the table with every card face up
func (t *Table) State() *TableState {
	return t.tableState(func(int) bool { return true })
}

// StateFor returns the table as viewerID is allowed to see it
// Other players' cards are only shown after a showdown, and never for folded players
func (t *Table) StateFor(viewerID string) *ViewerState {
	seat := t.seatIndex(viewerID)
	state := t.tableState(func(i int) bool {
		return i == seat || (t.showdown && !t.seats[i].Folded)
	})

	view := &ViewerState{
		Table: state,
		Seat:  seat,
	}

	if seat < 0 || seat != t.activeSeat || !t.stage.InBettingRound() {
		return view
	}

	p := t.seats[seat]
	stack := p.Chips + p.Bet

	if p.Bet == t.currentMaxBet {
		view.Actions = append(view.Actions, action.Check)
	} else {
		view.Actions = append(view.Actions, action.Call)
		view.CallAmount = t.currentMaxBet - p.Bet
		if view.CallAmount > p.Chips {
			view.CallAmount = p.Chips
		}
	}

	if stack > t.currentMaxBet {
		view.Actions = append(view.Actions, action.Raise)
		view.MinRaiseTo = t.currentMaxBet + t.minRaise
		if view.MinRaiseTo > stack {
			view.MinRaiseTo = stack
		}

		view.MaxRaiseTo = stack
	}

	view.Actions = append(view.Actions, action.Fold)
	return view
}

func (t *Table) tableState(showCards func(seat int) bool) *TableState {
	players := make([]*PlayerState, len(t.seats))
	pot := t.potDisplay
	for i, p := range t.seats {
		var hand deck.Hand
		if showCards(i) {
			hand = p.Hand.Clone()
		}

		pot += p.Bet
		players[i] = &PlayerState{
			Seat:         i,
			ID:           p.ID,
			Name:         p.Name,
			Chips:        p.Chips,
			Hand:         hand,
			Bet:          p.Bet,
			TotalHandBet: p.TotalHandBet,
			Folded:       p.Folded,
			HasActed:     p.HasActed,
			LastAction:   p.LastAction,
			IsOffline:    p.IsOffline,
			IsWaiting:    p.IsWaiting,
			IsDealer:     i == t.dealerSeat,
			IsHost:       p.ID == t.hostID,
		}
	}

	return &TableState{
		Stage:      t.stage,
		HandNumber: t.handNumber,
		Players:    players,
		DealerSeat: t.dealerSeat,
		ActiveSeat: t.activeSeat,
		PokerState: &poker.State{
			SmallBlind: t.options.SmallBlind,
			BigBlind:   t.options.BigBlind,
			CurrentBet: t.currentMaxBet,
			MinRaise:   t.minRaise,
			Pot:        pot,
			Community:  t.communityCards.Clone(),
		},
	}
}
