package texasholdem

import (
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"
)

// Winner is a player who was paid at the end of a hand
type Winner struct {
	Seat        int       `json:"seat"`
	PlayerID    string    `json:"playerId"`
	Name        string    `json:"name"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	Cards       deck.Hand `json:"cards"`
}

// HandResult is the outcome of a hand
type HandResult struct {
	HandNumber int             `json:"handNumber"`
	Winners    []*Winner       `json:"winners"`
	Pots       potmanager.Pots `json:"pots"`
	Showdown   bool            `json:"showdown"`
}

const foldedWinDescription = "Everyone else folded"

// TakeHandResult returns the result of the hand that just ended
// The result is only returned once
func (t *Table) TakeHandResult() *HandResult {
	result := t.lastResult
	t.lastResult = nil
	return result
}

// finishGame pays everything to the last player standing
// Folded players never get their bets back
func (t *Table) finishGame(winner int) {
	total := t.potDisplay
	for _, p := range t.seats {
		total += p.Bet
		p.Bet = 0
		p.TotalHandBet = 0
	}

	p := t.seats[winner]
	p.Chips += total

	t.endHand(&HandResult{
		HandNumber: t.handNumber,
		Winners: []*Winner{{
			Seat:        winner,
			PlayerID:    p.ID,
			Name:        p.Name,
			Amount:      total,
			Description: foldedWinDescription,
		}},
		Pots: potmanager.Pots{{
			Amount:  total,
			Winners: []int{winner},
			Shares:  []int{total},
		}},
	})
}

// settle compares hands and splits the pot, including side pots
func (t *Table) settle() {
	for _, p := range t.seats {
		p.TotalHandBet += p.Bet
		t.potDisplay += p.Bet
		p.Bet = 0
	}

	evals := make(map[int]*handanalyzer.Evaluation)
	wm := potmanager.NewWinManager(func(a, b int) int {
		return t.evaluator.Compare(evals[a], evals[b])
	})

	contribs := make([]potmanager.Contribution, len(t.seats))
	for seat, p := range t.seats {
		contribs[seat] = potmanager.Contribution{
			Seat:   seat,
			Amount: p.TotalHandBet,
			Folded: p.Folded,
		}

		if p.Folded {
			continue
		}

		cards := append(p.Hand.Clone(), t.communityCards...)
		eval, err := t.evaluator.Evaluate(cards)
		if err != nil {
			panic(err)
		}

		evals[seat] = eval
		wm.AddParticipant(seat)
	}

	result, err := potmanager.Settle(contribs, wm.GetSortedTiers())
	if err != nil {
		// give everyone their chips back rather than lose them
		t.logger.WithError(err).Error("could not settle the hand")
		for _, p := range t.seats {
			p.Chips += p.TotalHandBet
		}

		result = &potmanager.Result{}
	}

	for seat, amount := range result.Refunds {
		p := t.seats[seat]
		p.Chips += amount
		t.logger.WithFields(logrus.Fields{
			"player": p.ID,
			"amount": amount,
		}).Warn("refunded uncontested chips")
	}

	winners := make([]*Winner, 0, len(result.Payouts))
	for seat, p := range t.seats {
		amount, ok := result.Payouts[seat]
		if !ok || amount == 0 {
			continue
		}

		p.Chips += amount
		winners = append(winners, &Winner{
			Seat:        seat,
			PlayerID:    p.ID,
			Name:        p.Name,
			Amount:      amount,
			Description: evals[seat].Description,
			Cards:       evals[seat].Cards,
		})
	}

	t.showdown = len(evals) > 1
	t.endHand(&HandResult{
		HandNumber: t.handNumber,
		Winners:    winners,
		Pots:       result.Pots,
		Showdown:   t.showdown,
	})
}

// endHand records the result and schedules the next hand
func (t *Table) endHand(result *HandResult) {
	t.potDisplay = 0
	for _, p := range t.seats {
		p.TotalHandBet = 0
	}

	t.stage = StageShowdown
	t.activeSeat = -1
	t.currentMaxBet = 0
	t.lastResult = result

	msgs := make([]*playable.LogMessage, 0, len(result.Winners))
	for _, w := range result.Winners {
		msg := playable.SimpleLogMessage(w.PlayerID, "%s won ${%d}, everyone else folded", w.Name, w.Amount)
		if result.Showdown {
			msg = playable.SimpleLogMessage(w.PlayerID, "%s won ${%d} with %s", w.Name, w.Amount, w.Description)
		}

		msg.Cards = w.Cards
		msgs = append(msgs, msg)
	}

	t.sendLogMessages(msgs...)
	t.logger.WithFields(logrus.Fields{
		"hand":    t.handNumber,
		"winners": len(result.Winners),
	}).Info("hand finished")

	t.scheduler.ScheduleNextHand(t.options.NextHandDelay)
}
