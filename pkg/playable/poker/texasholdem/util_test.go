package texasholdem

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/action"
)

type fakeScheduler struct {
	scheduled []time.Duration
	cancels   int
	pending   bool
}

func (f *fakeScheduler) ScheduleNextHand(delay time.Duration) {
	f.scheduled = append(f.scheduled, delay)
	f.pending = true
}

func (f *fakeScheduler) CancelNextHand() {
	f.cancels++
	f.pending = false
}

func playerID(seat int) string {
	return fmt.Sprintf("p%d", seat)
}

// setupTable seats one player per stack, IDs are p0, p1, ...
func setupTable(t *testing.T, stacks ...int) (*Table, *fakeScheduler) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	scheduler := &fakeScheduler{}
	table, err := NewTable(logger, DefaultOptions(), scheduler)
	require.NoError(t, err)

	for i, stack := range stacks {
		p, err := table.Join(playerID(i), fmt.Sprintf("Player %d", i))
		require.NoError(t, err)
		p.Chips = stack
	}

	return table, scheduler
}

// stackDeck makes the next hand deal holes[seat] to each seat and then board
// Cards not named are appended in their unshuffled order
func stackDeck(table *Table, holes []string, board string) {
	n := len(holes)
	dealer := (table.dealerSeat + 1) % n

	cards := make([]*deck.Card, 0, 52)
	for round := 0; round < 2; round++ {
		for offset := 1; offset <= n; offset++ {
			seat := (dealer + offset) % n
			cards = append(cards, deck.CardsFromString(holes[seat])[round])
		}
	}

	cards = append(cards, deck.CardsFromString(board)...)

	used := deck.Hand(cards)
	for _, card := range deck.New().Cards {
		if !used.HasCard(card) {
			cards = append(cards, card)
		}
	}

	table.newDeck = func() *deck.Deck {
		d := &deck.Deck{Cards: make([]*deck.Card, len(cards))}
		copy(d.Cards, cards)
		return d
	}
}

// chipsInPlay is every chip on the table: stacks, open bets and completed streets
func chipsInPlay(table *Table) int {
	total := table.potDisplay
	for _, p := range table.seats {
		total += p.Chips + p.Bet
	}

	return total
}

func drainLogs(table *Table) []string {
	msgs := make([]string, 0)
	for {
		select {
		case lms := <-table.LogChan():
			for _, lm := range lms {
				msgs = append(msgs, lm.Message)
			}
		default:
			return msgs
		}
	}
}

func assertAct(t *testing.T, table *Table, seat int, act action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, table.Act(playerID(seat), act, amount), msgAndArgs...)
}

func assertIllegal(t *testing.T, table *Table, seat int, act action.Action, amount int, contains string) {
	t.Helper()

	before := table.State()
	err := table.Act(playerID(seat), act, amount)
	assert.ErrorIs(t, err, ErrIllegalAction)
	if err != nil {
		assert.True(t, strings.Contains(err.Error(), contains), err.Error())
	}

	assert.Equal(t, before, table.State(), "a rejected action must not change the table")
}
