package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/snapshot"
)

func TestStage_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("waiting", StageWaiting.String())
	a.Equal("preflop", StagePreflop.String())
	a.Equal("showdown", StageShowdown.String())
	a.Equal("", Stage(42).String())

	a.True(StageRiver.InBettingRound())
	a.False(StageShowdown.InBettingRound())
	a.False(StageWaiting.InBettingRound())

	b, err := json.Marshal(StageFlop)
	a.NoError(err)
	a.Equal(`{"id":2,"name":"flop"}`, string(b))
}

func TestTable_StateFor(t *testing.T) {
	a := assert.New(t)

	table, _ := setupTable(t, 1000, 1000, 1000)
	a.NoError(table.StartNewRound())

	view := table.StateFor("p0")
	a.Equal(0, view.Seat)
	a.Equal([]action.Action{action.Call, action.Raise, action.Fold}, view.Actions)
	a.Equal(20, view.CallAmount)
	a.Equal(40, view.MinRaiseTo)
	a.Equal(1000, view.MaxRaiseTo)
	a.Equal(30, view.Table.PokerState.Pot)
	a.Equal(20, view.Table.PokerState.CurrentBet)
	a.True(view.Table.Players[0].IsDealer)
	a.True(view.Table.Players[0].IsHost)

	// only the viewer's cards are visible
	a.Len(view.Table.Players[0].Hand, 2)
	a.Nil(view.Table.Players[1].Hand)
	a.Nil(view.Table.Players[2].Hand)

	// a player who is not on the clock has no actions
	view = table.StateFor("p1")
	a.Empty(view.Actions)
	a.Len(view.Table.Players[1].Hand, 2)

	// spectators see no cards
	view = table.StateFor("someone")
	a.Equal(-1, view.Seat)
	for _, p := range view.Table.Players {
		a.Nil(p.Hand)
	}

	// the full state shows everything
	for _, p := range table.State().Players {
		a.Len(p.Hand, 2)
	}

	assertAct(t, table, 0, action.Call, 0)
	assertAct(t, table, 1, action.Call, 0)
	view = table.StateFor("p2")
	a.Equal([]action.Action{action.Check, action.Raise, action.Fold}, view.Actions)
	a.Equal(0, view.CallAmount)
}

func TestTable_StateFor_shortStack(t *testing.T) {
	a := assert.New(t)

	table, _ := setupTable(t, 1000, 500)
	a.NoError(table.StartNewRound())

	assertAct(t, table, 0, action.Raise, 800)
	view := table.StateFor("p1")
	a.Equal([]action.Action{action.Call, action.Fold}, view.Actions)
	a.Equal(480, view.CallAmount)
	a.Equal(0, view.MinRaiseTo)
}

func TestTable_StateFor_allInRaise(t *testing.T) {
	a := assert.New(t)

	table, _ := setupTable(t, 1000, 1000, 30)
	a.NoError(table.StartNewRound())

	// the big blind cannot make a full raise, the minimum is the stack
	assertAct(t, table, 0, action.Call, 0)
	assertAct(t, table, 1, action.Call, 0)
	view := table.StateFor("p2")
	a.Equal([]action.Action{action.Check, action.Raise, action.Fold}, view.Actions)
	a.Equal(30, view.MinRaiseTo)
	a.Equal(30, view.MaxRaiseTo)
}

func TestTable_StateFor_snapshot(t *testing.T) {
	table, _ := setupTable(t, 1000, 1000, 1000)
	stackDeck(table, []string{"14s,14d", "2c,7d", "13s,13d"}, "2h,5h,9d,10s,3c")
	assert.NoError(t, table.StartNewRound())
	assertAct(t, table, 0, action.Raise, 100)
	assertAct(t, table, 1, action.Fold, 0)
	assertAct(t, table, 2, action.Call, 0)

	snapshot.ValidateSnapshot(t, table.StateFor("p0"), 0)
	snapshot.ValidateSnapshot(t, table.State(), 0)
}
