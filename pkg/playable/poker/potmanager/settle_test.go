package potmanager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributionTotal(contribs []Contribution) int {
	total := 0
	for _, c := range contribs {
		total += c.Amount
	}

	return total
}

func payoutTotal(result *Result) int {
	total := 0
	for _, amount := range result.Payouts {
		total += amount
	}

	for _, amount := range result.Refunds {
		total += amount
	}

	return total
}

func TestSettle_sidePots(t *testing.T) {
	a := assert.New(t)

	// A=0, B=1, C=2 with A > C > B
	contribs := []Contribution{
		{Seat: 0, Amount: 100},
		{Seat: 1, Amount: 50},
		{Seat: 2, Amount: 200},
	}

	result, err := Settle(contribs, [][]int{{0}, {2}, {1}})
	require.NoError(t, err)

	a.Equal(250, result.Payouts[0])
	a.Equal(100, result.Payouts[2])
	a.Equal(0, result.Payouts[1])
	a.Equal(350, result.Total())
	a.Equal(350, payoutTotal(result))
	a.Empty(result.Refunds)

	require.Len(t, result.Pots, 2)
	a.Equal(250, result.Pots[0].Amount)
	a.Equal([]int{0}, result.Pots[0].Winners)
	a.Equal(100, result.Pots[1].Amount)
	a.Equal([]int{2}, result.Pots[1].Winners)
}

func TestSettle_shortStackWinsMainPot(t *testing.T) {
	a := assert.New(t)

	// the short stack has the best hand, the next best takes the side pot
	contribs := []Contribution{
		{Seat: 0, Amount: 50},
		{Seat: 1, Amount: 300},
		{Seat: 2, Amount: 300},
		{Seat: 3, Amount: 20, Folded: true},
	}

	result, err := Settle(contribs, [][]int{{0}, {2}, {1}})
	require.NoError(t, err)

	a.Equal(50+50+50+20, result.Payouts[0])
	a.Equal(500, result.Payouts[2])
	a.Equal(0, result.Payouts[1])
	a.Equal(contributionTotal(contribs), payoutTotal(result))
}

func TestSettle_foldedContributionsStayInPot(t *testing.T) {
	a := assert.New(t)

	contribs := []Contribution{
		{Seat: 0, Amount: 500, Folded: true},
		{Seat: 1, Amount: 100},
		{Seat: 2, Amount: 100},
	}

	result, err := Settle(contribs, [][]int{{2}, {1}})
	require.NoError(t, err)

	a.Equal(300, result.Payouts[2])
	// nobody live matched the folded seat's extra 400
	a.Equal(400, result.Refunds[0])
	a.Equal(contributionTotal(contribs), payoutTotal(result))
}

func TestSettle_splitWithRemainder(t *testing.T) {
	a := assert.New(t)

	contribs := []Contribution{
		{Seat: 4, Amount: 33},
		{Seat: 1, Amount: 33},
		{Seat: 2, Amount: 34, Folded: true},
	}

	result, err := Settle(contribs, [][]int{{4, 1}})
	require.NoError(t, err)

	// 99 chips are split, the odd chip goes to the lower seat
	a.Equal(50, result.Payouts[1])
	a.Equal(49, result.Payouts[4])
	a.Equal(1, result.Refunds[2])
	a.Equal([]int{1, 4}, result.Pots[0].Winners)
	a.Equal([]int{50, 49}, result.Pots[0].Shares)
	a.Equal(100, payoutTotal(result))
}

func TestSettle_tiedAllIns(t *testing.T) {
	a := assert.New(t)

	contribs := []Contribution{
		{Seat: 0, Amount: 100},
		{Seat: 1, Amount: 300},
		{Seat: 2, Amount: 300},
	}

	// seats 0 and 1 tie, seat 2 is last
	result, err := Settle(contribs, [][]int{{0, 1}, {2}})
	require.NoError(t, err)

	a.Equal(150, result.Payouts[0])
	a.Equal(150+400, result.Payouts[1])
	a.Equal(0, result.Payouts[2])
	a.Equal(700, payoutTotal(result))
}

func TestSettle_zeroContributionWinnerIsSkipped(t *testing.T) {
	contribs := []Contribution{
		{Seat: 0, Amount: 0},
		{Seat: 1, Amount: 40},
		{Seat: 2, Amount: 40},
	}

	result, err := Settle(contribs, [][]int{{0}, {1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, 80, result.Payouts[1])
	assert.Len(t, result.Pots, 1)
}

func TestSettle_errors(t *testing.T) {
	a := assert.New(t)

	_, err := Settle([]Contribution{{Seat: 0, Amount: -1}}, nil)
	a.True(errors.Is(err, ErrInvalidContribution))

	_, err = Settle([]Contribution{{Seat: 0, Amount: 1}, {Seat: 0, Amount: 2}}, nil)
	a.True(errors.Is(err, ErrInvalidContribution))

	_, err = Settle([]Contribution{{Seat: 0, Amount: 10}}, [][]int{{1}})
	a.True(errors.Is(err, ErrUnknownWinner))

	_, err = Settle([]Contribution{{Seat: 0, Amount: 10, Folded: true}}, [][]int{{0}})
	a.True(errors.Is(err, ErrUnknownWinner))

	_, err = Settle([]Contribution{{Seat: 0, Amount: 10}}, [][]int{{0}, {0}})
	a.True(errors.Is(err, ErrUnknownWinner))

	_, err = Settle([]Contribution{{Seat: 0, Amount: 10}}, [][]int{{}})
	a.True(errors.Is(err, ErrUnknownWinner))
}

func TestPots_Total(t *testing.T) {
	pots := Pots{{Amount: 10}, {Amount: 25}}
	assert.Equal(t, 35, pots.Total())
}
