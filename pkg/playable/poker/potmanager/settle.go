package potmanager

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidContribution is returned when a contribution cannot be settled
var ErrInvalidContribution = errors.New("invalid contribution")

// ErrUnknownWinner is returned when a tier names a seat that cannot win
var ErrUnknownWinner = errors.New("unknown winner")

// Contribution is everything a seat put into the pot this hand
type Contribution struct {
	Seat   int
	Amount int
	Folded bool
}

// Result is the outcome of settling a hand
type Result struct {
	Pots Pots
	// Payouts is the amount won per seat
	Payouts map[int]int
	// Refunds holds chips nobody was eligible to win
	Refunds map[int]int
}

// Total returns every chip distributed by the result
func (r *Result) Total() int {
	total := r.Pots.Total()
	for _, amount := range r.Refunds {
		total += amount
	}

	return total
}

// Settle splits the contributions into a main pot and side pots
// tiers lists the non-folded seats strongest first, each tier holding seats with tied hands
// Nothing is returned unless every input is valid
func Settle(contribs []Contribution, tiers [][]int) (*Result, error) {
	if err := validate(contribs, tiers); err != nil {
		return nil, err
	}

	remaining := make(map[int]int, len(contribs))
	seats := make([]int, 0, len(contribs))
	for _, c := range contribs {
		remaining[c.Seat] = c.Amount
		seats = append(seats, c.Seat)
	}
	sort.Ints(seats)

	candidates := make([][]int, len(tiers))
	for i, tier := range tiers {
		candidates[i] = append([]int(nil), tier...)
		sort.Ints(candidates[i])
	}

	result := &Result{
		Pots:    make(Pots, 0, 1),
		Payouts: make(map[int]int),
		Refunds: make(map[int]int),
	}

	for {
		candidates = pruneCandidates(candidates, remaining)
		if len(candidates) == 0 || sumRemaining(remaining) == 0 {
			break
		}

		group := candidates[0]

		limit := remaining[group[0]]
		for _, seat := range group[1:] {
			if remaining[seat] < limit {
				limit = remaining[seat]
			}
		}

		amount := 0
		for _, seat := range seats {
			take := remaining[seat]
			if take > limit {
				take = limit
			}

			remaining[seat] -= take
			amount += take
		}

		result.Pots = append(result.Pots, splitPot(amount, group))
	}

	for _, seat := range seats {
		if remaining[seat] > 0 {
			result.Refunds[seat] = remaining[seat]
		}
	}

	for _, pot := range result.Pots {
		for i, seat := range pot.Winners {
			result.Payouts[seat] += pot.Shares[i]
		}
	}

	return result, nil
}

// splitPot divides amount evenly, the odd chips go to the first seats in the group
func splitPot(amount int, group []int) *Pot {
	share := amount / len(group)
	extra := amount % len(group)

	pot := &Pot{
		Amount:  amount,
		Winners: append([]int(nil), group...),
		Shares:  make([]int, len(group)),
	}

	for i := range group {
		pot.Shares[i] = share
		if i < extra {
			pot.Shares[i]++
		}
	}

	return pot
}

// pruneCandidates drops seats that have nothing left to win with and the tiers they empty
func pruneCandidates(tiers [][]int, remaining map[int]int) [][]int {
	pruned := tiers[:0]
	for _, tier := range tiers {
		live := tier[:0]
		for _, seat := range tier {
			if remaining[seat] > 0 {
				live = append(live, seat)
			}
		}

		if len(live) > 0 {
			pruned = append(pruned, live)
		}
	}

	return pruned
}

func sumRemaining(remaining map[int]int) int {
	total := 0
	for _, amount := range remaining {
		total += amount
	}

	return total
}

func validate(contribs []Contribution, tiers [][]int) error {
	bySeat := make(map[int]Contribution, len(contribs))
	for _, c := range contribs {
		if c.Amount < 0 {
			return fmt.Errorf("%w: seat %d has a negative amount", ErrInvalidContribution, c.Seat)
		}

		if _, ok := bySeat[c.Seat]; ok {
			return fmt.Errorf("%w: seat %d is listed more than once", ErrInvalidContribution, c.Seat)
		}

		bySeat[c.Seat] = c
	}

	seen := make(map[int]bool)
	for _, tier := range tiers {
		if len(tier) == 0 {
			return fmt.Errorf("%w: empty tier", ErrUnknownWinner)
		}

		for _, seat := range tier {
			c, ok := bySeat[seat]
			if !ok {
				return fmt.Errorf("%w: seat %d did not contribute", ErrUnknownWinner, seat)
			}

			if c.Folded {
				return fmt.Errorf("%w: seat %d folded", ErrUnknownWinner, seat)
			}

			if seen[seat] {
				return fmt.Errorf("%w: seat %d is ranked more than once", ErrUnknownWinner, seat)
			}

			seen[seat] = true
		}
	}

	return nil
}
