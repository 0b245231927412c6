package handanalyzer

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
	"holdem-server/pkg/deck"
)

// ErrInvalidCards is returned when the evaluator is given anything but seven distinct cards
var ErrInvalidCards = errors.New("invalid cards for evaluation")

// handSize is the number of cards that count towards a hand
const handSize = 5

// Evaluation is the result of evaluating seven cards
type Evaluation struct {
	Hand        Hand      `json:"hand"`
	Description string    `json:"description"`
	Cards       deck.Hand `json:"cards"`

	score int16
}

// Evaluator ranks seven-card hold'em hands
type Evaluator struct{}

// NewEvaluator returns a new evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores the hole cards plus the board
// The five cards that make the hand are returned in Cards
func (e *Evaluator) Evaluate(cards []*deck.Card) (*Evaluation, error) {
	if len(cards) != 7 {
		return nil, fmt.Errorf("%w: expected 7 cards, got %d", ErrInvalidCards, len(cards))
	}

	var seven [7]poker.Card
	for i, card := range cards {
		for j := 0; j < i; j++ {
			if cards[j].Equal(card) {
				return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidCards, card)
			}
		}

		c, err := toPokerCard(card)
		if err != nil {
			return nil, err
		}

		seven[i] = c
	}

	score := poker.Eval7(&seven)
	best := bestFive(cards, seven, score)

	analyzer := New(handSize, best)

	return &Evaluation{
		Hand:        analyzer.GetHand(),
		Description: analyzer.Describe(),
		Cards:       best,
		score:       score,
	}, nil
}

// bestFive finds the five cards that produce the seven-card score
func bestFive(cards []*deck.Card, seven [7]poker.Card, score int16) deck.Hand {
	var best deck.Hand
	bestScore := int16(-1)

	idx := [handSize]int{0, 1, 2, 3, 4}
	for {
		var five [handSize]poker.Card
		for i, j := range idx {
			five[i] = seven[j]
		}

		if s := poker.Eval5(&five); best == nil || s > bestScore {
			bestScore = s
			best = make(deck.Hand, handSize)
			for i, j := range idx {
				best[i] = cards[j]
			}

			if s == score {
				return best
			}
		}

		if !nextCombination(&idx, len(cards)) {
			return best
		}
	}
}

// nextCombination advances idx to the next k-subset of n in lexicographic order
func nextCombination(idx *[handSize]int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}

	if i < 0 {
		return false
	}

	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}

	return true
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a tie
func (e *Evaluator) Compare(a, b *Evaluation) int {
	switch {
	case a.score > b.score:
		return 1
	case a.score < b.score:
		return -1
	}

	return 0
}

// BestGroup returns the indexes of the strongest evaluations
func (e *Evaluator) BestGroup(evals []*Evaluation) []int {
	var group []int
	for i, eval := range evals {
		if len(group) == 0 {
			group = []int{i}
			continue
		}

		switch e.Compare(eval, evals[group[0]]) {
		case 1:
			group = []int{i}
		case 0:
			group = append(group, i)
		}
	}

	return group
}

var suits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

func toPokerCard(card *deck.Card) (poker.Card, error) {
	var zero poker.Card

	suit, ok := suits[card.Suit]
	if !ok {
		return zero, fmt.Errorf("%w: unknown suit %q", ErrInvalidCards, card.Suit)
	}

	c, err := poker.MakeCard(suit, poker.Rank(card.AceLowRank()))
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidCards, err)
	}

	return c, nil
}
