package handanalyzer

import (
	"fmt"
	"math"
	"sort"

	"holdem-server/pkg/deck"
)

// HandAnalyzer names the hand a set of cards makes
// It only categorizes, ranking between hands is done by the Evaluator
type HandAnalyzer struct {
	size          int
	cards         deck.Hand
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	straightFlush int
	straight      int

	hand Hand
}

// New will return a new HandAnalyzer instance
func New(size int, cards []*deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		size:  size,
		cards: sortedCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// analyzeHand will loop through a players hand and calculate the various combinations
func (h *HandAnalyzer) analyzeHand() {
	suitCounts := make(map[deck.Suit][]int)

	sfTracker := map[deck.Suit]*straightTracker{
		deck.Clubs:    {},
		deck.Diamonds: {},
		deck.Hearts:   {},
		deck.Spades:   {},
	}

	sTracker := straightTracker{}

	prevRank := math.MaxInt8
	numOfRank := 0

	nCards := len(h.cards)
	for i, card := range h.cards {
		if h.straightFlush == 0 {
			h.checkStraight(card, sfTracker[card.Suit], deck.HighAce, &h.straightFlush)
		}

		if h.straight == 0 {
			h.checkStraight(card, &sTracker, deck.HighAce, &h.straight)
		}

		if h.flush == nil {
			h.checkFlush(card, suitCounts)
		}

		isLastCard := i+1 == nCards
		h.checkPairs(card, &prevRank, &numOfRank, isLastCard)
	}

	// aces sort first, so replaying them as low cards completes a wheel
	for _, card := range h.cards {
		if card.Rank != deck.Ace {
			break
		}

		if h.straightFlush == 0 {
			h.checkStraight(card, sfTracker[card.Suit], deck.LowAce, &h.straightFlush)
		}

		if h.straight == 0 {
			h.checkStraight(card, &sTracker, deck.LowAce, &h.straight)
		}
	}
}

func (h *HandAnalyzer) checkFlush(card *deck.Card, suitCounts map[deck.Suit][]int) {
	ranks := append(suitCounts[card.Suit], card.Rank)
	suitCounts[card.Suit] = ranks

	if len(ranks) >= h.size {
		h.flush = ranks
	}
}

func (h *HandAnalyzer) checkPairs(card *deck.Card, prevRank, numOfRank *int, isLastCard bool) {
	if card.Rank == *prevRank {
		*numOfRank++
	}

	// if the card is no longer the same rank, or we're at the end
	// record the group that just closed
	if card.Rank != *prevRank || isLastCard {
		switch *numOfRank {
		case 4:
			h.quads = append(h.quads, *prevRank)
		case 3:
			h.trips = append(h.trips, *prevRank)
		case 2:
			h.pairs = append(h.pairs, *prevRank)
		}

		*numOfRank = 1
	}

	*prevRank = card.Rank
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.hand = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.straightFlush == deck.Ace
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	return h.straightFlush, h.straightFlush > 0
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the best full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]

	pair, ok := h.GetPair()
	if !ok {
		if len(h.trips) == 1 {
			return nil, false
		}

		pair = h.trips[1]
	} else if len(h.trips) >= 2 && h.trips[1] > pair {
		pair = h.trips[1]
	}

	return []int{trips, pair}, true
}

// GetFlush will return the best possible flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	return h.flush, h.flush != nil
}

// GetStraight will return the best straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	return h.straight, h.straight > 0
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() (int, bool) {
	if len(h.cards) == 0 {
		return 0, false
	}

	return h.cards[0].Rank, true
}

// Describe returns a human readable description of the hand, i.e., "Full house, Kings over Fives"
func (h *HandAnalyzer) Describe() string {
	switch h.hand {
	case RoyalFlush:
		return h.hand.String()
	case StraightFlush:
		return fmt.Sprintf("%s, %s high", h.hand, rankName(h.straightFlush))
	case FourOfAKind:
		return fmt.Sprintf("%s, %s", h.hand, rankPlural(h.quads[0]))
	case FullHouse:
		fh, _ := h.GetFullHouse()
		return fmt.Sprintf("%s, %s over %s", h.hand, rankPlural(fh[0]), rankPlural(fh[1]))
	case Flush:
		return fmt.Sprintf("%s, %s high", h.hand, rankName(h.flush[0]))
	case Straight:
		return fmt.Sprintf("%s, %s high", h.hand, rankName(h.straight))
	case ThreeOfAKind:
		return fmt.Sprintf("%s, %s", h.hand, rankPlural(h.trips[0]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", h.hand, rankPlural(h.pairs[0]), rankPlural(h.pairs[1]))
	case OnePair:
		return fmt.Sprintf("%s of %s", h.hand, rankPlural(h.pairs[0]))
	}

	high, ok := h.GetHighCard()
	if !ok {
		return h.hand.String()
	}

	return fmt.Sprintf("%s, %s", h.hand, rankName(high))
}

var rankNames = map[int]string{
	2:          "Two",
	3:          "Three",
	4:          "Four",
	5:          "Five",
	6:          "Six",
	7:          "Seven",
	8:          "Eight",
	9:          "Nine",
	10:         "Ten",
	deck.Jack:  "Jack",
	deck.Queen: "Queen",
	deck.King:  "King",
	deck.Ace:   "Ace",
}

func rankName(rank int) string {
	if rank == deck.LowAce {
		rank = deck.Ace
	}

	return rankNames[rank]
}

func rankPlural(rank int) string {
	if rank == 6 {
		return "Sixes"
	}

	return rankName(rank) + "s"
}
