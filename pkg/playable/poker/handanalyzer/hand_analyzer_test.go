package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/deck"
)

func analyze(cards string) *HandAnalyzer {
	return New(5, deck.CardsFromString(cards))
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	tests := []struct {
		cards       string
		hand        Hand
		description string
	}{
		{"14s,13s,12s,11s,10s", RoyalFlush, "Royal flush"},
		{"9h,8h,7h,6h,5h", StraightFlush, "Straight flush, Nine high"},
		{"14d,2d,3d,4d,5d", StraightFlush, "Straight flush, Five high"},
		{"12c,12d,12h,12s,3c", FourOfAKind, "Four of a kind, Queens"},
		{"13c,13d,13h,5s,5c", FullHouse, "Full house, Kings over Fives"},
		{"6c,6d,6h,14s,14c", FullHouse, "Full house, Sixes over Aces"},
		{"14c,9c,7c,4c,2c", Flush, "Flush, Ace high"},
		{"10c,9d,8h,7s,6c", Straight, "Straight, Ten high"},
		{"14c,2d,3h,4s,5c", Straight, "Straight, Five high"},
		{"7c,7d,7h,13s,2c", ThreeOfAKind, "Three of a kind, Sevens"},
		{"11c,11d,4h,4s,2c", TwoPair, "Two pair, Jacks and Fours"},
		{"8c,8d,4h,3s,2c", OnePair, "Pair of Eights"},
		{"14c,12d,9h,4s,2c", HighCard, "High card, Ace"},
	}

	for _, test := range tests {
		h := analyze(test.cards)
		assert.Equal(t, test.hand, h.GetHand(), test.cards)
		assert.Equal(t, test.description, h.Describe(), test.cards)
	}
}

func TestHandAnalyzer_doesNotMutateInput(t *testing.T) {
	cards := deck.CardsFromString("2c,14d,7h,9s,3c")
	_ = New(5, cards)
	assert.Equal(t, "2c,14d,7h,9s,3c", deck.CardsToString(cards))
}

func TestHand_String(t *testing.T) {
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "Pair", OnePair.String())
	assert.Panics(t, func() {
		_ = Hand(99).String()
	})
}
