package main

import (
	"holdem-server/internal/rng"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// bot picks a random legal action
// Aggression is the chance out of ten that it raises when it can
type bot struct {
	gen        rng.Generator
	aggression int
}

func (b *bot) choose(view *texasholdem.ViewerState) (action.Action, int) {
	canRaise := false
	for _, act := range view.Actions {
		if act == action.Raise {
			canRaise = true
		}
	}

	roll := b.gen.Intn(10)
	switch {
	case roll == 0 && view.CallAmount > 0:
		return action.Fold, 0
	case roll <= b.aggression && canRaise:
		amount := view.MinRaiseTo
		if spread := view.MaxRaiseTo - view.MinRaiseTo; spread > 0 {
			amount += b.gen.Intn(spread/4 + 1)
		}

		return action.Raise, amount
	case view.CallAmount > 0:
		return action.Call, 0
	default:
		return action.Check, 0
	}
}
