package texasholdem

import (
	"errors"
	"time"
)

// Options configures the table
type Options struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
	MaxSeats      int
	MinPlayers    int
	NextHandDelay time.Duration
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		SmallBlind:    10,
		BigBlind:      20,
		MaxSeats:      10,
		MinPlayers:    2,
		NextHandDelay: time.Second * 5,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingChips <= 0 {
		return errors.New("starting chips must be > 0")
	}

	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.MinPlayers < 2 {
		return errors.New("a hand needs at least two players")
	}

	if opts.MaxSeats < opts.MinPlayers {
		return errors.New("max seats must be >= min players")
	}

	if opts.NextHandDelay < 0 {
		return errors.New("next hand delay must be >= 0")
	}

	return nil
}
