package texasholdem

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is returned when an action is out of turn or does not fit the betting
var ErrIllegalAction = errors.New("illegal action")

// ErrInsufficientPlayers is returned when a hand cannot start for lack of players
var ErrInsufficientPlayers = errors.New("not enough players to start a hand")

// ErrTableFull is returned when every seat is taken
var ErrTableFull = errors.New("the table is full")

// ErrAlreadySeated is returned when a player joins twice
var ErrAlreadySeated = errors.New("player is already seated")

// ErrNotSeated is returned when a player is not at the table
var ErrNotSeated = errors.New("player is not seated")

// ErrNotHost is returned when anyone but the host tries to start a hand
var ErrNotHost = errors.New("only the host can start the game")

// ErrHandInProgress is returned when a hand cannot start because one is being played
var ErrHandInProgress = errors.New("a hand is already in progress")

func illegalAction(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrIllegalAction, fmt.Sprintf(format, a...))
}
