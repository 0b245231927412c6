package action

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Raise Action = "raise"

	// the following are only ever recorded as a player's last action
	AllIn      Action = "allin"
	SmallBlind Action = "smallBlind"
	BigBlind   Action = "bigBlind"
)

// playerActions are the actions a player can request
var playerActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Raise: true,
}

// FromString returns an action for the given string
// Only actions a player can request are returned
func FromString(s string) (Action, error) {
	if _, ok := playerActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case AllIn:
		return "All-in"
	case SmallBlind:
		return "Small blind"
	case BigBlind:
		return "Big blind"
	case "":
		return ""
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	if a == "" {
		return []byte("null"), nil
	}

	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if a player can request the action
func (a Action) IsValid() bool {
	_, ok := playerActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case AllIn:
		return fmt.Sprintf("is all-in for ${%d}", amount)
	case SmallBlind:
		return fmt.Sprintf("posted the small blind of ${%d}", amount)
	case BigBlind:
		return fmt.Sprintf("posted the big blind of ${%d}", amount)
	}

	return ""
}
