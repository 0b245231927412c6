package room

import (
	"holdem-server/pkg/playable"
)

// response keys
const (
	keyUpdateState = "update_state"
	keyWinners     = "winners"
	keySystemMsg   = "system_msg"
	keyLogs        = "logs"
	keyError       = "error"
)

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     keyError,
		Value:   err.Error(),
		Context: ctx,
	}
}

func newSystemMessage(format string) *playable.Response {
	return &playable.Response{
		Key:   keySystemMsg,
		Value: format,
	}
}
