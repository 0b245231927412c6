package room

import (
	"holdem-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds a lot message
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// flushLogs forwards everything the table logged to the clients
// Note: this must only be called from within the run loop
func (d *Dealer) flushLogs() {
	for {
		select {
		case msgs := <-d.table.LogChan():
			d.addLogMessages(msgs)
			d.broadcast(&playable.Response{
				Key:  keyLogs,
				Data: msgs,
			})
		default:
			return
		}
	}
}
