package room

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
)

func newTestDealer(t *testing.T, delay time.Duration) *Dealer {
	t.Helper()

	logger, _ := test.NewNullLogger()
	opts := texasholdem.DefaultOptions()
	opts.NextHandDelay = delay

	d, err := NewDealer(logger, "table-1", opts)
	require.NoError(t, err)

	return d
}

// runPending runs everything queued for the run loop without starting it
func runPending(d *Dealer) {
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		default:
			return
		}
	}
}

// addClient connects a client and discards the initial state
func addClient(d *Dealer, name string) *Client {
	c := NewClient(nil, d.ID(), name)
	d.AddClient(c)
	runPending(d)
	responses(c)

	return c
}

func send(d *Dealer, c *Client, act string, data playable.AdditionalData) {
	d.ReceivedMessage(c, &playable.PayloadIn{
		Action:         act,
		AdditionalData: data,
		Context:        act,
	})

	runPending(d)
}

func responses(c *Client) []*playable.Response {
	out := make([]*playable.Response, 0)
	for {
		select {
		case msg := <-c.SendChan():
			out = append(out, msg.(*playable.Response))
		default:
			return out
		}
	}
}

func keys(res []*playable.Response) []string {
	out := make([]string, len(res))
	for i, r := range res {
		out[i] = r.Key
	}

	return out
}

func find(res []*playable.Response, key string) *playable.Response {
	for _, r := range res {
		if r.Key == key {
			return r
		}
	}

	return nil
}

func viewerState(t *testing.T, res []*playable.Response) *texasholdem.ViewerState {
	t.Helper()

	r := find(res, keyUpdateState)
	require.NotNil(t, r, "no state update in %v", keys(res))
	view, ok := r.Data.(*texasholdem.ViewerState)
	require.True(t, ok)

	return view
}
