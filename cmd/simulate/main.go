package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/config"
	"holdem-server/internal/rng"
	"holdem-server/pkg/playable/poker/texasholdem"
)

var (
	hands      = flag.Int("hands", 100, "the number of hands to play")
	players    = flag.Int("players", 4, "the number of bots at the table")
	seed       = flag.Int64("seed", time.Now().UnixNano(), "the random seed")
	aggression = flag.Int("aggression", 2, "how often bots raise, out of ten")
	verbose    = flag.Bool("v", false, "print every hand")
)

// nopScheduler never starts a hand on its own, the simulation deals them back to back
type nopScheduler struct{}

func (nopScheduler) ScheduleNextHand(time.Duration) {}

func (nopScheduler) CancelNextHand() {}

type standing struct {
	name   string
	chips  int
	wins   int
	topUps int
}

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	opts := config.Instance().Table.ToOptions()
	if *players > opts.MaxSeats {
		opts.MaxSeats = *players
	}

	pterm.DefaultSection.Printfln("Simulating %d hands with %d players (seed %d)", *hands, *players, *seed)

	standings, err := simulate(opts)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	data := pterm.TableData{{"Player", "Chips", "Hands won", "Top-ups"}}
	for _, s := range standings {
		data = append(data, []string{s.name, strconv.Itoa(s.chips), strconv.Itoa(s.wins), strconv.Itoa(s.topUps)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Success.Println("every chip was accounted for")
}

func simulate(opts texasholdem.Options) ([]*standing, error) {
	table, err := texasholdem.NewTable(logrus.StandardLogger(), opts, nopScheduler{})
	if err != nil {
		return nil, err
	}

	table.SetShuffler(rng.NewSeeded(*seed))
	b := &bot{gen: rng.NewSeeded(*seed + 1), aggression: *aggression}

	standings := make(map[string]*standing)
	for i := 0; i < *players; i++ {
		id := fmt.Sprintf("bot-%d", i)
		name := fmt.Sprintf("Bot %d", i+1)
		if _, err := table.Join(id, name); err != nil {
			return nil, err
		}

		standings[id] = &standing{name: name}
	}

	for hand := 1; hand <= *hands; hand++ {
		for _, p := range table.Players() {
			if p.Chips == 0 {
				standings[p.ID].topUps++
			}
		}

		if err := table.StartNewRound(); err != nil {
			return nil, err
		}

		before := chipsInPlay(table.State())
		for table.Stage().InBettingRound() {
			state := table.State()
			if state.ActiveSeat < 0 {
				return nil, fmt.Errorf("hand %d: no active seat during the %s", hand, state.Stage)
			}

			id := state.Players[state.ActiveSeat].ID
			act, amount := b.choose(table.StateFor(id))
			if err := table.Act(id, act, amount); err != nil {
				return nil, fmt.Errorf("hand %d: %w", hand, err)
			}
		}

		if after := chipsInPlay(table.State()); after != before {
			return nil, fmt.Errorf("hand %d: started with %d chips, ended with %d", hand, before, after)
		}

		result := table.TakeHandResult()
		if result == nil {
			return nil, errors.New("hand ended without a result")
		}

		for _, w := range result.Winners {
			standings[w.PlayerID].wins++
			if *verbose {
				pterm.Info.Printfln("hand %d: %s won %d (%s)", result.HandNumber, pterm.LightCyan(w.Name), w.Amount, w.Description)
			}
		}
	}

	out := make([]*standing, 0, len(standings))
	for _, p := range table.Players() {
		s := standings[p.ID]
		s.chips = p.Chips
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].chips > out[j].chips
	})

	return out, nil
}

func chipsInPlay(state *texasholdem.TableState) int {
	total := state.PokerState.Pot
	for _, p := range state.Players {
		total += p.Chips
	}

	return total
}
