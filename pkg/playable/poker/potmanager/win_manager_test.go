package potmanager

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinManager_GetSortedTiers(t *testing.T) {
	a := assert.New(t)

	strength := map[int]int{1: 10, 2: 20, 3: 30, 4: 20, 5: 30}
	wm := NewWinManager(func(x, y int) int {
		return strength[x] - strength[y]
	})

	for seat := 1; seat <= 5; seat++ {
		wm.AddParticipant(seat)
	}

	a.Equal("3-5|2-4|1", tiersToString(wm.GetSortedTiers()))
}

func TestWinManager_GetSortedTiers_empty(t *testing.T) {
	wm := NewWinManager(func(x, y int) int { return 0 })
	assert.Empty(t, wm.GetSortedTiers())
}

func tiersToString(tiers [][]int) string {
	s := make([]string, len(tiers))
	for i, seats := range tiers {
		ids := make([]string, len(seats))
		for j, seat := range seats {
			ids[j] = strconv.Itoa(seat)
		}

		s[i] = strings.Join(ids, "-")
	}

	return strings.Join(s, "|")
}
