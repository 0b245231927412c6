package potmanager

import (
	"sort"
)

// WinManager orders seats into tiers of equal hand strength
type WinManager struct {
	compare func(a, b int) int
	seats   []int
}

// NewWinManager returns a WinManager that ranks seats with compare
// compare(a, b) must return a positive number if seat a beats seat b, negative if b beats a, and 0 on a tie
func NewWinManager(compare func(a, b int) int) *WinManager {
	return &WinManager{
		compare: compare,
		seats:   make([]int, 0),
	}
}

// AddParticipant adds a seat that is still live at showdown
func (w *WinManager) AddParticipant(seat int) {
	w.seats = append(w.seats, seat)
}

// GetSortedTiers returns the seats strongest first, tied seats share a tier
func (w *WinManager) GetSortedTiers() [][]int {
	seats := make([]int, len(w.seats))
	copy(seats, w.seats)

	sort.SliceStable(seats, func(i, j int) bool {
		return w.compare(seats[i], seats[j]) > 0
	})

	tiers := make([][]int, 0, len(seats))
	for _, seat := range seats {
		last := len(tiers) - 1
		if last >= 0 && w.compare(tiers[last][0], seat) == 0 {
			tiers[last] = append(tiers[last], seat)
			continue
		}

		tiers = append(tiers, []int{seat})
	}

	return tiers
}
