package potmanager

// Pot is a single layer of the pot and the seats that split it
type Pot struct {
	Amount  int   `json:"amount"`
	Winners []int `json:"winners"`
	// Shares lines up with Winners
	Shares []int `json:"shares"`
}

// Pots is a collection of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
