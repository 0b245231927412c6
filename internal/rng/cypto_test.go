package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.True(found[4])
	a.False(found[5])
}

func TestNewSeeded(t *testing.T) {
	g1 := NewSeeded(7)
	g2 := NewSeeded(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, g1.Intn(100), g2.Intn(100))
	}
}
