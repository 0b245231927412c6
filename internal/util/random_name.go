package util

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var adjectives = []string{
	"Lucky", "Bold", "Quiet", "Steady", "Sly", "Patient", "Brave", "Calm", "Cunning", "Daring", "Eager",
	"Fearless", "Grim", "Hasty", "Jolly", "Keen", "Loose", "Mellow", "Nimble", "Plucky", "Reckless", "Sharp",
	"Stoic", "Tight", "Wild", "Wily", "Shrewd", "Sleepy", "Chatty", "Stubborn",
}

var animals = []string{
	"Shark", "Fish", "Whale", "Donkey", "Fox", "Owl", "Crocodile", "Hippo", "Wolf", "Bear", "Otter", "Badger",
	"Panda", "Tiger", "Lion", "Eagle", "Falcon", "Raven", "Mole", "Weasel", "Rhino", "Okapi", "Moose", "Gecko",
	"Turtle", "Hedgehog",
}

var (
	randomLock sync.Mutex
	random     = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
)

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	randomLock.Lock()
	defer randomLock.Unlock()

	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
