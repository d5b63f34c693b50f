package practice

import "fmt"

// State is where a session is in its review pass.
type State int

const (
	Empty     State = iota + 1 // No cards to practice.
	Ready                      // Deck shuffled, first card not yet touched.
	Reviewing                  // Somewhere in the deck.
	Finished                   // Every card in the deck has been marked.
)

var stateNames = [...]string{Empty: "Empty", Ready: "Ready", Reviewing: "Reviewing", Finished: "Finished"}

func (s State) String() string {
	if s >= Empty && s <= Finished {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Source says which cards the current deck was drawn from.
type Source int

const (
	AllCards Source = iota
	LaidAsideCards
)

func (s Source) String() string {
	switch s {
	case AllCards:
		return "all"
	case LaidAsideCards:
		return "laid-aside"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}
