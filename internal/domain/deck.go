package domain

import (
	"errors"
	"math/rand"
)

// ErrInsufficientCards is returned when dealing from a deck that has already
// been partially consumed.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// CardsPerPlayer is dealt to each seat when the session starts.
const CardsPerPlayer = 2

// NewDeck returns a fresh deck: three copies of each role, canonical order.
func NewDeck() []Role {
	deck := make([]Role, 0, DeckSize)
	for _, role := range Roles {
		for i := 0; i < CopiesPerRole; i++ {
			deck = append(deck, role)
		}
	}
	return deck
}

// Shuffle performs an in-place Fisher-Yates permutation of the deck.
func Shuffle(rng *rand.Rand, deck []Role) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Deal draws CardsPerPlayer cards for each of numPlayers in order and returns
// the hands plus the remaining deck. The deck must be full; a partially
// consumed deck means cards have leaked and dealing refuses to continue.
func Deal(deck []Role, numPlayers int) ([][]Role, []Role, error) {
	if len(deck) != DeckSize {
		return nil, nil, ErrInsufficientCards
	}
	hands := make([][]Role, numPlayers)
	for i := range hands {
		hand := make([]Role, 0, CardsPerPlayer)
		for c := 0; c < CardsPerPlayer; c++ {
			var card Role
			card, deck = DrawTop(deck)
			hand = append(hand, card)
		}
		hands[i] = hand
	}
	return hands, deck, nil
}

// DrawTop pops the top card off the deck stack.
func DrawTop(deck []Role) (Role, []Role) {
	top := deck[len(deck)-1]
	return top, deck[:len(deck)-1]
}
