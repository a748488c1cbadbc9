package domain

import (
	"math/rand"
	"testing"
)

func countRoles(cards []Role) map[Role]int {
	counts := make(map[Role]int)
	for _, r := range cards {
		counts[r]++
	}
	return counts
}

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}
	counts := countRoles(deck)
	for _, role := range Roles {
		if counts[role] != CopiesPerRole {
			t.Errorf("expected %d copies of %s, got %d", CopiesPerRole, role, counts[role])
		}
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	deck := NewDeck()
	Shuffle(rand.New(rand.NewSource(42)), deck)
	if len(deck) != DeckSize {
		t.Fatalf("shuffle changed deck size to %d", len(deck))
	}
	counts := countRoles(deck)
	for _, role := range Roles {
		if counts[role] != CopiesPerRole {
			t.Errorf("shuffle changed count of %s to %d", role, counts[role])
		}
	}
}

func TestDeal(t *testing.T) {
	deck := NewDeck()
	Shuffle(rand.New(rand.NewSource(7)), deck)

	hands, rest, err := Deal(deck, 4)
	if err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	if len(hands) != 4 {
		t.Fatalf("expected 4 hands, got %d", len(hands))
	}
	for i, hand := range hands {
		if len(hand) != CardsPerPlayer {
			t.Errorf("hand %d has %d cards, want %d", i, len(hand), CardsPerPlayer)
		}
	}
	if want := DeckSize - 4*CardsPerPlayer; len(rest) != want {
		t.Errorf("expected %d cards left in deck, got %d", want, len(rest))
	}

	// Hands plus remainder must still be the full deck.
	all := append([]Role{}, rest...)
	for _, hand := range hands {
		all = append(all, hand...)
	}
	counts := countRoles(all)
	for _, role := range Roles {
		if counts[role] != CopiesPerRole {
			t.Errorf("dealing changed count of %s to %d", role, counts[role])
		}
	}
}

func TestDealRejectsPartialDeck(t *testing.T) {
	deck := NewDeck()
	_, deck = DrawTop(deck)
	if _, _, err := Deal(deck, 2); err != ErrInsufficientCards {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
}

func TestDrawTop(t *testing.T) {
	deck := []Role{RoleDuke, RoleCaptain, RoleContessa}
	card, rest := DrawTop(deck)
	if card != RoleContessa {
		t.Errorf("expected contessa off the top, got %s", card)
	}
	if len(rest) != 2 {
		t.Errorf("expected 2 cards left, got %d", len(rest))
	}
}
