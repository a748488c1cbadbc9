package nakama

import (
	"testing"
	"time"

	"coup/internal/domain"
)

func viewFixture() *domain.Session {
	resolvesAt := time.Date(2025, 6, 1, 12, 0, 8, 0, time.UTC)
	return &domain.Session{
		Code:    "ABC123",
		Status:  domain.StatusInProgress,
		HostUid: "p1",
		Players: []domain.Player{
			{Uid: "p1", UserName: "alice", Coins: 4, Cards: []domain.CardSlot{{Role: domain.RoleDuke}, {Role: domain.RoleCaptain}}},
			{Uid: "p2", UserName: "bob", Coins: 2, Cards: []domain.CardSlot{{Role: domain.RoleAssassin, Revealed: true}, {Role: domain.RoleContessa}}},
		},
		Deck: []domain.Role{domain.RoleAmbassador, domain.RoleAmbassador},
		PendingAction: &domain.PendingAction{
			Type:        domain.ActionTax,
			ActorUid:    "p1",
			ClaimedRole: domain.RoleDuke,
			Phase:       domain.PhaseAwaitingChallenge,
		},
		ResolvesAt: &resolvesAt,
	}
}

func TestSessionViewHidesOtherHands(t *testing.T) {
	view := NewSessionView(viewFixture(), "p1")

	if view.DeckCount != 2 {
		t.Errorf("deck count = %d, want 2", view.DeckCount)
	}
	if len(view.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(view.Players))
	}

	// Own cards are visible face-down.
	own := view.Players[0]
	if own.Cards[0].Role != domain.RoleDuke || own.Cards[1].Role != domain.RoleCaptain {
		t.Errorf("viewer should see own roles, got %+v", own.Cards)
	}

	// Opponent: revealed card visible, hidden card blank.
	opp := view.Players[1]
	if opp.Cards[0].Role != domain.RoleAssassin {
		t.Errorf("revealed cards are public, got %q", opp.Cards[0].Role)
	}
	if opp.Cards[1].Role != "" {
		t.Errorf("unrevealed opponent card leaked: %q", opp.Cards[1].Role)
	}

	if view.PendingAction == nil || view.PendingAction.ClaimedRole != domain.RoleDuke {
		t.Errorf("claims are public, got %+v", view.PendingAction)
	}
	if view.ResolvesAt == nil {
		t.Error("deadline should be visible")
	}
	if view.CurrentPlayerUid != "p1" {
		t.Errorf("current player = %q, want p1", view.CurrentPlayerUid)
	}
}

func TestSessionViewExchangeCardsOnlyForExchanger(t *testing.T) {
	sess := viewFixture()
	sess.PendingAction = nil
	sess.PendingExchange = &domain.PendingExchange{
		PlayerUid:  "p1",
		DrawnCards: []domain.Role{domain.RoleContessa, domain.RoleDuke},
	}

	if got := NewSessionView(sess, "p1").ExchangeDrawnCards; len(got) != 2 {
		t.Errorf("exchanger should see drawn cards, got %v", got)
	}
	if got := NewSessionView(sess, "p2").ExchangeDrawnCards; got != nil {
		t.Errorf("drawn cards leaked to opponent: %v", got)
	}
}

func TestSessionViewMarksEliminated(t *testing.T) {
	sess := viewFixture()
	p2 := sess.PlayerByUid("p2")
	p2.Cards[1].Revealed = true

	view := NewSessionView(sess, "p1")
	if !view.Players[1].Eliminated {
		t.Error("p2 should be marked eliminated")
	}
	if view.Players[0].Eliminated {
		t.Error("p1 is still alive")
	}
}
