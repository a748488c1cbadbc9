package domain

import "testing"

func testSession() *Session {
	return &Session{
		Code:   "TEST42",
		Status: StatusInProgress,
		Players: []Player{
			{Uid: "p1", UserName: "alice", Coins: 2, Cards: []CardSlot{{Role: RoleDuke}, {Role: RoleCaptain}}},
			{Uid: "p2", UserName: "bob", Coins: 2, Cards: []CardSlot{{Role: RoleAssassin}, {Role: RoleContessa}}},
			{Uid: "p3", UserName: "carol", Coins: 2, Cards: []CardSlot{{Role: RoleAmbassador}, {Role: RoleDuke}}},
		},
	}
}

func eliminate(s *Session, uid string) {
	p := s.PlayerByUid(uid)
	for i := range p.Cards {
		p.Cards[i].Revealed = true
	}
}

func TestNextPlayerIndexSkipsEliminated(t *testing.T) {
	s := testSession()
	eliminate(s, "p2")

	s.CurrentPlayerIndex = 0
	if got := s.NextPlayerIndex(); got != 2 {
		t.Errorf("expected turn to skip to seat 2, got %d", got)
	}

	s.CurrentPlayerIndex = 2
	if got := s.NextPlayerIndex(); got != 0 {
		t.Errorf("expected turn to wrap to seat 0, got %d", got)
	}
}

func TestIsOverAndWinner(t *testing.T) {
	s := testSession()
	if s.IsOver() {
		t.Fatal("game should not be over with three players alive")
	}
	if s.Winner() != nil {
		t.Fatal("no winner expected while game is live")
	}

	eliminate(s, "p1")
	eliminate(s, "p3")
	if !s.IsOver() {
		t.Fatal("game should be over with one player left")
	}
	if w := s.Winner(); w == nil || w.Uid != "p2" {
		t.Fatalf("expected p2 to win, got %+v", w)
	}
}

func TestIsEliminated(t *testing.T) {
	s := testSession()
	if s.IsEliminated("p1") {
		t.Error("p1 should be alive")
	}
	if !s.IsEliminated("ghost") {
		t.Error("unknown players count as eliminated")
	}
	p := s.PlayerByUid("p1")
	p.Cards[0].Revealed = true
	if s.IsEliminated("p1") {
		t.Error("p1 still holds one influence")
	}
	p.Cards[1].Revealed = true
	if !s.IsEliminated("p1") {
		t.Error("p1 has no influence left")
	}
}

func TestTotalCardsTracksEveryZone(t *testing.T) {
	s := testSession()
	s.Deck = []Role{RoleContessa, RoleCaptain, RoleAmbassador, RoleAssassin, RoleAmbassador, RoleDuke, RoleCaptain, RoleContessa, RoleAssassin}
	if got := s.TotalCards(); got != DeckSize {
		t.Fatalf("expected %d total cards, got %d", DeckSize, got)
	}

	// Drawn exchange cards still count.
	var c1, c2 Role
	c1, s.Deck = DrawTop(s.Deck)
	c2, s.Deck = DrawTop(s.Deck)
	s.PendingExchange = &PendingExchange{PlayerUid: "p1", DrawnCards: []Role{c1, c2}}
	if got := s.TotalCards(); got != DeckSize {
		t.Fatalf("expected %d total cards mid-exchange, got %d", DeckSize, got)
	}
}

func TestHasPendingDecision(t *testing.T) {
	s := testSession()
	if s.HasPendingDecision() {
		t.Fatal("fresh session has no pending decision")
	}
	s.PendingReveal = &PendingCardReveal{PlayerUid: "p2", Reason: RevealReasonCouped}
	if !s.HasPendingDecision() {
		t.Fatal("pending reveal should count as a pending decision")
	}
}
