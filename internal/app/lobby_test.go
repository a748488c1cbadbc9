package app

import (
	"context"
	"testing"

	"coup/internal/domain"
)

func TestCreateSession(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, "host", "alice")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(sess.Code) != codeLength {
		t.Errorf("code %q should be %d characters", sess.Code, codeLength)
	}
	if sess.Status != domain.StatusWaiting {
		t.Errorf("status = %s, want waiting", sess.Status)
	}
	if sess.HostUid != "host" {
		t.Errorf("host = %q, want host", sess.HostUid)
	}
	if len(sess.Players) != 1 || sess.Players[0].Uid != "host" {
		t.Fatalf("host should be seated, players = %+v", sess.Players)
	}

	stored, err := store.Load(ctx, sess.Code)
	if err != nil {
		t.Fatalf("stored session missing: %v", err)
	}
	if stored.Code != sess.Code {
		t.Errorf("stored code = %q", stored.Code)
	}
}

func TestJoinSession(t *testing.T) {
	svc, _, notifier, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, "host", "alice")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	code := sess.Code

	if err := svc.JoinSession(ctx, "NOSUCH", "p2", "bob"); err != ErrSessionNotFound {
		t.Fatalf("unknown code: got %v", err)
	}
	if err := svc.JoinSession(ctx, code, "p2", "bob"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if err := svc.JoinSession(ctx, code, "p2", "bob"); err != ErrAlreadyJoined {
		t.Fatalf("double join: got %v", err)
	}
	if !notifier.has(EventPlayerJoined) {
		t.Error("missing player_joined event")
	}

	for i, uid := range []string{"p3", "p4", "p5", "p6"} {
		if err := svc.JoinSession(ctx, code, uid, uid); err != nil {
			t.Fatalf("join %d failed: %v", i, err)
		}
	}
	if err := svc.JoinSession(ctx, code, "p7", "grace"); err != ErrSessionFull {
		t.Fatalf("seventh seat: got %v", err)
	}
}

func TestStartSession(t *testing.T) {
	svc, store, notifier, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, "host", "alice")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	code := sess.Code

	if err := svc.StartSession(ctx, code, "host"); err != ErrTooFewPlayers {
		t.Fatalf("solo start: got %v", err)
	}
	if err := svc.JoinSession(ctx, code, "p2", "bob"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if err := svc.StartSession(ctx, code, "p2"); err != ErrNotHost {
		t.Fatalf("non-host start: got %v", err)
	}
	if err := svc.StartSession(ctx, code, "host"); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	started, err := store.Load(ctx, code)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if started.Status != domain.StatusInProgress {
		t.Errorf("status = %s, want in_progress", started.Status)
	}
	for _, p := range started.Players {
		if p.Coins != domain.StartingCoins {
			t.Errorf("%s starts with %d coins, want %d", p.Uid, p.Coins, domain.StartingCoins)
		}
		if len(p.Cards) != domain.CardsPerPlayer {
			t.Errorf("%s dealt %d cards, want %d", p.Uid, len(p.Cards), domain.CardsPerPlayer)
		}
	}
	if want := domain.DeckSize - 2*domain.CardsPerPlayer; len(started.Deck) != want {
		t.Errorf("deck has %d cards, want %d", len(started.Deck), want)
	}
	if got := started.TotalCards(); got != domain.DeckSize {
		t.Errorf("total cards = %d, want %d", got, domain.DeckSize)
	}
	if started.CurrentPlayerIndex != 0 {
		t.Errorf("first turn should sit with seat 0, got %d", started.CurrentPlayerIndex)
	}
	if !notifier.has(EventGameStarted) {
		t.Error("missing game_started event")
	}
	if !notifier.has(EventTurnStarted) {
		t.Error("missing turn_started event")
	}

	if err := svc.StartSession(ctx, code, "host"); err != ErrSessionNotWaiting {
		t.Fatalf("double start: got %v", err)
	}
	if err := svc.JoinSession(ctx, code, "late", "dave"); err != ErrSessionNotWaiting {
		t.Fatalf("late join: got %v", err)
	}
}
