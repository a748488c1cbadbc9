package app

import (
	"context"

	"coup/internal/domain"
)

// ExchangeCards completes an ambassador exchange. The player chooses which
// cards to keep from the pool of their unrevealed cards plus the two drawn
// from the deck; keptIndices index into that pool, unrevealed hand cards
// first, drawn cards after. Exactly as many cards must be kept as the player
// has unrevealed slots. The rest go back into the deck, which is shuffled.
func (s *Service) ExchangeCards(ctx context.Context, code, uid string, keptIndices []int) error {
	unlock := s.lockSession(code)
	defer unlock()

	sess, err := s.load(ctx, code)
	if err != nil {
		return err
	}
	if err := validateInProgress(sess); err != nil {
		return err
	}
	if sess.PendingExchange == nil {
		return ErrWrongPhase
	}
	if sess.PendingExchange.PlayerUid != uid {
		return ErrNotYourDecision
	}

	player := sess.PlayerByUid(uid)
	if player == nil {
		return ErrUnknownPlayer
	}

	var slots []int
	var pool []domain.Role
	for i, c := range player.Cards {
		if !c.Revealed {
			slots = append(slots, i)
			pool = append(pool, c.Role)
		}
	}
	pool = append(pool, sess.PendingExchange.DrawnCards...)

	if len(keptIndices) != len(slots) {
		return ErrWrongChoiceCount
	}
	seen := make(map[int]bool, len(keptIndices))
	for _, idx := range keptIndices {
		if idx < 0 || idx >= len(pool) {
			return ErrInvalidCardIndex
		}
		if seen[idx] {
			return ErrDuplicateChoice
		}
		seen[idx] = true
	}

	for i, idx := range keptIndices {
		player.Cards[slots[i]] = domain.CardSlot{Role: pool[idx]}
	}
	for idx, role := range pool {
		if !seen[idx] {
			sess.Deck = append(sess.Deck, role)
		}
	}
	domain.Shuffle(s.rng, sess.Deck)
	sess.PendingExchange = nil

	s.appendHistory(sess, "exchange", uid, "", "%s finished exchanging cards", userName(sess, uid))
	s.emit(ctx, code, EventExchangeCompleted, ExchangeCompletedPayload{PlayerUid: uid})

	s.advanceTurn(ctx, sess)
	return s.store.Save(ctx, sess)
}
