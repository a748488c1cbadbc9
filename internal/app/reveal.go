package app

import (
	"context"
)

// RevealCard settles an owed influence loss after an assassination or coup.
// The owing player picks which of their unrevealed cards to give up; the turn
// then advances.
func (s *Service) RevealCard(ctx context.Context, code, uid string, cardIndex int) error {
	unlock := s.lockSession(code)
	defer unlock()

	sess, err := s.load(ctx, code)
	if err != nil {
		return err
	}
	if err := validateInProgress(sess); err != nil {
		return err
	}
	if sess.PendingReveal == nil {
		return ErrWrongPhase
	}
	if sess.PendingReveal.PlayerUid != uid {
		return ErrNotYourDecision
	}

	player := sess.PlayerByUid(uid)
	if player == nil {
		return ErrUnknownPlayer
	}
	if cardIndex < 0 || cardIndex >= len(player.Cards) {
		return ErrInvalidCardIndex
	}
	if player.Cards[cardIndex].Revealed {
		return ErrCardAlreadyRevealed
	}

	card := player.Cards[cardIndex].Role
	player.Cards[cardIndex].Revealed = true
	sess.PendingReveal = nil

	s.appendHistory(sess, "reveal", uid, "", "%s revealed their %s", userName(sess, uid), card)
	s.emit(ctx, code, EventCardRevealed, CardRevealedPayload{
		PlayerUid:      uid,
		Card:           card,
		CardsRemaining: player.ActiveCards(),
	})
	if !player.Alive() {
		s.appendHistory(sess, "elimination", uid, "", "%s has been eliminated", userName(sess, uid))
		s.emit(ctx, code, EventPlayerEliminated, PlayerEliminatedPayload{
			PlayerUid: uid,
			UserName:  userName(sess, uid),
		})
	}

	s.advanceTurn(ctx, sess)
	return s.store.Save(ctx, sess)
}
