package app

import (
	"context"

	"coup/internal/domain"
)

// Challenge disputes a role claim. With isBlockChallenge false it targets the
// pending action's claim; with true it targets the block's claim. The
// challenged player either proves the role, swaps the proven card for a fresh
// one and costs the challenger an influence, or fails to prove it and loses an
// influence themselves.
func (s *Service) Challenge(ctx context.Context, code, challengerUid string, isBlockChallenge bool) error {
	unlock := s.lockSession(code)
	defer unlock()

	sess, err := s.load(ctx, code)
	if err != nil {
		return err
	}
	if err := validateInProgress(sess); err != nil {
		return err
	}
	if err := validatePendingAction(sess); err != nil {
		return err
	}
	if err := validatePlayerAlive(sess, challengerUid); err != nil {
		return err
	}
	if err := validateWindowOpen(sess, s.now()); err != nil {
		return err
	}

	if isBlockChallenge {
		return s.challengeBlock(ctx, sess, challengerUid)
	}
	return s.challengeAction(ctx, sess, challengerUid)
}

func (s *Service) challengeAction(ctx context.Context, sess *domain.Session, challengerUid string) error {
	if err := validatePhase(sess, domain.PhaseAwaitingChallenge); err != nil {
		return err
	}
	if err := validateNotActor(sess, challengerUid); err != nil {
		return err
	}
	pending := sess.PendingAction
	if !pending.Challengeable {
		return ErrNotChallengeable
	}

	s.appendHistory(sess, "challenge", challengerUid, pending.ActorUid,
		"%s challenged %s's claim to %s", userName(sess, challengerUid), userName(sess, pending.ActorUid), pending.ClaimedRole)
	s.emit(ctx, sess.Code, EventChallengeDeclared, ChallengeDeclaredPayload{
		ChallengerUid:      challengerUid,
		ChallengerUserName: userName(sess, challengerUid),
		TargetUid:          pending.ActorUid,
		ChallengeType:      "action",
	})

	claimProven := s.adjudicateClaim(ctx, sess, challengerUid, pending.ActorUid, pending.ClaimedRole)

	if !claimProven {
		// Actor was bluffing: the action dies with the claim.
		s.emit(ctx, sess.Code, EventChallengeSucceeded, ChallengeResolvedPayload{
			ChallengerUid: challengerUid,
			LoserUid:      pending.ActorUid,
		})
		s.emit(ctx, sess.Code, EventActionCancelled, ActionCancelledPayload{Action: pending.Type})
		if sess.IsOver() {
			s.finishGame(ctx, sess)
			return s.store.Save(ctx, sess)
		}
		s.advanceTurn(ctx, sess)
		return s.store.Save(ctx, sess)
	}

	s.emit(ctx, sess.Code, EventChallengeFailed, ChallengeResolvedPayload{
		ChallengerUid: challengerUid,
		LoserUid:      challengerUid,
	})
	if sess.IsOver() {
		s.finishGame(ctx, sess)
		return s.store.Save(ctx, sess)
	}

	if pending.Blockable {
		resolvesAt := s.now().Add(s.cfg.BlockWindow())
		pending.Phase = domain.PhaseAwaitingBlock
		sess.ResolvesAt = &resolvesAt
		s.emit(ctx, sess.Code, EventBlockWindowOpen, BlockWindowOpenPayload{
			Action:     pending.Type,
			ResolvesAt: resolvesAt,
		})
		if err := s.store.Save(ctx, sess); err != nil {
			return err
		}
		s.sched.Arm(sess.Code, s.cfg.BlockWindow())
		return nil
	}

	s.completePendingAction(ctx, sess)
	return s.store.Save(ctx, sess)
}

func (s *Service) challengeBlock(ctx context.Context, sess *domain.Session, challengerUid string) error {
	if err := validatePhase(sess, domain.PhaseAwaitingBlockChallenge); err != nil {
		return err
	}
	if err := validateNotBlocker(sess, challengerUid); err != nil {
		return err
	}
	pending := sess.PendingAction

	s.appendHistory(sess, "challenge", challengerUid, pending.BlockerUid,
		"%s challenged %s's block with %s", userName(sess, challengerUid), userName(sess, pending.BlockerUid), pending.BlockClaimedRole)
	s.emit(ctx, sess.Code, EventChallengeDeclared, ChallengeDeclaredPayload{
		ChallengerUid:      challengerUid,
		ChallengerUserName: userName(sess, challengerUid),
		TargetUid:          pending.BlockerUid,
		ChallengeType:      "block",
	})

	claimProven := s.adjudicateClaim(ctx, sess, challengerUid, pending.BlockerUid, pending.BlockClaimedRole)

	if !claimProven {
		// Blocker was bluffing: the block dissolves and the action goes
		// through after all.
		s.emit(ctx, sess.Code, EventChallengeSucceeded, ChallengeResolvedPayload{
			ChallengerUid: challengerUid,
			LoserUid:      pending.BlockerUid,
		})
		if sess.IsOver() {
			s.finishGame(ctx, sess)
			return s.store.Save(ctx, sess)
		}
		s.completePendingAction(ctx, sess)
		return s.store.Save(ctx, sess)
	}

	s.emit(ctx, sess.Code, EventChallengeFailed, ChallengeResolvedPayload{
		ChallengerUid: challengerUid,
		LoserUid:      challengerUid,
	})
	s.emit(ctx, sess.Code, EventActionBlocked, ActionBlockedPayload{
		Action:     pending.Type,
		BlockerUid: pending.BlockerUid,
	})
	if sess.IsOver() {
		s.finishGame(ctx, sess)
		return s.store.Save(ctx, sess)
	}
	s.advanceTurn(ctx, sess)
	return s.store.Save(ctx, sess)
}

// adjudicateClaim settles one role claim. If the challenged player holds an
// unrevealed copy of the claimed role, the claim is proven: the proven card
// goes back into the deck, the deck is shuffled, a replacement is drawn into
// the same slot and the challenger loses an influence. Otherwise the claim
// fails and the challenged player loses an influence. Returns whether the
// claim was proven.
func (s *Service) adjudicateClaim(ctx context.Context, sess *domain.Session, challengerUid, challengedUid string, claimed domain.Role) bool {
	challenged := sess.PlayerByUid(challengedUid)

	slot := -1
	for i, c := range challenged.Cards {
		if !c.Revealed && c.Role == claimed {
			slot = i
			break
		}
	}

	if slot < 0 {
		s.loseInfluence(ctx, sess, challengedUid)
		return false
	}

	sess.Deck = append(sess.Deck, claimed)
	domain.Shuffle(s.rng, sess.Deck)
	var replacement domain.Role
	replacement, sess.Deck = domain.DrawTop(sess.Deck)
	challenged.Cards[slot] = domain.CardSlot{Role: replacement}

	s.appendHistory(sess, "challenge", challengedUid, challengerUid,
		"%s proved the %s and drew a replacement", userName(sess, challengedUid), claimed)
	s.emit(ctx, sess.Code, EventCardExchanged, CardExchangedPayload{
		PlayerUid: challengedUid,
		Reason:    "successful_defense",
	})

	s.loseInfluence(ctx, sess, challengerUid)
	return true
}

// loseInfluence reveals the player's first unrevealed card. Eliminations are
// announced here; the win check stays with the caller.
func (s *Service) loseInfluence(ctx context.Context, sess *domain.Session, uid string) {
	player := sess.PlayerByUid(uid)
	if player == nil {
		return
	}
	for i := range player.Cards {
		if player.Cards[i].Revealed {
			continue
		}
		player.Cards[i].Revealed = true
		s.appendHistory(sess, "reveal", uid, "", "%s lost their %s", userName(sess, uid), player.Cards[i].Role)
		s.emit(ctx, sess.Code, EventCardRevealed, CardRevealedPayload{
			PlayerUid:      uid,
			Card:           player.Cards[i].Role,
			CardsRemaining: player.ActiveCards(),
		})
		break
	}
	if !player.Alive() {
		s.appendHistory(sess, "elimination", uid, "", "%s has been eliminated", userName(sess, uid))
		s.emit(ctx, sess.Code, EventPlayerEliminated, PlayerEliminatedPayload{
			PlayerUid: uid,
			UserName:  userName(sess, uid),
		})
	}
}
