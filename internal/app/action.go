package app

import (
	"context"

	"coup/internal/domain"
)

// DeclareAction validates and declares an action for the current player. An
// action that can be neither challenged nor blocked applies immediately and
// advances the turn; anything else opens a pending decision with a challenge
// window and arms the auto-resolution timer.
func (s *Service) DeclareAction(ctx context.Context, code, uid string, action domain.ActionType, targetUid string) error {
	unlock := s.lockSession(code)
	defer unlock()

	sess, err := s.load(ctx, code)
	if err != nil {
		return err
	}

	cfg, ok := domain.ConfigFor(action)
	if !ok {
		return ErrUnknownAction
	}
	if err := validateInProgress(sess); err != nil {
		return err
	}
	if err := validateTurn(sess, uid); err != nil {
		return err
	}
	if err := validatePlayerAlive(sess, uid); err != nil {
		return err
	}
	if err := validateNoPendingDecision(sess); err != nil {
		return err
	}
	if err := validateResources(cfg, sess, uid, action); err != nil {
		return err
	}
	if err := validateTarget(cfg, sess, uid, targetUid, action); err != nil {
		return err
	}

	if !cfg.Challengeable && !cfg.Blockable {
		s.executeImmediately(ctx, sess, action, uid, targetUid)
		return s.store.Save(ctx, sess)
	}

	resolvesAt := s.now().Add(s.cfg.ChallengeWindow())
	sess.PendingAction = &domain.PendingAction{
		Type:          action,
		ActorUid:      uid,
		TargetUid:     targetUid,
		ClaimedRole:   cfg.ClaimedRole,
		Challengeable: cfg.Challengeable,
		Blockable:     cfg.Blockable,
		Phase:         domain.PhaseAwaitingChallenge,
		DeclaredAt:    s.now(),
	}
	sess.ResolvesAt = &resolvesAt
	s.appendHistory(sess, "action", uid, targetUid, "%s declared %s", userName(sess, uid), action)

	if err := s.store.Save(ctx, sess); err != nil {
		return err
	}

	s.emit(ctx, code, EventActionDeclared, ActionDeclaredPayload{
		ActorUid:      uid,
		ActorUserName: userName(sess, uid),
		Action:        action,
		TargetUid:     targetUid,
		ClaimedRole:   cfg.ClaimedRole,
		Challengeable: cfg.Challengeable,
		Blockable:     cfg.Blockable,
		ResolvesAt:    resolvesAt,
	})
	s.sched.Arm(code, s.cfg.ChallengeWindow())
	return nil
}

// executeImmediately handles income and the forced coup path, which allow no
// responses.
func (s *Service) executeImmediately(ctx context.Context, sess *domain.Session, action domain.ActionType, uid, targetUid string) {
	actor := sess.PlayerByUid(uid)

	switch action {
	case domain.ActionIncome:
		actor.Coins++
		s.appendHistory(sess, "action", uid, "", "%s took income (+1 coin)", userName(sess, uid))
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: uid, NewCoins: actor.Coins, Reason: "income"})
		s.advanceTurn(ctx, sess)

	case domain.ActionCoup:
		actor.Coins -= 7
		s.appendHistory(sess, "action", uid, targetUid, "%s launched a coup against %s", userName(sess, uid), userName(sess, targetUid))
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: uid, NewCoins: actor.Coins, Reason: "coup"})
		// Turn advances when the target reveals.
		sess.PendingReveal = &domain.PendingCardReveal{
			PlayerUid: targetUid,
			Reason:    domain.RevealReasonCouped,
		}
	}

	s.emit(ctx, sess.Code, EventActionCompleted, ActionCompletedPayload{ActorUid: uid, Action: action, TargetUid: targetUid})
}

// executeAction applies an action's effect after its windows have closed (or
// its challenges failed). Effects that need further input park the session in
// a reveal or exchange wait instead of advancing the turn.
func (s *Service) executeAction(ctx context.Context, sess *domain.Session, action domain.ActionType, actorUid, targetUid string) {
	actor := sess.PlayerByUid(actorUid)

	switch action {
	case domain.ActionIncome:
		actor.Coins++
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: actorUid, NewCoins: actor.Coins, Reason: "income"})

	case domain.ActionForeignAid:
		actor.Coins += 2
		s.appendHistory(sess, "action", actorUid, "", "%s took foreign aid (+2 coins)", userName(sess, actorUid))
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: actorUid, NewCoins: actor.Coins, Reason: "foreign_aid"})

	case domain.ActionTax:
		actor.Coins += 3
		s.appendHistory(sess, "action", actorUid, "", "%s collected tax as Duke (+3 coins)", userName(sess, actorUid))
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: actorUid, NewCoins: actor.Coins, Reason: "tax"})

	case domain.ActionSteal:
		target := sess.PlayerByUid(targetUid)
		if target == nil {
			return
		}
		stolen := min(2, target.Coins)
		target.Coins -= stolen
		actor.Coins += stolen
		s.appendHistory(sess, "action", actorUid, targetUid, "%s stole %d coins from %s", userName(sess, actorUid), stolen, userName(sess, targetUid))
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: targetUid, NewCoins: target.Coins, Reason: "stolen_from"})
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: actorUid, NewCoins: actor.Coins, Reason: "steal"})

	case domain.ActionAssassinate:
		target := sess.PlayerByUid(targetUid)
		if target == nil {
			return
		}
		actor.Coins -= 3
		s.appendHistory(sess, "action", actorUid, targetUid, "%s assassinated %s", userName(sess, actorUid), userName(sess, targetUid))
		s.emit(ctx, sess.Code, EventCoinsChanged, CoinsChangedPayload{PlayerUid: actorUid, NewCoins: actor.Coins, Reason: "assassinate"})
		// A target already eliminated during the challenge phase has nothing
		// left to reveal.
		if target.Alive() {
			sess.PendingReveal = &domain.PendingCardReveal{
				PlayerUid: targetUid,
				Reason:    domain.RevealReasonAssassinated,
			}
		}

	case domain.ActionExchange:
		if len(sess.Deck) < 2 {
			return
		}
		var first, second domain.Role
		first, sess.Deck = domain.DrawTop(sess.Deck)
		second, sess.Deck = domain.DrawTop(sess.Deck)
		sess.PendingExchange = &domain.PendingExchange{
			PlayerUid:  actorUid,
			DrawnCards: []domain.Role{first, second},
		}
		s.appendHistory(sess, "action", actorUid, "", "%s exchanged cards as Ambassador", userName(sess, actorUid))
		s.emitTo(ctx, sess.Code, actorUid, EventExchangeCardsDrawn, ExchangeCardsDrawnPayload{
			Cards:      sess.PendingExchange.DrawnCards,
			MustChoose: sess.PlayerByUid(actorUid).ActiveCards(),
		})
	}
}

// completePendingAction executes the pending action's effect and either
// advances the turn or leaves the session parked in the wait the effect
// created. The pending decision itself is always cleared.
func (s *Service) completePendingAction(ctx context.Context, sess *domain.Session) {
	pending := sess.PendingAction
	sess.PendingAction = nil
	sess.ResolvesAt = nil

	s.executeAction(ctx, sess, pending.Type, pending.ActorUid, pending.TargetUid)

	if sess.PendingReveal == nil && sess.PendingExchange == nil {
		s.advanceTurn(ctx, sess)
	}

	s.emit(ctx, sess.Code, EventActionCompleted, ActionCompletedPayload{
		ActorUid:  pending.ActorUid,
		Action:    pending.Type,
		TargetUid: pending.TargetUid,
	})
}

// advanceTurn clears any pending decision, hands the turn to the next alive
// player and re-checks the win condition first.
func (s *Service) advanceTurn(ctx context.Context, sess *domain.Session) {
	sess.PendingAction = nil
	sess.ResolvesAt = nil

	if sess.IsOver() {
		s.finishGame(ctx, sess)
		return
	}

	sess.CurrentPlayerIndex = sess.NextPlayerIndex()
	current := sess.CurrentPlayer()
	s.emit(ctx, sess.Code, EventTurnStarted, TurnStartedPayload{
		CurrentPlayerUid:      current.Uid,
		CurrentPlayerUserName: current.UserName,
		MustCoup:              current.Coins >= domain.MustCoupAt,
	})
}

// finishGame closes the session, stops its timer and announces the winner.
func (s *Service) finishGame(ctx context.Context, sess *domain.Session) {
	winner := sess.Winner()
	sess.Status = domain.StatusFinished
	sess.PendingAction = nil
	sess.PendingReveal = nil
	sess.PendingExchange = nil
	sess.ResolvesAt = nil
	s.sched.Cancel(sess.Code)

	payload := GameOverPayload{}
	if winner != nil {
		sess.WinnerUid = winner.Uid
		payload.WinnerUid = winner.Uid
		payload.WinnerUserName = winner.UserName
		s.appendHistory(sess, "game_over", winner.Uid, "", "%s wins the game!", winner.UserName)
	}
	s.emit(ctx, sess.Code, EventGameOver, payload)
}
