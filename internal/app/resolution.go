package app

import (
	"context"

	"coup/internal/domain"
)

// AutoResolve applies the default outcome for an expired decision window. It
// is normally driven by the scheduler but is safe to call at any time: if the
// session has no pending action, or the stored deadline has not actually
// passed, it does nothing. That guard is what makes stale timer fires benign
// after a window has been superseded.
func (s *Service) AutoResolve(ctx context.Context, code string) {
	unlock := s.lockSession(code)
	defer unlock()

	sess, err := s.load(ctx, code)
	if err != nil {
		s.logger.Debug("auto-resolve skipped for session %s: %v", code, err)
		return
	}
	if sess.Status != domain.StatusInProgress || sess.PendingAction == nil || sess.ResolvesAt == nil {
		return
	}
	if s.now().Before(*sess.ResolvesAt) {
		return
	}

	pending := sess.PendingAction
	switch pending.Phase {
	case domain.PhaseAwaitingChallenge:
		s.emit(ctx, code, EventChallengeWindowClosed, ActionCompletedPayload{
			ActorUid:  pending.ActorUid,
			Action:    pending.Type,
			TargetUid: pending.TargetUid,
		})
		if pending.Blockable {
			resolvesAt := s.now().Add(s.cfg.BlockWindow())
			pending.Phase = domain.PhaseAwaitingBlock
			sess.ResolvesAt = &resolvesAt
			s.emit(ctx, code, EventBlockWindowOpen, BlockWindowOpenPayload{
				Action:     pending.Type,
				ResolvesAt: resolvesAt,
			})
			if err := s.store.Save(ctx, sess); err != nil {
				s.logger.Error("auto-resolve save failed for session %s: %v", code, err)
				return
			}
			s.sched.Arm(code, s.cfg.BlockWindow())
			return
		}
		s.completePendingAction(ctx, sess)

	case domain.PhaseAwaitingBlock:
		// Nobody blocked: the action goes through.
		s.emit(ctx, code, EventBlockWindowClosed, ActionCompletedPayload{
			ActorUid:  pending.ActorUid,
			Action:    pending.Type,
			TargetUid: pending.TargetUid,
		})
		s.completePendingAction(ctx, sess)

	case domain.PhaseAwaitingBlockChallenge:
		// Nobody disputed the block: it stands and the action is cancelled.
		s.emit(ctx, code, EventBlockSucceeded, BlockSucceededPayload{BlockerUid: pending.BlockerUid})
		s.emit(ctx, code, EventActionBlocked, ActionBlockedPayload{
			Action:     pending.Type,
			BlockerUid: pending.BlockerUid,
		})
		s.appendHistory(sess, "block", pending.BlockerUid, pending.ActorUid,
			"%s's block of %s stood unchallenged", userName(sess, pending.BlockerUid), pending.Type)
		s.advanceTurn(ctx, sess)

	default:
		s.logger.Error("session %s has pending action in unknown phase %q", code, pending.Phase)
		return
	}

	if err := s.store.Save(ctx, sess); err != nil {
		s.logger.Error("auto-resolve save failed for session %s: %v", code, err)
	}
}
