package app

import (
	"context"

	"coup/internal/domain"
)

// Block declares a counter-claim against the pending action. The block opens
// its own challenge window; if nobody disputes it before the deadline the
// action is cancelled.
func (s *Service) Block(ctx context.Context, code, blockerUid string, role domain.Role) error {
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
	if err := validatePlayerAlive(sess, blockerUid); err != nil {
		return err
	}
	if err := validateWindowOpen(sess, s.now()); err != nil {
		return err
	}
	if err := validatePhase(sess, domain.PhaseAwaitingBlock); err != nil {
		return err
	}
	if err := validateNotActor(sess, blockerUid); err != nil {
		return err
	}

	pending := sess.PendingAction
	if !pending.Blockable {
		return ErrNotBlockable
	}
	if err := validateBlockingRole(pending.Type, role); err != nil {
		return err
	}

	resolvesAt := s.now().Add(s.cfg.BlockChallengeWindow())
	pending.BlockerUid = blockerUid
	pending.BlockClaimedRole = role
	pending.Phase = domain.PhaseAwaitingBlockChallenge
	sess.ResolvesAt = &resolvesAt
	s.appendHistory(sess, "block", blockerUid, pending.ActorUid,
		"%s blocked %s with %s", userName(sess, blockerUid), pending.Type, role)

	if err := s.store.Save(ctx, sess); err != nil {
		return err
	}

	s.emit(ctx, code, EventBlockDeclared, BlockDeclaredPayload{
		BlockerUid:      blockerUid,
		BlockerUserName: userName(sess, blockerUid),
		BlockingRole:    role,
		Action:          pending.Type,
		ResolvesAt:      resolvesAt,
	})
	s.sched.Arm(code, s.cfg.BlockChallengeWindow())
	return nil
}
