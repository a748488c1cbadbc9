package app

import (
	"time"

	"coup/internal/domain"
)

// Validators are pure precondition checks against a session snapshot. None of
// them mutate state, so they can be reused across the engine, the challenge
// adjudicator and the block/exchange handlers.

func validateInProgress(s *domain.Session) error {
	if s.Status != domain.StatusInProgress {
		return ErrSessionNotInProgress
	}
	return nil
}

func validateTurn(s *domain.Session, uid string) error {
	if !s.IsPlayerTurn(uid) {
		return ErrNotYourTurn
	}
	return nil
}

func validatePlayerAlive(s *domain.Session, uid string) error {
	if s.PlayerByUid(uid) == nil {
		return ErrUnknownPlayer
	}
	if s.IsEliminated(uid) {
		return ErrPlayerEliminated
	}
	return nil
}

func validateNoPendingDecision(s *domain.Session) error {
	if s.HasPendingDecision() {
		return ErrActionPending
	}
	return nil
}

func validateResources(cfg domain.ActionConfig, s *domain.Session, uid string, action domain.ActionType) error {
	player := s.PlayerByUid(uid)
	if player == nil {
		return ErrUnknownPlayer
	}
	if player.Coins >= domain.MustCoupAt && action != domain.ActionCoup {
		return ErrMustCoup
	}
	if player.Coins < cfg.MinCoins {
		return ErrInsufficientCoins
	}
	return nil
}

func validateTarget(cfg domain.ActionConfig, s *domain.Session, actorUid, targetUid string, action domain.ActionType) error {
	if cfg.RequiresTarget && targetUid == "" {
		return ErrInvalidTarget
	}
	if !cfg.RequiresTarget && targetUid != "" {
		return ErrInvalidTarget
	}
	if targetUid == "" {
		return nil
	}
	if targetUid == actorUid {
		return ErrInvalidTarget
	}
	target := s.PlayerByUid(targetUid)
	if target == nil {
		return ErrInvalidTarget
	}
	if !target.Alive() {
		return ErrTargetEliminated
	}
	if action == domain.ActionSteal && target.Coins == 0 {
		return ErrTargetHasNoCoins
	}
	return nil
}

func validatePendingAction(s *domain.Session) error {
	if s.PendingAction == nil {
		return ErrNoPendingAction
	}
	return nil
}

func validateWindowOpen(s *domain.Session, now time.Time) error {
	if s.ResolvesAt == nil {
		return ErrWindowClosed
	}
	if now.After(*s.ResolvesAt) {
		return ErrWindowClosed
	}
	return nil
}

func validatePhase(s *domain.Session, phase domain.DecisionPhase) error {
	if s.PendingAction == nil || s.PendingAction.Phase != phase {
		return ErrWrongPhase
	}
	return nil
}

func validateNotActor(s *domain.Session, uid string) error {
	if s.PendingAction != nil && s.PendingAction.ActorUid == uid {
		return ErrNotActor
	}
	return nil
}

func validateNotBlocker(s *domain.Session, uid string) error {
	if s.PendingAction != nil && s.PendingAction.BlockerUid == uid {
		return ErrNotActor
	}
	return nil
}

func validateBlockingRole(action domain.ActionType, role domain.Role) error {
	if !domain.CanBlock(action, role) {
		return ErrInvalidBlockingRole
	}
	return nil
}
