package nakama

import (
	"time"

	"coup/internal/domain"
)

// CardView is one influence slot as a specific viewer may see it. Role is
// empty unless the card is revealed or belongs to the viewer.
type CardView struct {
	Role     domain.Role `json:"role,omitempty"`
	Revealed bool        `json:"revealed"`
}

// PlayerView is a seat as seen by a specific viewer.
type PlayerView struct {
	Uid        string     `json:"uid"`
	UserName   string     `json:"user_name"`
	Coins      int        `json:"coins"`
	Cards      []CardView `json:"cards"`
	Eliminated bool       `json:"eliminated"`
}

// PendingActionView mirrors the pending action without any hidden data; role
// claims are public by nature.
type PendingActionView struct {
	Type             domain.ActionType    `json:"type"`
	ActorUid         string               `json:"actor_uid"`
	TargetUid        string               `json:"target_uid,omitempty"`
	ClaimedRole      domain.Role          `json:"claimed_role,omitempty"`
	Phase            domain.DecisionPhase `json:"phase"`
	BlockerUid       string               `json:"blocker_uid,omitempty"`
	BlockClaimedRole domain.Role          `json:"block_claimed_role,omitempty"`
}

// SessionView is the session as a specific viewer may see it: own cards are
// visible, everyone else's unrevealed cards are hidden and the deck is only a
// count. Drawn exchange cards are included only for the exchanging player.
type SessionView struct {
	Code               string                    `json:"code"`
	Status             domain.Status             `json:"status"`
	HostUid            string                    `json:"host_uid"`
	Players            []PlayerView              `json:"players"`
	CurrentPlayerUid   string                    `json:"current_player_uid,omitempty"`
	DeckCount          int                       `json:"deck_count"`
	PendingAction      *PendingActionView        `json:"pending_action,omitempty"`
	PendingReveal      *domain.PendingCardReveal `json:"pending_reveal,omitempty"`
	ExchangeDrawnCards []domain.Role             `json:"exchange_drawn_cards,omitempty"`
	ResolvesAt         *time.Time                `json:"resolves_at,omitempty"`
	WinnerUid          string                    `json:"winner_uid,omitempty"`
	History            []domain.HistoryEntry     `json:"history,omitempty"`
}

// NewSessionView projects the session document for one viewer.
func NewSessionView(sess *domain.Session, viewerUid string) SessionView {
	view := SessionView{
		Code:      sess.Code,
		Status:    sess.Status,
		HostUid:   sess.HostUid,
		DeckCount: len(sess.Deck),
		WinnerUid: sess.WinnerUid,
		History:   sess.History,
	}
	if sess.ResolvesAt != nil {
		t := *sess.ResolvesAt
		view.ResolvesAt = &t
	}
	if sess.Status == domain.StatusInProgress {
		if current := sess.CurrentPlayer(); current != nil {
			view.CurrentPlayerUid = current.Uid
		}
	}

	for i := range sess.Players {
		p := &sess.Players[i]
		pv := PlayerView{
			Uid:        p.Uid,
			UserName:   p.UserName,
			Coins:      p.Coins,
			Eliminated: len(p.Cards) > 0 && !p.Alive(),
		}
		for _, c := range p.Cards {
			cv := CardView{Revealed: c.Revealed}
			if c.Revealed || p.Uid == viewerUid {
				cv.Role = c.Role
			}
			pv.Cards = append(pv.Cards, cv)
		}
		view.Players = append(view.Players, pv)
	}

	if pa := sess.PendingAction; pa != nil {
		view.PendingAction = &PendingActionView{
			Type:             pa.Type,
			ActorUid:         pa.ActorUid,
			TargetUid:        pa.TargetUid,
			ClaimedRole:      pa.ClaimedRole,
			Phase:            pa.Phase,
			BlockerUid:       pa.BlockerUid,
			BlockClaimedRole: pa.BlockClaimedRole,
		}
	}
	if pr := sess.PendingReveal; pr != nil {
		r := *pr
		view.PendingReveal = &r
	}
	if pe := sess.PendingExchange; pe != nil && pe.PlayerUid == viewerUid {
		view.ExchangeDrawnCards = append([]domain.Role(nil), pe.DrawnCards...)
	}
	return view
}
