package domain

import "time"

// Status is the lifecycle stage of a session.
type Status string

const (
	// StatusWaiting indicates the lobby is open and cards have not been dealt.
	StatusWaiting Status = "waiting"
	// StatusInProgress indicates the game is being played.
	StatusInProgress Status = "in_progress"
	// StatusFinished indicates a winner has been decided.
	StatusFinished Status = "finished"
)

// DecisionPhase is the stage of an unresolved pending action.
type DecisionPhase string

const (
	PhaseAwaitingChallenge      DecisionPhase = "awaiting_challenge"
	PhaseAwaitingBlock          DecisionPhase = "awaiting_block"
	PhaseAwaitingBlockChallenge DecisionPhase = "awaiting_block_challenge"
)

// RevealReason records why a player owes a card reveal.
type RevealReason string

const (
	RevealReasonAssassinated RevealReason = "assassinated"
	RevealReasonCouped       RevealReason = "couped"
)

// StartingCoins is every player's balance when cards are dealt.
const StartingCoins = 2

// CardSlot is one of a player's two influence slots.
type CardSlot struct {
	Role     Role `json:"role"`
	Revealed bool `json:"revealed"`
}

// Player is a seat in the session. Cards holds exactly two slots once dealt.
type Player struct {
	Uid      string     `json:"uid"`
	UserName string     `json:"user_name"`
	Coins    int        `json:"coins"`
	Cards    []CardSlot `json:"cards"`
}

// ActiveCards counts the player's unrevealed slots.
func (p *Player) ActiveCards() int {
	n := 0
	for _, c := range p.Cards {
		if !c.Revealed {
			n++
		}
	}
	return n
}

// Alive reports whether the player still holds influence.
func (p *Player) Alive() bool {
	return p.ActiveCards() > 0
}

// PendingAction is a declared action waiting out its challenge/block windows.
// It is mutated in place as phases advance and cleared on resolution.
type PendingAction struct {
	Type          ActionType    `json:"type"`
	ActorUid      string        `json:"actor_uid"`
	TargetUid     string        `json:"target_uid,omitempty"`
	ClaimedRole   Role          `json:"claimed_role,omitempty"`
	Challengeable bool          `json:"challengeable"`
	Blockable     bool          `json:"blockable"`
	Phase         DecisionPhase `json:"phase"`

	BlockerUid       string    `json:"blocker_uid,omitempty"`
	BlockClaimedRole Role      `json:"block_claimed_role,omitempty"`
	DeclaredAt       time.Time `json:"declared_at"`
}

// PendingCardReveal marks that a player must choose a card to reveal before
// the turn can advance.
type PendingCardReveal struct {
	PlayerUid string       `json:"player_uid"`
	Reason    RevealReason `json:"reason"`
}

// PendingExchange marks that a player holds two drawn cards and must choose
// which to keep.
type PendingExchange struct {
	PlayerUid  string `json:"player_uid"`
	DrawnCards []Role `json:"drawn_cards"`
}

// HistoryEntry is one line in the session's public action log.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	ActorUid    string    `json:"actor_uid,omitempty"`
	TargetUid   string    `json:"target_uid,omitempty"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Session is the authoritative document for one running match. It is loaded,
// mutated and saved as a single unit per operation.
type Session struct {
	Code               string   `json:"code"`
	Status             Status   `json:"status"`
	HostUid            string   `json:"host_uid"`
	Players            []Player `json:"players"`
	CurrentPlayerIndex int      `json:"current_player_index"`
	Deck               []Role   `json:"deck"`

	// At most one of the three pending fields is non-nil at any time.
	PendingAction   *PendingAction     `json:"pending_action,omitempty"`
	PendingReveal   *PendingCardReveal `json:"pending_reveal,omitempty"`
	PendingExchange *PendingExchange   `json:"pending_exchange,omitempty"`

	// ResolvesAt is the deadline for the current decision window, if any.
	ResolvesAt *time.Time     `json:"resolves_at,omitempty"`
	WinnerUid  string         `json:"winner_uid,omitempty"`
	History    []HistoryEntry `json:"history,omitempty"`
}
