package app

import (
	"time"

	"coup/internal/domain"
)

// Event names pushed through the notifier. Names are part of the client
// contract; clients switch on them.
const (
	EventGameStarted           = "game_started"
	EventTurnStarted           = "turn_started"
	EventActionDeclared        = "action_declared"
	EventActionCompleted       = "action_completed"
	EventActionCancelled       = "action_cancelled"
	EventActionBlocked         = "action_blocked"
	EventCoinsChanged          = "coins_changed"
	EventChallengeDeclared     = "challenge_declared"
	EventChallengeSucceeded    = "challenge_succeeded"
	EventChallengeFailed       = "challenge_failed"
	EventChallengeWindowClosed = "challenge_window_closed"
	EventBlockDeclared         = "block_declared"
	EventBlockWindowOpen       = "block_window_open"
	EventBlockWindowClosed     = "block_window_closed"
	EventBlockSucceeded        = "block_succeeded"
	EventCardRevealed          = "card_revealed"
	EventCardExchanged         = "card_exchanged"
	EventPlayerEliminated      = "player_eliminated"
	EventExchangeCardsDrawn    = "exchange_cards_drawn"
	EventExchangeCompleted     = "exchange_completed"
	EventPlayerJoined          = "player_joined"
	EventGameOver              = "game_over"
)

type GameStartedPayload struct {
	Code             string `json:"code"`
	CurrentPlayerUid string `json:"current_player_uid"`
}

type TurnStartedPayload struct {
	CurrentPlayerUid      string `json:"current_player_uid"`
	CurrentPlayerUserName string `json:"current_player_user_name"`
	MustCoup              bool   `json:"must_coup"`
}

type ActionDeclaredPayload struct {
	ActorUid      string            `json:"actor_uid"`
	ActorUserName string            `json:"actor_user_name"`
	Action        domain.ActionType `json:"action"`
	TargetUid     string            `json:"target_uid,omitempty"`
	ClaimedRole   domain.Role       `json:"claimed_role,omitempty"`
	Challengeable bool              `json:"challengeable"`
	Blockable     bool              `json:"blockable"`
	ResolvesAt    time.Time         `json:"resolves_at"`
}

type ActionCompletedPayload struct {
	ActorUid  string            `json:"actor_uid"`
	Action    domain.ActionType `json:"action"`
	TargetUid string            `json:"target_uid,omitempty"`
}

type ActionCancelledPayload struct {
	Action domain.ActionType `json:"action"`
}

type ActionBlockedPayload struct {
	Action     domain.ActionType `json:"action"`
	BlockerUid string            `json:"blocker_uid"`
}

type CoinsChangedPayload struct {
	PlayerUid string `json:"player_uid"`
	NewCoins  int    `json:"new_coins"`
	Reason    string `json:"reason"`
}

type ChallengeDeclaredPayload struct {
	ChallengerUid      string `json:"challenger_uid"`
	ChallengerUserName string `json:"challenger_user_name"`
	TargetUid          string `json:"target_uid"`
	ChallengeType      string `json:"challenge_type"` // "action" or "block"
}

type ChallengeResolvedPayload struct {
	ChallengerUid string `json:"challenger_uid"`
	LoserUid      string `json:"loser_uid"`
}

type BlockDeclaredPayload struct {
	BlockerUid      string            `json:"blocker_uid"`
	BlockerUserName string            `json:"blocker_user_name"`
	BlockingRole    domain.Role       `json:"blocking_role"`
	Action          domain.ActionType `json:"action"`
	ResolvesAt      time.Time         `json:"resolves_at"`
}

type BlockWindowOpenPayload struct {
	Action     domain.ActionType `json:"action"`
	ResolvesAt time.Time         `json:"resolves_at"`
}

type BlockSucceededPayload struct {
	BlockerUid string `json:"blocker_uid"`
}

type CardRevealedPayload struct {
	PlayerUid      string      `json:"player_uid"`
	Card           domain.Role `json:"card"`
	CardsRemaining int         `json:"cards_remaining"`
}

type CardExchangedPayload struct {
	PlayerUid string `json:"player_uid"`
	Reason    string `json:"reason"`
}

type PlayerEliminatedPayload struct {
	PlayerUid string `json:"player_uid"`
	UserName  string `json:"user_name"`
}

type ExchangeCardsDrawnPayload struct {
	Cards      []domain.Role `json:"cards"`
	MustChoose int           `json:"must_choose"`
}

type ExchangeCompletedPayload struct {
	PlayerUid string `json:"player_uid"`
}

type PlayerJoinedPayload struct {
	PlayerUid string `json:"player_uid"`
	UserName  string `json:"user_name"`
}

type GameOverPayload struct {
	WinnerUid      string `json:"winner_uid"`
	WinnerUserName string `json:"winner_user_name"`
}
