package nakama

// RPC ids clients call.
const (
	RpcCreateSession = "coup_create_session"
	RpcJoinSession   = "coup_join_session"
	RpcStartSession  = "coup_start_session"
	RpcDeclareAction = "coup_declare_action"
	RpcChallenge     = "coup_challenge"
	RpcBlock         = "coup_block"
	RpcRevealCard    = "coup_reveal_card"
	RpcExchangeCards = "coup_exchange_cards"
	RpcSessionState  = "coup_session_state"
)

// Storage layout for session documents. Documents are system-owned so clients
// can never read hidden cards through the storage API.
const (
	StorageCollectionSessions = "coup_sessions"
)

// Stream addressing for session event broadcasts. Each session gets one
// stream, subject-keyed by its code.
const (
	StreamModeSession uint8 = 110
	StreamLabelGame         = "coup"
)

// NotificationCodeGameEvent tags targeted game events delivered through
// Nakama notifications.
const NotificationCodeGameEvent = 110
