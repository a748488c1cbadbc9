package ports

import "context"

// Notifier pushes machine-readable game events to connected clients. It is
// fired after every state-affecting operation; delivery is best effort and
// failures never roll back session state.
type Notifier interface {
	// Broadcast sends an event to everyone in the session.
	Broadcast(ctx context.Context, code, event string, payload any) error

	// BroadcastToPlayer sends an event to a single player, for payloads that
	// must stay hidden from the table (e.g. drawn exchange cards).
	BroadcastToPlayer(ctx context.Context, code, uid, event string, payload any) error
}
