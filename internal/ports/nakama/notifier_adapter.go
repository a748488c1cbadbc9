package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"coup/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// sessionStream is the slice of runtime.NakamaModule the notifier needs.
type sessionStream interface {
	StreamSend(mode uint8, subject, subcontext, label, data string, presences []runtime.Presence, reliable bool) error
	NotificationSend(ctx context.Context, userID, subject string, content map[string]interface{}, code int, sender string, persistent bool) error
}

// eventEnvelope is the wire shape for every pushed event.
type eventEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// StreamNotifierAdapter implements ports.Notifier on Nakama streams. Session
// broadcasts go over the session's stream; player-targeted events go through
// notifications so they reach the player even between socket reconnects.
type StreamNotifierAdapter struct {
	nk sessionStream
}

// NewStreamNotifierAdapter creates a new notifier adapter.
func NewStreamNotifierAdapter(nk sessionStream) *StreamNotifierAdapter {
	return &StreamNotifierAdapter{nk: nk}
}

// Broadcast pushes an event to everyone subscribed to the session stream.
func (a *StreamNotifierAdapter) Broadcast(ctx context.Context, code, event string, payload any) error {
	data, err := json.Marshal(eventEnvelope{Event: event, Data: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event, err)
	}
	if err := a.nk.StreamSend(StreamModeSession, code, "", StreamLabelGame, string(data), nil, true); err != nil {
		return fmt.Errorf("failed to send event %s to session %s: %w", event, code, err)
	}
	return nil
}

// BroadcastToPlayer delivers an event to a single player.
func (a *StreamNotifierAdapter) BroadcastToPlayer(ctx context.Context, code, uid, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event, err)
	}
	content := map[string]interface{}{
		"session_code": code,
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err == nil {
		content["data"] = decoded
	}
	if err := a.nk.NotificationSend(ctx, uid, event, content, NotificationCodeGameEvent, "", false); err != nil {
		return fmt.Errorf("failed to notify player %s in session %s: %w", uid, code, err)
	}
	return nil
}

var _ ports.Notifier = (*StreamNotifierAdapter)(nil)
