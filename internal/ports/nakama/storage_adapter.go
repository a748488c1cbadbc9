package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"coup/internal/domain"
	"coup/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// sessionStorage is the slice of runtime.NakamaModule the store needs.
type sessionStorage interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// SessionStorageAdapter implements ports.SessionStore on Nakama's storage
// engine. One storage object per session, keyed by code, system-owned so
// hidden cards never leave the server through the storage API.
type SessionStorageAdapter struct {
	nk sessionStorage
}

// NewSessionStorageAdapter creates a new session store adapter.
func NewSessionStorageAdapter(nk sessionStorage) *SessionStorageAdapter {
	return &SessionStorageAdapter{nk: nk}
}

// Load fetches a session document by code.
func (a *SessionStorageAdapter) Load(ctx context.Context, code string) (*domain.Session, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: StorageCollectionSessions,
		Key:        code,
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", code, err)
	}
	if len(objects) == 0 {
		return nil, ports.ErrSessionNotFound
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(objects[0].Value), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", code, err)
	}
	return &sess, nil
}

// Save writes the full session document back.
func (a *SessionStorageAdapter) Save(ctx context.Context, sess *domain.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sess.Code, err)
	}
	if _, err := a.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      StorageCollectionSessions,
		Key:             sess.Code,
		Value:           string(value),
		PermissionRead:  0,
		PermissionWrite: 0,
	}}); err != nil {
		return fmt.Errorf("failed to write session %s: %w", sess.Code, err)
	}
	return nil
}

var _ ports.SessionStore = (*SessionStorageAdapter)(nil)
