package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"coup/internal/config"
	"coup/internal/domain"
	"coup/internal/ports"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// Service is the session engine. Every externally triggered operation is a
// read-modify-write of the full session document, serialized per session code
// by an internal keyed mutex; timers and player requests contend on the same
// lock, so transitions within one session are totally ordered.
type Service struct {
	store    ports.SessionStore
	notifier ports.Notifier
	logger   runtime.Logger
	cfg      config.GameConfig

	sched *Scheduler

	rng *rand.Rand
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Options tweak the engine for tests; zero values select production defaults.
type Options struct {
	RNG    *rand.Rand
	Now    func() time.Time
	Config *config.GameConfig
}

// NewService constructs the engine around its store and notifier ports.
func NewService(store ports.SessionStore, notifier ports.Notifier, logger runtime.Logger, opts Options) *Service {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cfg := config.GetGameConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	s := &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		rng:      rng,
		now:      now,
		locks:    make(map[string]*sync.Mutex),
	}
	s.sched = NewScheduler(func(code string) {
		s.AutoResolve(context.Background(), code)
	})
	return s
}

// Scheduler exposes the engine's auto-resolution scheduler, mainly so the
// process can shut it down cleanly.
func (s *Service) Scheduler() *Scheduler {
	return s.sched
}

// lockSession takes the per-code mutex and returns its unlock func.
func (s *Service) lockSession(code string) func() {
	s.mu.Lock()
	l, ok := s.locks[code]
	if !ok {
		l = &sync.Mutex{}
		s.locks[code] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// load fetches the session document, mapping the store's not-found to the
// typed engine error.
func (s *Service) load(ctx context.Context, code string) (*domain.Session, error) {
	sess, err := s.store.Load(ctx, code)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

// SessionState returns a snapshot of the session document. Callers that need
// a per-viewer projection sanitize it at the transport layer.
func (s *Service) SessionState(ctx context.Context, code string) (*domain.Session, error) {
	unlock := s.lockSession(code)
	defer unlock()
	return s.load(ctx, code)
}

// emit broadcasts an event to the whole session. Delivery failures are logged
// and swallowed; notifications never roll back state.
func (s *Service) emit(ctx context.Context, code, event string, payload any) {
	if err := s.notifier.Broadcast(ctx, code, event, payload); err != nil {
		s.logger.Warn("broadcast %s to session %s failed: %v", event, code, err)
	}
}

// emitTo sends an event to a single player.
func (s *Service) emitTo(ctx context.Context, code, uid, event string, payload any) {
	if err := s.notifier.BroadcastToPlayer(ctx, code, uid, event, payload); err != nil {
		s.logger.Warn("broadcast %s to player %s in session %s failed: %v", event, uid, code, err)
	}
}

// appendHistory records a line in the session's public action log, capped at
// the configured limit.
func (s *Service) appendHistory(sess *domain.Session, kind, actorUid, targetUid, format string, args ...any) {
	entry := domain.HistoryEntry{
		ID:          uuid.NewString(),
		Kind:        kind,
		ActorUid:    actorUid,
		TargetUid:   targetUid,
		Description: fmt.Sprintf(format, args...),
		Timestamp:   s.now(),
	}
	sess.History = append(sess.History, entry)
	if limit := s.cfg.HistoryLimit; limit > 0 && len(sess.History) > limit {
		sess.History = sess.History[len(sess.History)-limit:]
	}
}

// userName resolves a display name for history lines and event payloads.
func userName(sess *domain.Session, uid string) string {
	if p := sess.PlayerByUid(uid); p != nil {
		return p.UserName
	}
	return uid
}
