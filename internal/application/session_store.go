package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/avasseur/fitcoach-cli/internal/ports"
)

// SessionStore is the single source of truth for authentication state. It
// owns the persisted token (through a SessionRepository) and an identity
// channel: a replay-latest multicast, where new subscribers immediately
// receive the current user and every subscriber receives each change.
//
// The store is an injected instance living for the whole process; nothing
// else reads or writes the persisted token.
type SessionStore struct {
	repo ports.SessionRepository

	mu          sync.Mutex
	current     *domain.User
	subscribers map[int]func(*domain.User)
	nextSubID   int
}

func NewSessionStore(repo ports.SessionRepository) *SessionStore {
	return &SessionStore{
		repo:        repo,
		subscribers: map[int]func(*domain.User){},
	}
}

// SetSession persists the token, then broadcasts the user on the identity
// channel. The persisted write happens first so a subscriber re-reading
// storage can never observe a stale token.
func (s *SessionStore) SetSession(ctx context.Context, token string, user domain.User) error {
	if err := s.repo.Put(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}

	s.publish(&user)
	return nil
}

// ClearSession removes the persisted token and broadcasts absent. Clearing
// an already-cleared session is a no-op, which keeps concurrent
// session-death triggers idempotent.
func (s *SessionStore) ClearSession(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}

	s.publish(nil)
	return nil
}

// Token reads the persisted token. It never fails: any storage error
// degrades to absent, which at worst forces a re-login.
func (s *SessionStore) Token(ctx context.Context) (string, bool) {
	token, err := s.repo.Get(ctx)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// IsAuthenticated reports whether a token is present. This is a client-side
// heuristic only; the token's server-side validity is discovered lazily on
// the next authenticated request.
func (s *SessionStore) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

// CurrentUser returns the identity channel's latest value, nil when absent.
func (s *SessionStore) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn on the identity channel. fn is invoked
// synchronously with the current value before Subscribe returns, then once
// per subsequent change. The returned func unsubscribes.
func (s *SessionStore) Subscribe(fn func(*domain.User)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *SessionStore) publish(user *domain.User) {
	s.mu.Lock()
	s.current = user
	fns := make([]func(*domain.User), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
