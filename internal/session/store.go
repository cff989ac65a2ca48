package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is proof of authentication plus user identity. The token is the
// JWT id (jti) of the access token the session was issued with.
type Session struct {
	Token    string
	UserID   string
	IssuedAt time.Time
}

type EventType string

const (
	EventLogin  EventType = "login"
	EventLogout EventType = "logout"
)

// AuthEvent is published to watchers on every auth-state transition.
type AuthEvent struct {
	Type   EventType
	UserID string
}

const keyPrefix = "kehadiran:session:"

// Store is the active-session registry. A token that is not registered (or
// whose registration expired or errored) is treated as "no session": lookup
// errors are never distinguished from absence, and an erroring credential is
// explicitly invalidated rather than left ambiguous.
type Store struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	closed   bool
	nextSub  int
	watchers map[int]func(AuthEvent)
}

func NewStore(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		client:   client,
		ttl:      ttl,
		logger:   logger,
		watchers: make(map[int]func(AuthEvent)),
	}
}

func sessionKey(token string) string {
	return keyPrefix + token
}

// Register records a freshly issued session and notifies watchers of the
// login transition.
func (s *Store) Register(ctx context.Context, sess Session) error {
	if sess.Token == "" || sess.UserID == "" {
		return fmt.Errorf("session token and user id are required")
	}

	if err := s.client.Set(ctx, sessionKey(sess.Token), sess.UserID, s.ttl).Err(); err != nil {
		s.logger.Error("failed to register session", "error", err, "user_id", sess.UserID)
		return fmt.Errorf("register session: %w", err)
	}

	s.notify(AuthEvent{Type: EventLogin, UserID: sess.UserID})
	return nil
}

// Current resolves the session behind a token. It returns nil for an absent,
// expired, or erroring session; on a lookup error the token is also
// invalidated so no stale credential lingers.
func (s *Store) Current(ctx context.Context, token string) *Session {
	if token == "" {
		return nil
	}

	userID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		s.logger.Error("session lookup failed, forcing sign-out", "error", err)
		s.Invalidate(ctx, token)
		return nil
	}

	return &Session{Token: token, UserID: userID}
}

// Invalidate removes a session and notifies watchers of the logout
// transition. Removing an already absent session is a no-op but still
// publishes the transition, mirroring an explicit sign-out of a stale
// credential.
func (s *Store) Invalidate(ctx context.Context, token string) {
	if token == "" {
		return
	}

	var userID string
	if v, err := s.client.Get(ctx, sessionKey(token)).Result(); err == nil {
		userID = v
	}

	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		s.logger.Warn("failed to delete session key", "error", err)
	}

	s.notify(AuthEvent{Type: EventLogout, UserID: userID})
}

// Watch registers a callback invoked on every future auth-state transition.
// The returned cancel func removes the subscription; once it returns the
// callback is guaranteed not to be invoked again.
func (s *Store) Watch(cb func(AuthEvent)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.watchers[id] = cb

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

// Close drops all watchers. No callback is invoked after Close returns.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.watchers = make(map[int]func(AuthEvent))
}

// notify runs callbacks under the lock so a cancelled or closed subscription
// can never observe a post-teardown invocation. Callbacks must not call back
// into the store.
func (s *Store) notify(ev AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, cb := range s.watchers {
		cb(ev)
	}
}
