package profile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
	"github.com/harisfebriyan12/kehadiran1/internal/session"
)

// RoleRepository is the slice of profile storage the resolver needs.
type RoleRepository interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

type cacheEntry struct {
	role role.Role
	seq  uint64
}

// Resolver resolves and caches the role behind a user id. A lookup failure
// resolves to role.Unknown, it is logged and never propagated as an error.
// Each resolution carries a sequence number so a slow lookup that completes
// after a newer one cannot overwrite the newer result.
type Resolver struct {
	repo   RoleRepository
	logger *slog.Logger

	mu    sync.Mutex
	seq   uint64
	cache map[string]cacheEntry
}

func NewResolver(repo RoleRepository, logger *slog.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
		cache:  make(map[string]cacheEntry),
	}
}

// ResolveRole returns the cached role for a user, fetching it on a miss.
func (r *Resolver) ResolveRole(ctx context.Context, userID string) role.Role {
	if userID == "" {
		return role.Unknown
	}

	r.mu.Lock()
	if entry, ok := r.cache[userID]; ok {
		r.mu.Unlock()
		return entry.role
	}
	r.mu.Unlock()

	return r.Refresh(ctx, userID)
}

// Refresh fetches the role from storage, bypassing the cache. The result is
// cached unless a newer resolution for the same user already landed; the
// stale result is then dropped and the newer role returned. role.Unknown is
// never cached so the next request retries the lookup.
func (r *Resolver) Refresh(ctx context.Context, userID string) role.Role {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	raw, err := r.repo.GetRole(ctx, userID)
	if err != nil {
		r.logger.Warn("role resolution failed", "user_id", userID, "error", err)
		return role.Unknown
	}
	resolved := role.Parse(raw)

	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.cache[userID]; ok && entry.seq > seq {
		return entry.role
	}
	r.cache[userID] = cacheEntry{role: resolved, seq: seq}
	return resolved
}

// Invalidate drops the cached role for a user.
func (r *Resolver) Invalidate(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, userID)
}

// HandleAuthEvent keeps the cache in step with auth-state transitions. Any
// transition drops the cached role so the next request sees a fresh one.
func (r *Resolver) HandleAuthEvent(ev session.AuthEvent) {
	if ev.UserID == "" {
		return
	}
	r.Invalidate(ev.UserID)
}
