package requestid

import (
	"context"
	"net/http"
	"sync"
)

type contextKey struct{}

// scope is the per-request storage shared by the middleware and handler code.
// It outlives the middleware's own frame: the request ID stays readable after
// the current slot has been cleared.
type scope struct {
	mu         sync.RWMutex
	id         ID
	current    string
	hasCurrent bool
}

// WithScope returns a context carrying an empty request scope. A context that
// already has one is returned unchanged.
func WithScope(ctx context.Context) context.Context {
	if scopeFrom(ctx) != nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, &scope{})
}

func scopeFrom(ctx context.Context) *scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(contextKey{}).(*scope)
	return s
}

// assign returns the stored ID, or stores and returns the one produced by gen.
// The second result reports whether an existing ID was reused.
func (s *scope) assign(gen func() ID) (ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id != "" {
		return s.id, true
	}
	s.id = gen()
	return s.id, false
}

func (s *scope) requestID() (ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id, s.id != ""
}

func (s *scope) setRequestID(id ID) {
	s.mu.Lock()
	s.id = id
	s.mu.Unlock()
}

func (s *scope) setCurrent(id string) {
	s.mu.Lock()
	s.current, s.hasCurrent = id, true
	s.mu.Unlock()
}

func (s *scope) getCurrent() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.hasCurrent
}

func (s *scope) clearCurrent() {
	s.mu.Lock()
	s.current, s.hasCurrent = "", false
	s.mu.Unlock()
}

// FromContext returns the request ID stored in ctx without creating one.
func FromContext(ctx context.Context) (ID, bool) {
	s := scopeFrom(ctx)
	if s == nil {
		return "", false
	}
	return s.requestID()
}

// FromRequest returns the ID of r, generating and storing a full UUID when the
// scope holds none yet. The middleware's configured generator is not used
// here. Without a scope the fresh ID cannot be stored and every call returns a
// different value.
func FromRequest(r *http.Request) ID {
	s := scopeFrom(r.Context())
	if s == nil {
		return ID(FullUUID())
	}
	id, _ := s.assign(func() ID { return ID(FullUUID()) })
	return id
}

// SetRequestID overwrites the request ID held by ctx's scope. It is a no-op
// when ctx has no scope.
func SetRequestID(ctx context.Context, id ID) {
	if s := scopeFrom(ctx); s != nil {
		s.setRequestID(id)
	}
}

// SetCurrent marks id as the current identifier of the request running with
// ctx. It is a no-op when ctx has no scope.
func SetCurrent(ctx context.Context, id string) {
	if s := scopeFrom(ctx); s != nil {
		s.setCurrent(id)
	}
}

// Current returns the current identifier, if one is set.
func Current(ctx context.Context) (string, bool) {
	s := scopeFrom(ctx)
	if s == nil {
		return "", false
	}
	return s.getCurrent()
}

// ClearCurrent removes the current identifier. Clearing an empty slot is
// allowed.
func ClearCurrent(ctx context.Context) {
	if s := scopeFrom(ctx); s != nil {
		s.clearCurrent()
	}
}
