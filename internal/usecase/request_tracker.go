package usecase

import (
	"context"
	"sync"
)

// RequestTicket identifies one tracked request within its scope.
type RequestTicket struct {
	Scope   string
	Token   uint64
	tracker *RequestTracker
}

// IsLatest reports whether no newer request has begun in the same scope.
// An untracked ticket is always latest.
func (t RequestTicket) IsLatest() bool {
	if t.tracker == nil {
		return true
	}
	return t.tracker.IsLatest(t.Scope, t.Token)
}

type inflightRequest struct {
	token  uint64
	cancel context.CancelFunc
}

// RequestTracker keeps the newest in-flight request per scope. Starting a
// request cancels the previous one of the same scope so its late response can
// be dropped.
type RequestTracker struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]inflightRequest
}

func NewRequestTracker() *RequestTracker {
	return &RequestTracker{inflight: make(map[string]inflightRequest)}
}

// Begin registers a request for scope. The returned release func must be
// called when the request finishes. An empty scope is not tracked.
func (t *RequestTracker) Begin(ctx context.Context, scope string) (context.Context, RequestTicket, func()) {
	if scope == "" {
		return ctx, RequestTicket{}, func() {}
	}
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	t.seq++
	token := t.seq
	if prev, ok := t.inflight[scope]; ok {
		prev.cancel()
	}
	t.inflight[scope] = inflightRequest{token: token, cancel: cancel}
	t.mu.Unlock()

	release := func() {
		t.mu.Lock()
		if cur, ok := t.inflight[scope]; ok && cur.token == token {
			delete(t.inflight, scope)
		}
		t.mu.Unlock()
		cancel()
	}
	return ctx, RequestTicket{Scope: scope, Token: token, tracker: t}, release
}

// IsLatest reports whether token is the newest request of scope. It is
// meaningful until the request is released.
func (t *RequestTracker) IsLatest(scope string, token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	cur, ok := t.inflight[scope]
	return ok && cur.token == token
}
