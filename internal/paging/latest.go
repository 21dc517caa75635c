package paging

import (
	"context"
	"sync"
)

// Latest tracks the newest in-flight request per key. Starting a new request
// for a key cancels the previous one, and a finished request can ask whether
// it is still the newest before its result is used.
type Latest struct {
	mu      sync.Mutex
	seq     uint64
	entries map[string]*latestEntry
}

type latestEntry struct {
	gen    uint64
	cancel context.CancelFunc
}

func NewLatest() *Latest {
	return &Latest{entries: make(map[string]*latestEntry)}
}

// Ticket identifies one request generation for a key. Generations are unique
// across keys and never reused. A nil *Ticket stands for an untracked request:
// it is always current and releasing it does nothing.
type Ticket struct {
	l   *Latest
	key string
	gen uint64
}

// Begin starts a new generation for key, cancelling the previous one, and
// returns a context that is cancelled when a newer generation begins or the
// ticket is released.
func (l *Latest) Begin(ctx context.Context, key string) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &latestEntry{}
		l.entries[key] = e
	} else if e.cancel != nil {
		e.cancel()
	}
	l.seq++
	e.gen = l.seq
	e.cancel = cancel
	return ctx, &Ticket{l: l, key: key, gen: e.gen}
}

// Current reports whether no newer generation has begun for the ticket's key.
func (t *Ticket) Current() bool {
	if t == nil {
		return true
	}
	t.l.mu.Lock()
	defer t.l.mu.Unlock()
	e, ok := t.l.entries[t.key]
	return ok && e.gen == t.gen
}

// Release cancels the ticket's context and forgets the key if the ticket is
// still the newest generation.
func (t *Ticket) Release() {
	if t == nil {
		return
	}
	t.l.mu.Lock()
	defer t.l.mu.Unlock()
	e, ok := t.l.entries[t.key]
	if !ok || e.gen != t.gen {
		return
	}
	e.cancel()
	delete(t.l.entries, t.key)
}

// Len is the number of keys with an in-flight request.
func (l *Latest) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
