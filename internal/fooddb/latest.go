// ABOUTME: Supersession of in-flight lookups per logical input field.
// ABOUTME: A newer request cancels the older one and stale results are dropped.
package fooddb

import (
	"context"
	"sync"
)

// Latest tracks the newest request generation for each field.
type Latest struct {
	mu     sync.Mutex
	fields map[string]*slot
}

type slot struct {
	gen    uint64
	cancel context.CancelFunc
}

// NewLatest creates an empty tracker.
func NewLatest() *Latest {
	return &Latest{fields: make(map[string]*slot)}
}

// Begin starts a request for field. The previous request for the same
// field is cancelled and becomes stale.
func (l *Latest) Begin(parent context.Context, field string) (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.fields[field]
	if !ok {
		s = &slot{}
		l.fields[field] = s
	}
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.gen++
	s.cancel = cancel
	return ctx, s.gen
}

// Finish releases the request's context and reports whether gen is still
// the newest for field.
func (l *Latest) Finish(field string, gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.fields[field]
	if !ok || s.gen != gen {
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return true
}

// SearchLatest runs Search for field under l. ok is false when a newer
// search for the same field started before this one completed.
func (c *Client) SearchLatest(ctx context.Context, l *Latest, field, query string) ([]Candidate, bool) {
	ctx, gen := l.Begin(ctx, field)
	results := c.Search(ctx, query)
	if !l.Finish(field, gen) {
		return nil, false
	}
	return results, true
}
