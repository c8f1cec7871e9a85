package views

import (
	"context"
	"sync"
)

// Lifecycle ties in-flight work to a mounted view. Each mount gets a fresh
// context and generation; Teardown cancels the context and bumps the
// generation so late completions can tell they are stale.
type Lifecycle struct {
	mu     sync.Mutex
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// Mount starts a new generation, tearing down the previous one.
func (l *Lifecycle) Mount(parent context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	l.ctx, l.cancel = context.WithCancel(parent)
}

// Begin returns the context and generation work should run under. An
// unmounted view hands out an already cancelled context.
func (l *Lifecycle) Begin() (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx, l.gen
	}
	return l.ctx, l.gen
}

// Current reports whether gen is still the live, mounted generation.
func (l *Lifecycle) Current(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current(gen)
}

func (l *Lifecycle) current(gen uint64) bool {
	return l.cancel != nil && gen == l.gen && l.ctx.Err() == nil
}

// Commit runs fn only if gen is current, holding the lifecycle lock so a
// concurrent Teardown cannot interleave.
func (l *Lifecycle) Commit(gen uint64, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.current(gen) {
		return false
	}
	fn()
	return true
}

func (l *Lifecycle) Teardown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}
