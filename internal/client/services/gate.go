package services

import "golang.org/x/sync/semaphore"

// Gate lets one submission of a form run at a time. A second submit while
// the first is in flight is rejected rather than queued.
type Gate struct {
	sem *semaphore.Weighted
}

func NewGate() *Gate {
	return &Gate{sem: semaphore.NewWeighted(1)}
}

func (g *Gate) Do(fn func() error) error {
	if !g.sem.TryAcquire(1) {
		return ErrSubmissionInProgress
	}
	defer g.sem.Release(1)
	return fn()
}

// Busy reports whether a submission is in flight.
func (g *Gate) Busy() bool {
	if !g.sem.TryAcquire(1) {
		return true
	}
	g.sem.Release(1)
	return false
}
