package router

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

// Navigator holds the current location. Unknown locations fall through to
// the dashboard, which is itself guarded.
type Navigator struct {
	mu       sync.Mutex
	store    CredentialReader
	log      logging.Logger
	location string
}

func NewNavigator(store CredentialReader, log logging.Logger) *Navigator {
	return &Navigator{store: store, log: log}
}

// Navigate moves to target, or to the guard's redirect when target is
// protected and no credential is stored. It returns the final location.
func (n *Navigator) Navigate(ctx context.Context, target string) (string, error) {
	route, ok := Match(target)
	if !ok {
		n.log.Debug(ctx, "unknown location, falling back", "target", target)
		target, route = DashboardPath, Routes[0]
	}

	final := target
	var guardErr error
	if route.Protected {
		d, err := Guard(ctx, n.store, target)
		if err != nil {
			n.log.Warn(ctx, "credential lookup failed", "error", err)
			guardErr = err
		}
		if !d.Allowed {
			final = d.Redirect
		}
	}

	n.mu.Lock()
	n.location = final
	n.mu.Unlock()
	return final, guardErr
}

func (n *Navigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}
