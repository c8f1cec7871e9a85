package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/client/router"
)

// maxHops bounds how many view-triggered redirects one command may follow.
const maxHops = 4

// goTo navigates to target and mounts the resulting view, even when it is
// the one already mounted, so "dashboard" on the dashboard reloads it.
func (a *App) goTo(ctx context.Context, target string) {
	final, err := a.nav.Navigate(ctx, target)
	if err != nil {
		a.log.Warn(ctx, "navigation", "target", target, "error", err)
	}
	a.enter(ctx, final)
	a.settle(ctx)
}

// settle follows navigation the mounted view triggered on its own, such as
// a successful sign-in moving to the dashboard.
func (a *App) settle(ctx context.Context) {
	for range maxHops {
		loc := a.nav.Location()
		if loc == a.location {
			return
		}
		a.enter(ctx, loc)
	}
}

// enter tears down whatever is mounted and activates the view for loc.
func (a *App) enter(ctx context.Context, loc string) {
	a.teardown()
	a.location = loc

	route, _ := router.Match(loc)
	switch route.Path {
	case router.DashboardPath:
		a.dashboard.Activate(ctx)
		a.renderDashboard()
	case router.TablesPath:
		a.tables.Activate(ctx)
		a.renderTables()
	case router.VerifyEmailPrefix:
		a.verify.Activate(ctx, loc)
		a.renderVerify()
	case router.SignInPath:
		a.signIn.Mount(ctx)
		fmt.Fprintln(a.out, "Sign in with 'signin', or create an account with 'signup'.")
	case router.SignUpPath:
		a.signUp.Mount(ctx)
	}
}

func (a *App) teardown() {
	a.signUp.Teardown()
	a.signIn.Teardown()
	a.verify.Teardown()
	a.dashboard.Teardown()
	a.tables.Teardown()
}

// at reports whether the view for path is mounted, navigating there first
// when it is not. It is false when the guard redirected elsewhere.
func (a *App) at(ctx context.Context, path string) bool {
	if a.location != path {
		a.goTo(ctx, path)
	}
	return a.location == path
}
