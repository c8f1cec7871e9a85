// Package router maps locations to views and gates the protected ones.
//
// The guard only checks that an access credential is stored. It never
// validates the token and is not a security boundary: the backend
// authorizes every protected request on its own. The guard exists so a
// signed-out user lands on the sign-in view instead of a view that cannot
// load its data.
package router

import (
	"net/url"
	"strings"
)

const (
	SignInPath        = "/authentication/sign-in"
	SignUpPath        = "/authentication/sign-up"
	VerifyEmailPrefix = "/authentication/verify-email/"
	DashboardPath     = "/dashboard"
	TablesPath        = "/tables"
)

type Route struct {
	Name      string
	Path      string
	Protected bool
	// Prefix routes match any location below Path, e.g. a verification
	// link carrying its token as the last segment.
	Prefix bool
}

var Routes = []Route{
	{Name: "dashboard", Path: DashboardPath, Protected: true},
	{Name: "tables", Path: TablesPath, Protected: true},
	{Name: "sign-in", Path: SignInPath},
	{Name: "sign-up", Path: SignUpPath},
	{Name: "verify-email", Path: VerifyEmailPrefix, Prefix: true},
}

// Match finds the route for a location. Query and fragment are ignored, as
// is a single trailing slash on exact routes.
func Match(location string) (Route, bool) {
	p := location
	if u, err := url.Parse(location); err == nil {
		p = u.Path
	}

	for _, r := range Routes {
		if r.Prefix {
			if strings.HasPrefix(p, r.Path) || p+"/" == r.Path {
				return r, true
			}
			continue
		}
		if p == r.Path || p == r.Path+"/" {
			return r, true
		}
	}
	return Route{}, false
}

// VerifyEmailPath builds the location a verification link points to.
func VerifyEmailPath(token string) string {
	return VerifyEmailPrefix + url.PathEscape(token)
}
