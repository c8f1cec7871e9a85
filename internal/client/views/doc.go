// Package views holds the state behind each screen of the client: sign-up,
// sign-in, email verification, the dashboard and the contacts table.
//
// A view turns every failure of the operation it started into its own state
// (a fixed message, a re-enabled submit, a redirect); errors do not escape
// it. Work is bound to the view's Lifecycle, so a request that completes
// after the view was torn down changes nothing.
package views
