// Package contacts turns the fetched contact collection into what the
// dashboard and table views display: a summary with per-day counts and a
// filtered table projection. Everything here is pure and side-effect free.
package contacts
