// Package cli provides the interactive contactdesk command-line client.
//
// It wires configuration, local credential storage, the API client, the
// services and the views, and drives them from a REPL. Every command either
// moves to a location (the navigator applies the route guard) or acts on the
// mounted view, whose state is rendered afterwards.
//
// Key features:
//   - signup / signin / logout / verify / reset-password
//   - dashboard summary and the filterable contacts table
//   - add / edit / delete / show contacts
//   - export a report to a directory or an S3 bucket
//   - status of the stored credential and client request metrics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// On a terminal it uses readline with a persistent history; piped input is
// read line by line, so a script can drive the shell.
package cli
