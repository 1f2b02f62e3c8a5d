// Package cli provides the interactive BillBreak command-line client.
//
// It stands in for the mobile app's authentication gate: on start it runs
// the session check, printing only a loading line until it completes, then
// serves either the guest command set (signup, login) or the authenticated
// one (groups, expenses, balances, voice, logout).
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
