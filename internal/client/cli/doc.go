// Package cli provides the interactive SecureVault command-line client.
//
// It wires configuration, the remote client, the record store, the session
// context and the flows behind an interactive REPL. A background watcher
// pings the server and shows online/offline in the prompt.
//
// Key features:
//   - Register / Login / Logout / password change
//   - List (with fuzzy search), show, add, edit and delete security keys
//   - Copy a value to the clipboard with auto-clear
//   - Dashboard stats, profile and vault export
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
