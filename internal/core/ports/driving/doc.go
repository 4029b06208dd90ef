// Package driving declares what the TUI, CLI and MCP adapters call into:
// the session controller with its action table, plus history and settings.
//
// Request values returned by the controller carry the store I/O so a UI can
// run it off its event loop and hand the Completion back.
package driving
