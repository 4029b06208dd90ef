// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Session owns the active Document and its New/Locked transitions;
// ActionService exposes the action table that every UI binds to.
package services
