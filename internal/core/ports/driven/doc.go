// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: The remote paste store (load, create, raw)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the session degrades gracefully:
//
//   - Editor: The text widget. Without it the session keeps text in the document only.
//   - Presenter: Titles, messages and enabled actions. Without it state is only queryable.
//   - History: The location stack. Without it locations are not recorded.
//   - Opener: Browser and clipboard side effects. Without it raw/twitter report an error and nothing is copied.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
