// Package domain defines the core business entities for haste.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Payload: The outcome of a successful load or save
//   - RawKey: A key with an optional extension, as found in paths
//   - Language: The extension/content-type alias table
//   - ActionName: The user-invocable session actions
//   - AppSettings: Client configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
