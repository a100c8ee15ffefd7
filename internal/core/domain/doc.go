// Package domain defines the core business entities for doefind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CandidateRecord: An unidentified-person case from a source database
//   - Query: Search criteria (physical attributes, location, date range)
//   - MatchResult: A scored candidate with human-readable match reasons
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
