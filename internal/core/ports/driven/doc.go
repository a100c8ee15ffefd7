// Package driven defines the secondary ports of the application: the
// interfaces the core requires from infrastructure. Case databases,
// configuration, and search history all enter the core through these
// interfaces; adapters under internal/adapters/driven and
// internal/sources implement them.
//
// Import rules:
//   - May import internal/core/domain
//   - Must not import services or adapters
package driven
