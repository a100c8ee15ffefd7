// Package driving defines the primary ports of the application: the
// interfaces through which the CLI and TUI drive the core. Adapters
// under internal/adapters/driving depend on these interfaces, never on
// service implementations directly.
//
// Import rules:
//   - May import internal/core/domain
//   - Must not import services or adapters
package driving
