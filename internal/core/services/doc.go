// Package services implements the driving port interfaces.
// Services contain the core matching and search logic and orchestrate
// calls to driven ports (case sources, history, configuration).
package services
