// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the criteria form and results view.
	ViewSearch
	// ViewSources is the source availability view.
	ViewSources
	// ViewHistory is the past searches view.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewSources:
		return "sources"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SearchCompleted carries ranked results back to the model.
type SearchCompleted struct {
	Results  []domain.MatchResult
	Warnings []domain.SourceWarning
	Err      error
}

// SourceStatus pairs a source name with its probed availability.
type SourceStatus struct {
	Name      string
	Available bool
}

// SourcesLoaded carries the availability of every registered source.
type SourcesLoaded struct {
	Statuses []SourceStatus
}

// HistoryLoaded carries past searches from the history store.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// HistoryCleared signals the history was wiped.
type HistoryCleared struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
