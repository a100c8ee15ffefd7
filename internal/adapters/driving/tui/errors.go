package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrMissingSourceCatalog is returned when the source catalog is not provided.
var ErrMissingSourceCatalog = errors.New("tui: source catalog is required")

// ErrNoHistoryService is returned by the history view when history is disabled.
var ErrNoHistoryService = errors.New("tui: history service is not configured")
