// Package history provides the past-searches view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driving"
)

// listLimit caps how many entries the view loads.
const listLimit = 50

var errNoHistory = errors.New("history is not configured")

// View lists recent searches, newest first.
type View struct {
	styles  *styles.Styles
	history driving.HistoryService
	ctx     context.Context

	entries  []domain.HistoryEntry
	selected int
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for store calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init kicks off loading the history.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return v.loadHistory()
}

func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if v.history == nil {
			return messages.HistoryLoaded{Err: errNoHistory}
		}
		entries, err := v.history.History(v.ctx, listLimit)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

func (v *View) clearHistory() tea.Cmd {
	return func() tea.Msg {
		if v.history == nil {
			return messages.HistoryCleared{Err: errNoHistory}
		}
		return messages.HistoryCleared{Err: v.history.ClearHistory(v.ctx)}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.loading = false
		v.entries = msg.Entries
		v.err = msg.Err
		v.selected = 0
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.entries = nil
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil
		case "down", "j":
			if v.selected < len(v.entries)-1 {
				v.selected++
			}
			return v, nil
		case "c":
			return v, v.clearHistory()
		case "r":
			v.loading = true
			return v, v.loadHistory()
		}
	}

	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Search History"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No search history"))
	default:
		for i, entry := range v.entries {
			cursor := "  "
			line := v.styles.Normal
			if i == v.selected {
				cursor = "> "
				line = v.styles.Subtitle
			}
			b.WriteString(cursor + line.Render(
				entry.ExecutedAt.Local().Format("2006-01-02 15:04")+"  "+entry.Criteria) + "\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
				"    %d result(s) from %s", entry.ResultCount, strings.Join(entry.Sources, ", "))) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[c] Clear  [r] Refresh  [esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the loaded entries (for testing).
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}
