// Package sources provides the source availability view for the TUI.
package sources

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
)

// View lists every registered case database and whether it is reachable.
type View struct {
	styles  *styles.Styles
	catalog driven.SourceCatalog
	ctx     context.Context

	statuses []messages.SourceStatus
	loading  bool
	width    int
	height   int
	ready    bool
}

// NewView creates a new sources view.
func NewView(s *styles.Styles, catalog driven.SourceCatalog) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		catalog: catalog,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for availability probes.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init kicks off the availability probe.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadSources()
}

// loadSources probes every source off the update loop.
func (v *View) loadSources() tea.Cmd {
	return func() tea.Msg {
		var statuses []messages.SourceStatus
		if v.catalog != nil {
			for _, source := range v.catalog.All() {
				statuses = append(statuses, messages.SourceStatus{
					Name:      source.Name(),
					Available: source.IsAvailable(v.ctx),
				})
			}
		}
		return messages.SourcesLoaded{Statuses: statuses}
	}
}

// Update handles messages for the sources view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SourcesLoaded:
		v.loading = false
		v.statuses = msg.Statuses
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "r":
			v.loading = true
			return v, v.loadSources()
		}
	}

	return v, nil
}

// View renders the sources view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Case Databases"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Checking availability..."))
	case len(v.statuses) == 0:
		b.WriteString(v.styles.Muted.Render("No sources registered"))
	default:
		for _, status := range v.statuses {
			marker := v.styles.Error.Render("✗ unavailable")
			if status.Available {
				marker = v.styles.Success.Render("✓ available")
			}
			b.WriteString("  " + v.styles.Normal.Render(padName(status.Name)) + marker + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] Refresh  [esc] Back"))

	return b.String()
}

func padName(name string) string {
	const width = 14
	if len(name) >= width {
		return name + " "
	}
	return name + strings.Repeat(" ", width-len(name))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Statuses returns the loaded statuses (for testing).
func (v *View) Statuses() []messages.SourceStatus {
	return v.statuses
}

// Loading returns whether a probe is in flight.
func (v *View) Loading() bool {
	return v.loading
}
