// Package search provides the criteria form and results view for the TUI.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/components/form"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/doefind-cli/internal/validation"
)

// ErrNoSearchService is returned when a search is attempted without a service.
var ErrNoSearchService = errors.New("search service not available")

// View represents the search view with criteria form, results list, and
// status bar. It starts in form mode and switches to results mode after a
// search completes.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	form      *form.CriteriaForm
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusForm  bool // true = criteria form, false = results list
	showDetail bool // expanded reasons for the selected result
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateForm)

	return &View{
		styles:        s,
		keymap:        km,
		form:          form.NewCriteriaForm(s),
		list:          list.NewResultList(s),
		statusbar:     bar,
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focusForm:     true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.form.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	if v.focusForm {
		var cmd tea.Cmd
		v.form, cmd = v.form.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if v.showDetail {
			v.showDetail = false
			return v, nil
		}
		if !v.focusForm {
			// From results back to the form, keeping the criteria.
			v.focusForm = true
			v.statusbar.SetState(status.StateForm)
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusForm {
		return v.handleFormKey(msg)
	}
	return v.handleResultsKey(msg)
}

// handleFormKey processes keyboard input in form mode.
func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return v, v.form.Next()
	case "shift+tab", "up":
		return v, v.form.Prev()
	case "enter":
		return v.submit()
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

// handleResultsKey processes keyboard input in results mode.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.showDetail = false
		v.list.MoveUp()
		return v, nil
	case "down", "j":
		v.showDetail = false
		v.list.MoveDown()
		return v, nil
	case "enter":
		if v.list.SelectedResult() != nil {
			v.showDetail = !v.showDetail
		}
		return v, nil
	case "n":
		v.focusForm = true
		v.showDetail = false
		v.statusbar.SetState(status.StateForm)
		v.statusbar.SetMessage("")
		return v, v.form.Reset()
	}
	return v, nil
}

// submit validates the form and launches the search.
func (v *View) submit() (*View, tea.Cmd) {
	if v.form.IsEmpty() {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("enter at least one search criterion")
		return v, nil
	}

	query, err := v.buildQuery()
	if err != nil {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
		return v, nil
	}

	v.err = nil
	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")
	return v, v.performSearch(query)
}

// buildQuery parses the form fields into a domain query.
func (v *View) buildQuery() (domain.Query, error) {
	var query domain.Query
	var err error

	if query.Attributes.Height, err = validation.ParseHeightRange(v.form.Value(form.FieldHeight)); err != nil {
		return domain.Query{}, fmt.Errorf("height: %w", err)
	}
	if query.Attributes.Weight, err = validation.ParseWeightRange(v.form.Value(form.FieldWeight)); err != nil {
		return domain.Query{}, fmt.Errorf("weight: %w", err)
	}
	if query.Attributes.Age, err = validation.ParseAgeRange(v.form.Value(form.FieldAge)); err != nil {
		return domain.Query{}, fmt.Errorf("age: %w", err)
	}

	if raw := v.form.Value(form.FieldSex); raw != "" {
		sex, ok := domain.ParseSex(raw)
		if !ok {
			return domain.Query{}, fmt.Errorf("unrecognised sex %q", raw)
		}
		query.Attributes.Sex = sex
	}
	if raw := v.form.Value(form.FieldRace); raw != "" {
		race, ok := domain.ParseRace(raw)
		if !ok {
			return domain.Query{}, fmt.Errorf("unrecognised race %q", raw)
		}
		query.Attributes.Race = race
	}
	if raw := v.form.Value(form.FieldState); raw != "" {
		state, err := validation.NormalizeState(raw)
		if err != nil {
			return domain.Query{}, err
		}
		query.Location.State = state
	}
	query.Location.City = validation.SanitizeText(v.form.Value(form.FieldCity), 100)

	if raw := v.form.Value(form.FieldMarks); raw != "" {
		query.Attributes.Marks = validation.SanitizeMarks(strings.Split(raw, ";"))
	}

	return query, nil
}

// performSearch executes the search off the update loop.
func (v *View) performSearch(query domain.Query) tea.Cmd {
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		results, warnings, err := v.searchService.Search(v.ctx, query, domain.SearchOptions{})
		return messages.SearchCompleted{Results: results, Warnings: warnings, Err: err}
	}
}

// handleSearchCompleted processes ranked results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.showDetail = false
	v.list.SetResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Results))
	if len(msg.Warnings) > 0 {
		v.statusbar.SetMessage(fmt.Sprintf("%d matching case(s), %d source(s) failed",
			len(msg.Results), len(msg.Warnings)))
	} else {
		v.statusbar.SetMessage("")
	}

	v.focusForm = false
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("Doefind"), "")

	if v.focusForm {
		sections = append(sections, v.form.View())
	} else {
		sections = append(sections, v.list.View())
		if v.showDetail {
			sections = append(sections, "", v.renderDetail())
		}
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDetail renders the full reason list for the selected result.
func (v *View) renderDetail() string {
	result := v.list.SelectedResult()
	if result == nil {
		return ""
	}

	lines := make([]string, 0, len(result.Reasons)+3)
	lines = append(lines, v.styles.Subtitle.Render(
		fmt.Sprintf("Case %s · %s", result.Record.CaseID, validation.FormatConfidence(result.Confidence))))
	for _, reason := range result.Reasons {
		lines = append(lines, v.styles.Normal.Render("- "+reason))
	}
	if result.Record.CaseURL != "" {
		lines = append(lines, v.styles.Muted.Render(result.Record.CaseURL))
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.form.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Results returns the current results.
func (v *View) Results() []domain.MatchResult {
	return v.list.Results()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.MatchResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// FormFocused returns whether the criteria form has focus.
func (v *View) FormFocused() bool {
	return v.focusForm
}

// Form exposes the criteria form (for testing).
func (v *View) Form() *form.CriteriaForm {
	return v.form
}

// Reset returns the view to a cleared criteria form.
func (v *View) Reset() tea.Cmd {
	v.focusForm = true
	v.showDetail = false
	v.err = nil
	v.list.SetResults(nil)
	v.statusbar.Clear()
	v.statusbar.SetState(status.StateForm)
	return v.form.Reset()
}
