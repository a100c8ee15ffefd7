// Package form provides the criteria entry form for the TUI.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/styles"
)

// Field names, also used as lookup keys for Value.
const (
	FieldHeight = "height"
	FieldWeight = "weight"
	FieldAge    = "age"
	FieldSex    = "sex"
	FieldRace   = "race"
	FieldState  = "state"
	FieldCity   = "city"
	FieldMarks  = "marks"
)

type field struct {
	name        string
	label       string
	placeholder string
	input       textinput.Model
}

// CriteriaForm is a vertical stack of labelled text inputs with a single
// focused field at a time.
type CriteriaForm struct {
	styles  *styles.Styles
	fields  []field
	focused int
	width   int
}

// NewCriteriaForm creates the search criteria form.
func NewCriteriaForm(s *styles.Styles) *CriteriaForm {
	if s == nil {
		s = styles.DefaultStyles()
	}

	specs := []struct {
		name, label, placeholder string
	}{
		{FieldHeight, "Height", `5'6" or 64-68`},
		{FieldWeight, "Weight", "140 or 120-150 lbs"},
		{FieldAge, "Age", "30 or 25-35"},
		{FieldSex, "Sex", "male / female / unknown"},
		{FieldRace, "Race", "e.g. White, Hispanic, Asian"},
		{FieldState, "State", "CA or California"},
		{FieldCity, "City", "optional"},
		{FieldMarks, "Marks", "tattoos, scars; separate with ;"},
	}

	fields := make([]field, 0, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.CharLimit = 128
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		fields = append(fields, field{
			name:        spec.name,
			label:       spec.label,
			placeholder: spec.placeholder,
			input:       ti,
		})
	}

	return &CriteriaForm{
		styles:  s,
		fields:  fields,
		focused: 0,
		width:   80,
	}
}

// Init initialises the form.
func (f *CriteriaForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the focused field.
func (f *CriteriaForm) Update(msg tea.Msg) (*CriteriaForm, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focused].input, cmd = f.fields[f.focused].input.Update(msg)
	return f, cmd
}

// View renders the form.
func (f *CriteriaForm) View() string {
	lines := make([]string, 0, len(f.fields))
	for i, fld := range f.fields {
		label := f.styles.Normal.Render(fld.label + ":")
		if i == f.focused {
			label = f.styles.Subtitle.Render(fld.label + ":")
		}
		lines = append(lines, label+"\n  "+fld.input.View())
	}
	return strings.Join(lines, "\n")
}

// Next moves focus to the next field, wrapping around.
func (f *CriteriaForm) Next() tea.Cmd {
	return f.setFocus((f.focused + 1) % len(f.fields))
}

// Prev moves focus to the previous field, wrapping around.
func (f *CriteriaForm) Prev() tea.Cmd {
	return f.setFocus((f.focused - 1 + len(f.fields)) % len(f.fields))
}

func (f *CriteriaForm) setFocus(index int) tea.Cmd {
	f.fields[f.focused].input.Blur()
	f.focused = index
	return f.fields[f.focused].input.Focus()
}

// Focused returns the index of the focused field.
func (f *CriteriaForm) Focused() int {
	return f.focused
}

// Value returns the trimmed value of the named field.
func (f *CriteriaForm) Value(name string) string {
	for _, fld := range f.fields {
		if fld.name == name {
			return strings.TrimSpace(fld.input.Value())
		}
	}
	return ""
}

// SetValue sets the value of the named field.
func (f *CriteriaForm) SetValue(name, value string) {
	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i].input.SetValue(value)
			return
		}
	}
}

// IsEmpty returns true when no field holds a value.
func (f *CriteriaForm) IsEmpty() bool {
	for _, fld := range f.fields {
		if strings.TrimSpace(fld.input.Value()) != "" {
			return false
		}
	}
	return true
}

// Reset clears every field and refocuses the first one.
func (f *CriteriaForm) Reset() tea.Cmd {
	for i := range f.fields {
		f.fields[i].input.Reset()
		f.fields[i].input.Blur()
	}
	f.focused = 0
	return f.fields[0].input.Focus()
}

// SetWidth sets the input widths.
func (f *CriteriaForm) SetWidth(width int) {
	f.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 60 {
		inputWidth = 60
	}
	for i := range f.fields {
		f.fields[i].input.Width = inputWidth
	}
}
