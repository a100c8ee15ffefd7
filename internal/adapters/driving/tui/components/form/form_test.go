package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeString(f *CriteriaForm, s string) *CriteriaForm {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestCriteriaForm_StartsOnFirstField(t *testing.T) {
	f := NewCriteriaForm(nil)
	assert.Equal(t, 0, f.Focused())
	assert.True(t, f.IsEmpty())
}

func TestCriteriaForm_TypingFillsFocusedField(t *testing.T) {
	f := NewCriteriaForm(nil)

	f = typeString(f, "64-68")

	assert.Equal(t, "64-68", f.Value(FieldHeight))
	assert.False(t, f.IsEmpty())
}

func TestCriteriaForm_NextWraps(t *testing.T) {
	f := NewCriteriaForm(nil)

	for i := 0; i < 8; i++ {
		f.Next()
	}

	assert.Equal(t, 0, f.Focused())
}

func TestCriteriaForm_PrevWraps(t *testing.T) {
	f := NewCriteriaForm(nil)

	f.Prev()

	assert.Equal(t, 7, f.Focused())
}

func TestCriteriaForm_SetValue(t *testing.T) {
	f := NewCriteriaForm(nil)

	f.SetValue(FieldState, "CA")

	assert.Equal(t, "CA", f.Value(FieldState))
	assert.Equal(t, "", f.Value("nosuch"))
}

func TestCriteriaForm_Reset(t *testing.T) {
	f := NewCriteriaForm(nil)
	f.SetValue(FieldSex, "female")
	f.Next()

	f.Reset()

	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Focused())
}

func TestCriteriaForm_ViewShowsLabels(t *testing.T) {
	f := NewCriteriaForm(nil)

	out := f.View()

	assert.Contains(t, out, "Height:")
	assert.Contains(t, out, "Marks:")
}
