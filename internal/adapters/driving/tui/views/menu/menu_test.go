package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/messages"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenu_Navigation(t *testing.T) {
	v := NewView(nil)

	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 2, v.Selected())

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 1, v.Selected())
}

func TestMenu_NavigationClamps(t *testing.T) {
	v := NewView(nil)

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Selected())

	for i := 0; i < 10; i++ {
		v, _ = v.Update(keyMsg("j"))
	}
	assert.Equal(t, 4, v.Selected())
}

func TestMenu_EnterSelectsView(t *testing.T) {
	v := NewView(nil)
	v, _ = v.Update(keyMsg("j")) // Sources

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSources, changed.View)
}

func TestMenu_QuitItem(t *testing.T) {
	v := NewView(nil)
	for i := 0; i < 4; i++ {
		v, _ = v.Update(keyMsg("j"))
	}

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMenu_ViewListsItems(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)

	out := v.View()

	assert.Contains(t, out, "Doefind")
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "History")
	assert.Contains(t, out, "Quit")
}
