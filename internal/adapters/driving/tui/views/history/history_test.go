package history

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

type mockHistoryService struct {
	entries []domain.HistoryEntry
	err     error
	cleared bool
}

func (m *mockHistoryService) History(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	return m.entries, m.err
}

func (m *mockHistoryService) ClearHistory(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = true
	return nil
}

func testEntries() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{
			ID:          "e1",
			Criteria:    "sex=Female state=CA",
			Sources:     []string{"mock"},
			ResultCount: 2,
			ExecutedAt:  time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestHistory_InitLoadsEntries(t *testing.T) {
	svc := &mockHistoryService{entries: testEntries()}
	v := NewView(nil, svc)
	v.SetDimensions(80, 24)

	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.HistoryLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)

	v, _ = v.Update(loaded)
	out := v.View()
	assert.Contains(t, out, "sex=Female state=CA")
	assert.Contains(t, out, "2 result(s) from mock")
}

func TestHistory_NilServiceReportsError(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(80, 24)

	msg := v.Init()()
	loaded, ok := msg.(messages.HistoryLoaded)
	require.True(t, ok)
	assert.Error(t, loaded.Err)

	v, _ = v.Update(loaded)
	assert.Contains(t, v.View(), "history is not configured")
}

func TestHistory_ClearWipesEntries(t *testing.T) {
	svc := &mockHistoryService{entries: testEntries()}
	v := NewView(nil, svc)
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.HistoryLoaded{Entries: svc.entries})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)

	msg := cmd()
	cleared, ok := msg.(messages.HistoryCleared)
	require.True(t, ok)
	require.NoError(t, cleared.Err)
	assert.True(t, svc.cleared)

	v, _ = v.Update(cleared)
	assert.Contains(t, v.View(), "No search history")
}

func TestHistory_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil, &mockHistoryService{})
	v.SetDimensions(80, 24)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}
