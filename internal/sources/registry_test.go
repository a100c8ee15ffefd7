package sources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

type stubSource struct{ name string }

func (s *stubSource) Name() string                        { return s.name }
func (s *stubSource) IsAvailable(_ context.Context) bool  { return true }
func (s *stubSource) Search(_ context.Context, _ domain.Query) ([]domain.CandidateRecord, error) {
	return nil, nil
}
func (s *stubSource) GetRecord(_ context.Context, _ string) (domain.CandidateRecord, error) {
	return domain.CandidateRecord{}, domain.ErrNotFound
}

// TestRegistry_Get tests lookup by name
func TestRegistry_Get(t *testing.T) {
	r := NewRegistry(&stubSource{name: "mock"})

	src, err := r.Get("mock")
	require.NoError(t, err)
	assert.Equal(t, "mock", src.Name())

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownSource)
}

// TestRegistry_Order tests registration order is preserved
func TestRegistry_Order(t *testing.T) {
	r := NewRegistry(&stubSource{name: "b"}, &stubSource{name: "a"}, &stubSource{name: "c"})

	assert.Equal(t, []string{"b", "a", "c"}, r.Names())

	// Replacing keeps position.
	r.Register(&stubSource{name: "a"})
	assert.Equal(t, []string{"b", "a", "c"}, r.Names())
	assert.Len(t, r.All(), 3)
}
