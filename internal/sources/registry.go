// Package sources wires the case-database adapters into a catalog the
// core can search. Each subpackage implements driven.CaseSource for one
// upstream provider.
package sources

import (
	"fmt"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.SourceCatalog = (*Registry)(nil)

// Registry is an ordered, name-keyed collection of case sources.
// Registration order is preserved so searches and listings are stable.
type Registry struct {
	names   []string
	sources map[string]driven.CaseSource
}

// NewRegistry creates a registry holding the given sources.
func NewRegistry(sources ...driven.CaseSource) *Registry {
	r := &Registry{sources: make(map[string]driven.CaseSource)}
	for _, src := range sources {
		r.Register(src)
	}
	return r
}

// Register adds a source. Re-registering a name replaces the source but
// keeps its original position.
func (r *Registry) Register(src driven.CaseSource) {
	name := src.Name()
	if _, exists := r.sources[name]; !exists {
		r.names = append(r.names, name)
	}
	r.sources[name] = src
}

// Get returns the source registered under name.
func (r *Registry) Get(name string) (driven.CaseSource, error) {
	src, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("source %q: %w", name, domain.ErrUnknownSource)
	}
	return src, nil
}

// All returns every registered source in registration order.
func (r *Registry) All() []driven.CaseSource {
	all := make([]driven.CaseSource, len(r.names))
	for i, name := range r.names {
		all[i] = r.sources[name]
	}
	return all
}

// Names returns the registered source names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}
