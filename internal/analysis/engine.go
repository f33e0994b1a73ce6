// Package analysis implements the statement-analysis engine: reified
// metaphor detection, dependency-chain tracing, institutional-entropy
// scoring and functional restatement, all over one immutable catalog.
//
// Every operation is a total function of the statement plus the catalog;
// nothing here returns an error under normal use. Absent lookups yield
// empty results.
package analysis

import (
	"sync"

	"reifscan/internal/catalog"
)

// DetectionMatch is one detected metaphor occurrence in a statement.
// It carries the catalog entry's fields plus the context the pattern
// matched in. Transient; owned by the call that produced it.
type DetectionMatch struct {
	Term                  string
	ReifiedAs             string
	FunctionalForm        string
	ValueRange            []string
	DependsOn             []string
	InstitutionalFunction string
	ContextSnippet        string
}

// Engine composes the detector, scorer and restater around a shared
// immutable catalog. The memoization cache is the only mutable state and
// is guarded for concurrent callers; population is idempotent, so two
// goroutines computing the same statement simply agree.
type Engine struct {
	catalog *catalog.Catalog

	mu    sync.RWMutex
	cache map[string][]DetectionMatch
}

// New creates an engine over the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog: cat,
		cache:   make(map[string][]DetectionMatch),
	}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }
