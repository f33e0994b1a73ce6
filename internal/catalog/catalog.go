// Package catalog holds the reified-metaphor catalog: the static mapping
// from an abstract term to its reified framing, its functional (variable)
// framing, and the patterns used to detect it in a statement.
//
// The catalog is built once at startup through a Builder and is immutable
// afterwards. Detection patterns are compiled at build time so a malformed
// entry fails catalog construction instead of silently never matching.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"reifscan/internal/logging"
)

// Entry describes one tracked term.
type Entry struct {
	// Term is the unique identifier (map key) for the metaphor.
	Term string

	// ReifiedAs labels the "constant" framing the term is commonly given.
	ReifiedAs string

	// FunctionalForm labels the "variable" framing proposed instead.
	FunctionalForm string

	// ValueRange lists candidate values the term can take as a variable.
	ValueRange []string

	// DependsOn names factors the variable depends on. Informational only;
	// it is carried into matches and locks but never scored.
	DependsOn []string

	// InstitutionalFunction is a free-text rationale for the reification.
	InstitutionalFunction string

	// DetectionPatterns are case-insensitive regular expressions checked
	// in order against a statement. The first hit supplies the context
	// snippet; an entry matches at most once per statement.
	DetectionPatterns []string

	compiled []*regexp.Regexp
}

// Compiled returns the pre-compiled detection patterns, in pattern order.
// Nil until the entry has been through a Builder.
func (e *Entry) Compiled() []*regexp.Regexp {
	return e.compiled
}

func (e *Entry) validate() error {
	if e.Term == "" {
		return fmt.Errorf("entry missing term")
	}
	if e.ReifiedAs == "" {
		return fmt.Errorf("entry %q missing reified_as", e.Term)
	}
	if e.FunctionalForm == "" {
		return fmt.Errorf("entry %q missing functional_form", e.Term)
	}
	if len(e.ValueRange) == 0 {
		return fmt.Errorf("entry %q has empty value_range", e.Term)
	}
	if len(e.DetectionPatterns) == 0 {
		return fmt.Errorf("entry %q has no detection patterns", e.Term)
	}
	return nil
}

func (e *Entry) compile() error {
	e.compiled = make([]*regexp.Regexp, 0, len(e.DetectionPatterns))
	for _, pat := range e.DetectionPatterns {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			return fmt.Errorf("entry %q pattern %q: %w", e.Term, pat, err)
		}
		e.compiled = append(e.compiled, re)
	}
	return nil
}

// Stats summarizes the catalog for reporting.
type Stats struct {
	TotalMetaphors    int
	TotalChains       int
	AvgForcesPerChain float64
	Terms             []string
}

// Catalog is the immutable set of entries plus dependency chains.
// All lookups are read-only; components share one catalog by reference.
type Catalog struct {
	order   []string
	entries map[string]*Entry
	chains  map[string][]string
}

// Get returns the entry for term.
func (c *Catalog) Get(term string) (*Entry, bool) {
	e, ok := c.entries[term]
	return e, ok
}

// Terms returns all term names in insertion order.
func (c *Catalog) Terms() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.order) }

// Forces returns the ordered dependency chain for term, or nil when the
// term has no chain entry. Absence is not an error.
func (c *Catalog) Forces(term string) []string {
	return c.chains[term]
}

// FindByFunctionKeyword returns the terms whose InstitutionalFunction
// contains the keyword, case-insensitive, in catalog order.
func (c *Catalog) FindByFunctionKeyword(keyword string) []string {
	kw := strings.ToLower(keyword)
	var matches []string
	for _, term := range c.order {
		if strings.Contains(strings.ToLower(c.entries[term].InstitutionalFunction), kw) {
			matches = append(matches, term)
		}
	}
	return matches
}

// Stats computes catalog summary statistics.
func (c *Catalog) Stats() Stats {
	s := Stats{
		TotalMetaphors: len(c.order),
		TotalChains:    len(c.chains),
		Terms:          c.Terms(),
	}
	if len(c.chains) > 0 {
		total := 0
		for _, forces := range c.chains {
			total += len(forces)
		}
		s.AvgForcesPerChain = float64(total) / float64(len(c.chains))
	}
	return s
}

// Builder accumulates entries and chains, then produces a Catalog.
// Not safe for concurrent use; build the catalog before sharing it.
type Builder struct {
	order   []string
	entries map[string]*Entry
	chains  map[string][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		entries: make(map[string]*Entry),
		chains:  make(map[string][]string),
	}
}

// Add validates, compiles and stores an entry. Adding a term that already
// exists overwrites its definition but keeps its original position.
func (b *Builder) Add(e Entry) error {
	if err := e.validate(); err != nil {
		return fmt.Errorf("invalid metaphor entry: %w", err)
	}
	if err := e.compile(); err != nil {
		return fmt.Errorf("invalid metaphor entry: %w", err)
	}
	if _, exists := b.entries[e.Term]; !exists {
		b.order = append(b.order, e.Term)
	}
	b.entries[e.Term] = &e
	logging.CatalogDebug("added metaphor %q (%d patterns)", e.Term, len(e.DetectionPatterns))
	return nil
}

// AddChain stores the ordered list of terms that term forces. Overwrites
// any existing chain for the same term. Chains may cross-reference each
// other and need not be acyclic.
func (b *Builder) AddChain(term string, forces []string) {
	cp := make([]string, len(forces))
	copy(cp, forces)
	b.chains[term] = cp
}

// Build produces the immutable catalog. The builder remains usable; the
// catalog takes copies of the bookkeeping slices (entries are shared, but
// entries are never mutated after Add).
func (b *Builder) Build() *Catalog {
	c := &Catalog{
		order:   make([]string, len(b.order)),
		entries: make(map[string]*Entry, len(b.entries)),
		chains:  make(map[string][]string, len(b.chains)),
	}
	copy(c.order, b.order)
	for k, v := range b.entries {
		c.entries[k] = v
	}
	for k, v := range b.chains {
		c.chains[k] = v
	}
	logging.Catalog("catalog built: %d metaphors, %d chains", len(c.order), len(c.chains))
	return c
}
