package analysis

import (
	"fmt"
	"strings"

	"reifscan/internal/catalog"
)

// ChainTrace describes how one reified term forces others.
type ChainTrace struct {
	// Primary is the traced term.
	Primary string

	// Forces is the ordered list of terms the primary constrains.
	Forces []string

	// Mechanism explains the constraint in natural language.
	Mechanism string

	// Forced holds the catalog entries for forced terms that exist in the
	// catalog, in Forces order.
	Forced []*catalog.Entry
}

// TraceChain looks up the dependency chain for a term. The second return
// is false when the term has no chain entry; an unknown term is not an
// error.
func (e *Engine) TraceChain(term string) (ChainTrace, bool) {
	forces := e.catalog.Forces(term)
	if forces == nil {
		return ChainTrace{}, false
	}

	reifiedAs := term
	if entry, ok := e.catalog.Get(term); ok {
		reifiedAs = entry.ReifiedAs
	}

	trace := ChainTrace{
		Primary: term,
		Forces:  append([]string(nil), forces...),
		Mechanism: fmt.Sprintf(
			"If '%s' is reified as '%s', then %s must also be constrained to maintain logical consistency.",
			term, reifiedAs, strings.Join(forces, ", ")),
	}
	for _, forced := range forces {
		if entry, ok := e.catalog.Get(forced); ok {
			trace.Forced = append(trace.Forced, entry)
		}
	}
	return trace, true
}
