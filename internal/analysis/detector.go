package analysis

import (
	"reifscan/internal/logging"
)

// contextRadius is how many characters of surrounding statement text are
// kept on each side of a pattern hit in the context snippet.
const contextRadius = 20

// Detect scans the statement against every catalog entry's detection
// patterns, case-insensitive, and returns one match per hit entry in
// catalog order (not order of appearance in the statement). An entry
// matches at most once: its first hitting pattern supplies the context
// snippet and later patterns are not checked.
//
// Results for an exact statement string are memoized for the engine's
// lifetime. Callers must not mutate the returned slice.
func (e *Engine) Detect(statement string) []DetectionMatch {
	e.mu.RLock()
	cached, ok := e.cache[statement]
	e.mu.RUnlock()
	if ok {
		return cached
	}

	var found []DetectionMatch
	for _, term := range e.catalog.Terms() {
		entry, _ := e.catalog.Get(term)
		for _, re := range entry.Compiled() {
			loc := re.FindStringIndex(statement)
			if loc == nil {
				continue
			}
			found = append(found, DetectionMatch{
				Term:                  entry.Term,
				ReifiedAs:             entry.ReifiedAs,
				FunctionalForm:        entry.FunctionalForm,
				ValueRange:            entry.ValueRange,
				DependsOn:             entry.DependsOn,
				InstitutionalFunction: entry.InstitutionalFunction,
				ContextSnippet:        snippet(statement, loc[0], loc[1]),
			})
			break // one match per entry regardless of further pattern hits
		}
	}

	e.mu.Lock()
	if prior, ok := e.cache[statement]; ok {
		// Lost a race; keep the first computed result.
		found = prior
	} else {
		e.cache[statement] = found
	}
	e.mu.Unlock()

	logging.AnalysisDebug("detect: %d metaphor(s) in %q", len(found), statement)
	return found
}

// snippet extracts the statement text around a match span, clamped to the
// statement bounds and wrapped in ellipsis markers.
func snippet(statement string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(statement) {
		to = len(statement)
	}
	return "..." + statement[from:to] + "..."
}
