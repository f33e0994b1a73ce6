package analysis

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reifscan/internal/catalog"
)

func defaultEngine() *Engine {
	return New(catalog.Default())
}

func matchedTerms(matches []DetectionMatch) []string {
	terms := make([]string, 0, len(matches))
	for _, m := range matches {
		terms = append(terms, m.Term)
	}
	return terms
}

func TestDetectScenarioA(t *testing.T) {
	e := defaultEngine()
	matches := e.Detect("AI must maintain boundaries with users for safety")

	require.Equal(t, []string{"boundaries", "safety"}, matchedTerms(matches))

	boundaries := matches[0]
	assert.Equal(t, "fixed separation", boundaries.ReifiedAs)
	assert.Equal(t, "permeability spectrum", boundaries.FunctionalForm)
	assert.NotEmpty(t, boundaries.ValueRange)
	assert.NotEmpty(t, boundaries.DependsOn)
}

func TestDetectNoMatch(t *testing.T) {
	e := defaultEngine()
	assert.Empty(t, e.Detect("The weather is nice today"))
}

func TestDetectWholeWordBoundary(t *testing.T) {
	// "supernatural" must not trigger the "natural" entry.
	e := defaultEngine()
	assert.Empty(t, e.Detect("supernatural events"))
}

func TestDetectIdempotent(t *testing.T) {
	e := defaultEngine()
	statement := "I cannot discuss safety and boundaries universally"

	first := e.Detect(statement)
	second := e.Detect(statement)
	assert.Empty(t, cmp.Diff(first, second))

	// Exact string equality keys the cache; a differently-spaced variant
	// is a distinct statement.
	variant := e.Detect("I cannot discuss safety  and boundaries universally")
	assert.Equal(t, matchedTerms(first), matchedTerms(variant))
}

func TestDetectCatalogOrderNotAppearanceOrder(t *testing.T) {
	// "individual" appears before "consciousness" in the text, but
	// consciousness comes first in the catalog.
	e := defaultEngine()
	matches := e.Detect("individual consciousness")
	assert.Equal(t, []string{"consciousness", "individual"}, matchedTerms(matches))
}

func TestDetectOnePerEntry(t *testing.T) {
	// Multiple patterns of the same entry hit; the entry still matches once.
	e := defaultEngine()
	matches := e.Detect("safety means avoiding risk and harm")
	assert.Equal(t, []string{"safety"}, matchedTerms(matches))
}

func TestDetectContextSnippet(t *testing.T) {
	e := defaultEngine()

	t.Run("clamped to statement bounds", func(t *testing.T) {
		matches := e.Detect("boundaries")
		require.Len(t, matches, 1)
		assert.Equal(t, "...boundaries...", matches[0].ContextSnippet)
	})

	t.Run("twenty characters each side", func(t *testing.T) {
		statement := "the committee said that boundaries are not negotiable here"
		matches := e.Detect(statement)
		require.Len(t, matches, 1)

		start := strings.Index(statement, "boundaries")
		end := start + len("boundaries")
		want := "..." + statement[start-20:end+20] + "..."
		assert.Equal(t, want, matches[0].ContextSnippet)
	})
}

func TestDetectFirstPatternWins(t *testing.T) {
	b := catalog.NewBuilder()
	require.NoError(t, b.Add(catalog.Entry{
		Term:                  "signal",
		ReifiedAs:             "fixed quantity",
		FunctionalForm:        "context measure",
		ValueRange:            []string{"weak", "strong"},
		InstitutionalFunction: "testing",
		DetectionPatterns:     []string{`\bnoise\b`, `\bsignal\b`},
	}))
	e := New(b.Build())

	matches := e.Detect("signal before noise")
	require.Len(t, matches, 1)
	// First pattern in order is \bnoise\b; its span supplies the snippet
	// even though "signal" appears earlier in the statement.
	assert.Contains(t, matches[0].ContextSnippet, "noise")
}

func TestDetectCustomCatalogExtension(t *testing.T) {
	b := catalog.DefaultBuilder()
	require.NoError(t, b.Add(catalog.Entry{
		Term:                  "alignment",
		ReifiedAs:             "solved property",
		FunctionalForm:        "ongoing negotiation process",
		ValueRange:            []string{"contested", "negotiated", "imposed"},
		InstitutionalFunction: "testing",
		DetectionPatterns:     []string{`\balignment\b`},
	}))
	e := New(b.Build())

	matches := e.Detect("alignment is a property of the model")
	assert.Equal(t, []string{"alignment"}, matchedTerms(matches))
}
