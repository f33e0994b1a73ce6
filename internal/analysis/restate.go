package analysis

import (
	"regexp"

	"reifscan/internal/logging"
)

// Restate rewrites the statement by replacing, for each match in order,
// the first whole-word case-insensitive occurrence of the match's term
// with its functional form, verbatim. Later substitutions see the text as
// already rewritten by earlier ones.
//
// Detection can fire on a variant phrase while the bare term never
// appears as a whole word; that substitution is a silent no-op by design.
func (e *Engine) Restate(statement string, matches []DetectionMatch) string {
	restated := statement
	for _, m := range matches {
		re := wordPattern(m.Term)
		loc := re.FindStringIndex(restated)
		if loc == nil {
			continue
		}
		restated = restated[:loc[0]] + m.FunctionalForm + restated[loc[1]:]
	}
	if restated != statement {
		logging.AnalysisDebug("restate: %q -> %q", statement, restated)
	}
	return restated
}

func wordPattern(term string) *regexp.Regexp {
	// QuoteMeta keeps multi-word or hyphenated terms literal.
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}
