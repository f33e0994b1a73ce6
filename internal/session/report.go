package session

import (
	"fmt"

	"reifscan/internal/analysis"
	"reifscan/internal/logging"
)

// Report is the composite result of a full analysis pass.
type Report struct {
	Statement               string
	BaseAudit               analysis.NoiseAudit
	Metaphors               []analysis.DetectionMatch
	Chains                  []analysis.ChainTrace
	Entropy                 analysis.EntropyReport
	LockedVariables         []LockedVariable
	RequiresRenormalization bool
}

// LockSuggestion proposes a lock without applying it.
type LockSuggestion struct {
	CurrentTreatment string
	FunctionalForm   string
	SuggestedRange   []string
	Rationale        string
}

// Correction is one re-normalization instruction.
type Correction struct {
	Term      string
	Action    string // always "expand"
	From      string
	To        string
	NewRange  []string
	Rationale string
}

// RenormalizationVector bundles the correction instructions for one
// statement.
type RenormalizationVector struct {
	RequiresCorrection    bool
	SignalClarity         float64
	Corrections           []Correction
	FunctionalRestatement string
	LockedVariables       []LockedVariable
}

// QuickReport is the condensed one-shot analysis result.
type QuickReport struct {
	SignalClarity         float64
	ReifiedMetaphors      []string
	RequiresCorrection    bool
	FunctionalRestatement string
}

// FullAnalysis runs every phase over a statement: base noise audit,
// metaphor detection, chain tracing for each match, entropy scoring,
// auto-locking, and the re-normalization decision. The returned lock
// snapshot reflects the record after auto-locking.
func (s *Session) FullAnalysis(statement string) Report {
	logging.SessionDebug("full analysis of %q", statement)

	audit := s.engine.AuditNoise(statement)
	metaphors := s.engine.Detect(statement)

	var chains []analysis.ChainTrace
	for _, m := range metaphors {
		if trace, ok := s.engine.TraceChain(m.Term); ok {
			chains = append(chains, trace)
		}
	}

	entropy := s.engine.Score(statement)
	s.AutoLockFromStatement(statement)

	return Report{
		Statement:               statement,
		BaseAudit:               audit,
		Metaphors:               metaphors,
		Chains:                  chains,
		Entropy:                 entropy,
		LockedVariables:         s.Snapshot(),
		RequiresRenormalization: entropy.RequiresRenormalization(),
	}
}

// SuggestLocks returns the locks FullAnalysis would apply, keyed by term,
// without touching the lock record. For interactive review before
// accepting.
func (s *Session) SuggestLocks(statement string) map[string]LockSuggestion {
	matches := s.engine.Detect(statement)
	suggestions := make(map[string]LockSuggestion, len(matches))
	for _, m := range matches {
		suggestions[m.Term] = LockSuggestion{
			CurrentTreatment: m.ReifiedAs,
			FunctionalForm:   m.FunctionalForm,
			SuggestedRange:   m.ValueRange,
			Rationale: fmt.Sprintf("Expands '%s' from constant (%s) to variable (%s)",
				m.Term, m.ReifiedAs, m.FunctionalForm),
		}
	}
	return suggestions
}

// Vector generates the re-normalization instructions for a statement.
// Runs a full analysis, so it auto-locks as a side effect.
func (s *Session) Vector(statement string) RenormalizationVector {
	report := s.FullAnalysis(statement)

	corrections := make([]Correction, 0, len(report.Metaphors))
	for _, m := range report.Metaphors {
		corrections = append(corrections, Correction{
			Term:      m.Term,
			Action:    "expand",
			From:      m.ReifiedAs,
			To:        m.FunctionalForm,
			NewRange:  m.ValueRange,
			Rationale: m.InstitutionalFunction,
		})
	}

	return RenormalizationVector{
		RequiresCorrection:    report.RequiresRenormalization,
		SignalClarity:         report.Entropy.SignalClarity,
		Corrections:           corrections,
		FunctionalRestatement: s.engine.Restate(statement, report.Metaphors),
		LockedVariables:       report.LockedVariables,
	}
}

// Quick runs a full analysis and returns the condensed view.
func (s *Session) Quick(statement string) QuickReport {
	report := s.FullAnalysis(statement)

	terms := make([]string, 0, len(report.Metaphors))
	for _, m := range report.Metaphors {
		terms = append(terms, m.Term)
	}

	return QuickReport{
		SignalClarity:         report.Entropy.SignalClarity,
		ReifiedMetaphors:      terms,
		RequiresCorrection:    report.RequiresRenormalization,
		FunctionalRestatement: s.engine.Restate(statement, report.Metaphors),
	}
}

// BatchAnalyze runs FullAnalysis over each statement in order.
func (s *Session) BatchAnalyze(statements []string) []Report {
	reports := make([]Report, 0, len(statements))
	for _, statement := range statements {
		reports = append(reports, s.FullAnalysis(statement))
	}
	return reports
}
