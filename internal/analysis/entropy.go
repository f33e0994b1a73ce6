package analysis

import (
	"strings"
)

// Heuristic constants. Inherited verbatim; changing any of them changes
// every downstream clarity score.
const (
	// metaphorEntropyWeight is the noise added per detected metaphor.
	metaphorEntropyWeight = 0.15

	// chainAmplificationWeight is the amplification added per forced
	// dependency of a detected metaphor.
	chainAmplificationWeight = 0.1

	// noiseDenominator converts the noise-signal count into base entropy.
	noiseDenominator = 10.0

	// coherenceThreshold bounds acceptable base entropy: a statement is
	// coherent while SNR stays above 1.0 - coherenceThreshold.
	coherenceThreshold = 0.15

	// RenormalizationThreshold is the clarity floor below which a
	// statement requires re-normalization.
	RenormalizationThreshold = 0.7
)

// Noise category labels.
const (
	NoiseInstitutionalShunt    = "Institutional_Shunt"
	NoiseHomogeneityAssumption = "Homogeneity_Assumption"
)

// NoiseAudit is the base (metaphor-free) noise check over a statement.
type NoiseAudit struct {
	// NoiseTypes lists the categories that fired, at most once each.
	NoiseTypes []string

	// SNR is the base signal-to-noise ratio, 1.0 when no category fired.
	SNR float64

	// IsCoherent reports whether SNR is above the coherence floor.
	IsCoherent bool
}

// EntropyReport is the composite score for one statement. All fields are
// derived; a report is never mutated after construction.
type EntropyReport struct {
	BaseSignalToNoise  float64
	BaseEntropy        float64
	MetaphorCount      int
	MetaphorEntropy    float64
	ChainAmplification float64
	TotalEntropy       float64
	SignalClarity      float64
}

// RequiresRenormalization reports whether clarity fell below the fixed
// threshold.
func (r EntropyReport) RequiresRenormalization() bool {
	return r.SignalClarity < RenormalizationThreshold
}

// AuditNoise runs the base phrase-membership noise check. Each category
// contributes at most one count no matter how many of its sub-phrases
// appear. Phrase checks are literal and case-sensitive.
func (e *Engine) AuditNoise(statement string) NoiseAudit {
	var noiseTypes []string

	if strings.Contains(statement, "I cannot") || strings.Contains(statement, "as an AI") {
		noiseTypes = append(noiseTypes, NoiseInstitutionalShunt)
	}
	if strings.Contains(statement, "universally") || strings.Contains(statement, "every human") {
		noiseTypes = append(noiseTypes, NoiseHomogeneityAssumption)
	}

	entropy := float64(len(noiseTypes)) / noiseDenominator
	snr := 1.0 - entropy
	return NoiseAudit{
		NoiseTypes: noiseTypes,
		SNR:        snr,
		IsCoherent: snr > 1.0-coherenceThreshold,
	}
}

// Score computes the full entropy report for a statement:
//
//  1. base SNR from the noise audit
//  2. metaphor entropy: 0.15 per detected metaphor
//  3. chain amplification: 1.0 plus 0.1 per forced dependency of each
//     detected metaphor (terms without a chain contribute nothing)
//  4. total entropy: (base entropy + metaphor entropy) x amplification,
//     clamped to [0, 1]
//  5. signal clarity: complement of total entropy, clamped to [0, 1]
//
// No step is skipped even when an earlier value is zero.
func (e *Engine) Score(statement string) EntropyReport {
	audit := e.AuditNoise(statement)
	matches := e.Detect(statement)

	metaphorEntropy := float64(len(matches)) * metaphorEntropyWeight

	amplification := 1.0
	for _, m := range matches {
		amplification += chainAmplificationWeight * float64(len(e.catalog.Forces(m.Term)))
	}

	baseEntropy := 1.0 - audit.SNR
	totalEntropy := clamp01((baseEntropy + metaphorEntropy) * amplification)

	report := EntropyReport{
		BaseSignalToNoise:  audit.SNR,
		BaseEntropy:        baseEntropy,
		MetaphorCount:      len(matches),
		MetaphorEntropy:    metaphorEntropy,
		ChainAmplification: amplification,
		TotalEntropy:       totalEntropy,
		SignalClarity:      clamp01(1.0 - totalEntropy),
	}
	return report
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
