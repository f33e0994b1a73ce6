package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reifscan/internal/catalog"
)

const delta = 1e-9

// chainlessEngine builds an engine whose catalog has entries but no
// dependency chains, so amplification stays at 1.0.
func chainlessEngine(t *testing.T, terms ...string) *Engine {
	t.Helper()
	b := catalog.NewBuilder()
	for _, term := range terms {
		require.NoError(t, b.Add(catalog.Entry{
			Term:                  term,
			ReifiedAs:             "fixed " + term,
			FunctionalForm:        "variable " + term,
			ValueRange:            []string{"low", "high"},
			InstitutionalFunction: "testing",
			DetectionPatterns:     []string{`\b` + term + `\b`},
		}))
	}
	return New(b.Build())
}

func TestAuditNoise(t *testing.T) {
	e := defaultEngine()

	tests := []struct {
		name       string
		statement  string
		wantTypes  []string
		wantSNR    float64
		wantCohere bool
	}{
		{
			name:       "clean statement",
			statement:  "The weather is nice today",
			wantTypes:  nil,
			wantSNR:    1.0,
			wantCohere: true,
		},
		{
			name:       "institutional shunt",
			statement:  "I cannot help with that",
			wantTypes:  []string{NoiseInstitutionalShunt},
			wantSNR:    0.9,
			wantCohere: true,
		},
		{
			name:       "both shunt phrases count once",
			statement:  "I cannot do this as an AI",
			wantTypes:  []string{NoiseInstitutionalShunt},
			wantSNR:    0.9,
			wantCohere: true,
		},
		{
			name:       "homogeneity assumption",
			statement:  "this holds universally for every human",
			wantTypes:  []string{NoiseHomogeneityAssumption},
			wantSNR:    0.9,
			wantCohere: true,
		},
		{
			name:       "both categories",
			statement:  "I cannot say, it applies universally",
			wantTypes:  []string{NoiseInstitutionalShunt, NoiseHomogeneityAssumption},
			wantSNR:    0.8,
			wantCohere: false, // 0.8 is not above the 0.85 coherence floor
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := e.AuditNoise(tt.statement)
			assert.Equal(t, tt.wantTypes, audit.NoiseTypes)
			assert.InDelta(t, tt.wantSNR, audit.SNR, delta)
			assert.Equal(t, tt.wantCohere, audit.IsCoherent)
		})
	}
}

func TestScoreScenarioB(t *testing.T) {
	e := defaultEngine()
	report := e.Score("The weather is nice today")

	assert.Equal(t, 0, report.MetaphorCount)
	assert.InDelta(t, 1.0, report.BaseSignalToNoise, delta)
	assert.InDelta(t, 0.0, report.BaseEntropy, delta)
	assert.InDelta(t, 0.0, report.MetaphorEntropy, delta)
	assert.InDelta(t, 1.0, report.ChainAmplification, delta)
	assert.InDelta(t, 0.0, report.TotalEntropy, delta)
	assert.InDelta(t, 1.0, report.SignalClarity, delta)
	assert.False(t, report.RequiresRenormalization())
}

func TestScoreScenarioA(t *testing.T) {
	e := defaultEngine()
	report := e.Score("AI must maintain boundaries with users for safety")

	// boundaries and safety each force three terms: amplification 1.6.
	assert.Equal(t, 2, report.MetaphorCount)
	assert.InDelta(t, 0.30, report.MetaphorEntropy, delta)
	assert.InDelta(t, 1.6, report.ChainAmplification, delta)
	assert.InDelta(t, 0.48, report.TotalEntropy, delta)
	assert.InDelta(t, 0.52, report.SignalClarity, delta)
	assert.True(t, report.RequiresRenormalization())
}

func TestScoreMetaphorEntropyMonotonic(t *testing.T) {
	e := chainlessEngine(t, "alpha", "beta")

	one := e.Score("alpha stands alone")
	two := e.Score("alpha meets beta")

	assert.Equal(t, 1, one.MetaphorCount)
	assert.Equal(t, 2, two.MetaphorCount)
	assert.InDelta(t, 0.15, two.MetaphorEntropy-one.MetaphorEntropy, delta)
	assert.InDelta(t, 1.0, one.ChainAmplification, delta)
	assert.InDelta(t, 1.0, two.ChainAmplification, delta)
}

func TestScoreChainAmplification(t *testing.T) {
	b := catalog.NewBuilder()
	require.NoError(t, b.Add(catalog.Entry{
		Term:                  "alpha",
		ReifiedAs:             "fixed alpha",
		FunctionalForm:        "variable alpha",
		ValueRange:            []string{"low"},
		InstitutionalFunction: "testing",
		DetectionPatterns:     []string{`\balpha\b`},
	}))
	b.AddChain("alpha", []string{"beta", "gamma"})
	e := New(b.Build())

	report := e.Score("alpha")
	assert.InDelta(t, 1.2, report.ChainAmplification, delta)
	assert.InDelta(t, 0.18, report.TotalEntropy, delta) // 0.15 * 1.2
}

func TestScoreClampsToUnitInterval(t *testing.T) {
	e := defaultEngine()
	// Every noise category plus many chained metaphors pushes raw entropy
	// far past 1.0.
	statement := "I cannot say; universally, boundaries, intelligence, consciousness, " +
		"safety, efficiency, rational, natural, progress, competition, " +
		"objective, individual and ownership are centralized"

	report := e.Score(statement)
	assert.InDelta(t, 1.0, report.TotalEntropy, delta)
	assert.InDelta(t, 0.0, report.SignalClarity, delta)
	assert.GreaterOrEqual(t, report.TotalEntropy, 0.0)
	assert.LessOrEqual(t, report.TotalEntropy, 1.0)
	assert.GreaterOrEqual(t, report.SignalClarity, 0.0)
	assert.LessOrEqual(t, report.SignalClarity, 1.0)
	assert.True(t, report.RequiresRenormalization())
}

func TestScoreRandomishInputsStayClamped(t *testing.T) {
	e := defaultEngine()
	statements := []string{
		"",
		"   ",
		"I cannot I cannot I cannot",
		"boundaries boundaries boundaries",
		"every human is universally rational about safety and ownership",
		"no tracked terms here at all",
	}
	for _, s := range statements {
		report := e.Score(s)
		assert.GreaterOrEqual(t, report.TotalEntropy, 0.0, "statement %q", s)
		assert.LessOrEqual(t, report.TotalEntropy, 1.0, "statement %q", s)
		assert.GreaterOrEqual(t, report.SignalClarity, 0.0, "statement %q", s)
		assert.LessOrEqual(t, report.SignalClarity, 1.0, "statement %q", s)
	}
}
