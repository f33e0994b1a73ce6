package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reifscan/internal/analysis"
	"reifscan/internal/session"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	phaseStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	termStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	detailStyle  = lipgloss.NewStyle().Faint(true)
	rulerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850"))
	clarityStyle = lipgloss.NewStyle().Bold(true)
)

func ruler(w io.Writer) {
	fmt.Fprintln(w, rulerStyle.Render(strings.Repeat("=", 72)))
}

// renderReport prints the full six-phase report, phase for phase the way
// the analysis runs: noise audit, detection, chains, entropy, locks,
// re-normalization.
func renderReport(w io.Writer, r session.Report, restatement string) {
	ruler(w)
	fmt.Fprintln(w, headerStyle.Render("REIFIED METAPHOR ANALYSIS"))
	ruler(w)
	fmt.Fprintf(w, "\nSTATEMENT: %s\n\n", r.Statement)

	fmt.Fprintln(w, phaseStyle.Render("--- PHASE 1: BASE NOISE AUDIT ---"))
	fmt.Fprintf(w, "Noise types: %v\n", r.BaseAudit.NoiseTypes)
	fmt.Fprintf(w, "Base signal-to-noise: %.2f (coherent: %v)\n", r.BaseAudit.SNR, r.BaseAudit.IsCoherent)

	fmt.Fprintln(w, phaseStyle.Render("\n--- PHASE 2: REIFIED METAPHOR DETECTION ---"))
	if len(r.Metaphors) == 0 {
		fmt.Fprintln(w, "No reified metaphors detected.")
	}
	for _, m := range r.Metaphors {
		fmt.Fprintf(w, "\n%s %s\n", warnStyle.Render("REIFIED:"), termStyle.Render(m.Term))
		fmt.Fprintf(w, "  reified as:      %s\n", m.ReifiedAs)
		fmt.Fprintf(w, "  functional form: %s\n", m.FunctionalForm)
		fmt.Fprintf(w, "  range:           %s\n", strings.Join(m.ValueRange, ", "))
		fmt.Fprintf(w, "  context:         %s\n", detailStyle.Render(m.ContextSnippet))
		fmt.Fprintf(w, "  function:        %s\n", detailStyle.Render(m.InstitutionalFunction))
	}

	fmt.Fprintln(w, phaseStyle.Render("\n--- PHASE 3: DEPENDENCY CHAINS ---"))
	if len(r.Chains) == 0 {
		fmt.Fprintln(w, "No significant dependency chains detected.")
	}
	for _, c := range r.Chains {
		renderTrace(w, c)
	}

	fmt.Fprintln(w, phaseStyle.Render("\n--- PHASE 4: INSTITUTIONAL ENTROPY ---"))
	renderEntropy(w, r.Entropy)

	fmt.Fprintln(w, phaseStyle.Render("\n--- PHASE 5: VARIABLE LOCKS ---"))
	if len(r.LockedVariables) == 0 {
		fmt.Fprintln(w, "No variables locked.")
	}
	for _, lv := range r.LockedVariables {
		fmt.Fprintf(w, "  %s %s: %s\n", okStyle.Render("*"), termStyle.Render(lv.Term), lv.Lock.Type)
	}

	fmt.Fprintln(w, phaseStyle.Render("\n--- PHASE 6: RE-NORMALIZATION ---"))
	if r.RequiresRenormalization {
		fmt.Fprintln(w, warnStyle.Render("SIGNAL CLARITY BELOW THRESHOLD"))
		for _, m := range r.Metaphors {
			fmt.Fprintf(w, "  replace %s (%s) with: %s\n",
				termStyle.Render(m.Term), m.ReifiedAs, m.FunctionalForm)
		}
	} else {
		fmt.Fprintln(w, okStyle.Render("Signal clarity acceptable. Minimal re-normalization needed."))
	}
	fmt.Fprintf(w, "\nFUNCTIONAL RESTATEMENT:\n%s\n", restatement)
	ruler(w)
}

func renderEntropy(w io.Writer, e analysis.EntropyReport) {
	fmt.Fprintf(w, "Base SNR:            %.2f\n", e.BaseSignalToNoise)
	fmt.Fprintf(w, "Metaphor count:      %d\n", e.MetaphorCount)
	fmt.Fprintf(w, "Metaphor entropy:    %.2f\n", e.MetaphorEntropy)
	fmt.Fprintf(w, "Chain amplification: %.2fx\n", e.ChainAmplification)
	fmt.Fprintf(w, "Total entropy:       %.2f\n", e.TotalEntropy)
	fmt.Fprintf(w, "%s %.2f\n", clarityStyle.Render("SIGNAL CLARITY:"), e.SignalClarity)
}

func renderTrace(w io.Writer, t analysis.ChainTrace) {
	fmt.Fprintf(w, "\nCHAIN from %s:\n", termStyle.Render(t.Primary))
	fmt.Fprintf(w, "  forces:    %s\n", strings.Join(t.Forces, ", "))
	fmt.Fprintf(w, "  mechanism: %s\n", detailStyle.Render(t.Mechanism))
}
