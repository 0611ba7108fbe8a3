package report

import (
	"fmt"
	"io"
	"os"

	"github.com/circulend/circulend/pkg/scoring"
)

// TerminalRenderer renders ScoringResult as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func tierColor(recommendation string) string {
	if noColor() {
		return ""
	}
	switch recommendation {
	case scoring.TierHighPotential, scoring.TierReady:
		return colorGreen
	case scoring.TierDeveloping:
		return colorYellow
	case scoring.TierLowReadiness:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// Display order and labels for indicators. Map iteration order is random,
// so rendering walks this list instead.
var indicatorLabels = []struct {
	key  string
	name string
}{
	{scoring.KeyResourceReduction, "Resource Reduction"},
	{scoring.KeyReusePractice, "Reuse Practice"},
	{scoring.KeyRecycleIntegration, "Recycle Integration"},
	{scoring.KeyProductDurability, "Product Durability"},
	{scoring.KeyProcessEfficiency, "Process Efficiency"},
	{scoring.KeyTransparency, "Transparency"},
	{scoring.KeyCarbonAvoidance, "Carbon Avoidance"},
	{scoring.KeyLivelihoodImpact, "Livelihood Impact"},
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.ScoringResult) error {
	tc := tierColor(result.Recommendation)

	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Circulend: %s — Score %d/100",
			colored(result.Recommendation, tc), result.TotalScore)))

	// Category breakdown
	fmt.Fprintf(w, "Operational Circularity: %d/60   Ethics: %d/15   Impact: %d/25\n\n",
		result.Breakdown.OperationalCircularity, result.Breakdown.Ethics, result.Breakdown.Impact)

	// Indicators
	fmt.Fprintln(w, "Indicators:")
	for _, lbl := range indicatorLabels {
		ind, ok := result.Indicators[lbl.key]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-22s %5.1f  %s\n",
			lbl.name, ind.Score, dim(fmt.Sprintf("confidence %.2f", ind.Confidence)))
	}
	fmt.Fprintln(w)

	// Flags
	if len(result.Flags) > 0 {
		fmt.Fprintln(w, "Flags:")
		for _, f := range result.Flags {
			fmt.Fprintf(w, "  %s %s\n", colored("●", colorRed), f)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\n", dim(fmt.Sprintf("ruleset %s, advisory confidence %.2f",
		result.RulesetVersion, result.AdvisoryConfidence)))

	return nil
}
