// Package report defines output rendering for scoring results.
// Implementations handle different output targets: terminal and JSON.
package report

import (
	"io"

	"github.com/circulend/circulend/pkg/scoring"
)

// Renderer produces formatted output from a ScoringResult.
type Renderer interface {
	// Render writes the formatted scoring result to the writer.
	Render(w io.Writer, result *scoring.ScoringResult) error
}
