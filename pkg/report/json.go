package report

import (
	"encoding/json"
	"io"

	"github.com/circulend/circulend/pkg/scoring"
)

// JSONRenderer marshals ScoringResult to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.ScoringResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
