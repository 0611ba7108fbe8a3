package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/circulend/circulend/internal/advisory"
	"github.com/circulend/circulend/pkg/config"
	"github.com/circulend/circulend/pkg/report"
	"github.com/circulend/circulend/pkg/scoring"
)

func newScoreCmd() *cobra.Command {
	var (
		inputPath   string
		configPath  string
		advisoryURL string
		outputFmt   string
		noAdvisory  bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a submission file locally",
		Long:  `Reads applicant-reported metrics from a JSON file, runs the scoring engine, and renders the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.Context(), scoreOpts{
				inputPath:   inputPath,
				configPath:  configPath,
				advisoryURL: advisoryURL,
				outputFmt:   outputFmt,
				noAdvisory:  noAdvisory,
			})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to submission JSON file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: find .circulend/config.yaml)")
	cmd.Flags().StringVar(&advisoryURL, "advisory-url", "", "Advisory service URL (overrides config)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&noAdvisory, "no-advisory", false, "Skip advisory enrichment even if configured")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

type scoreOpts struct {
	inputPath   string
	configPath  string
	advisoryURL string
	outputFmt   string
	noAdvisory  bool
}

func runScore(ctx context.Context, opts scoreOpts) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.inputPath)
	if err != nil {
		return fmt.Errorf("reading submission: %w", err)
	}

	var raw scoring.RawSubmission
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing submission: %w", err)
	}

	engine := scoring.NewEngine(scoring.DefaultIndicators()...)
	result, err := engine.Score(&raw)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	advURL := firstNonEmpty(opts.advisoryURL, cfg.Advisory.URL)
	if advURL != "" && !opts.noAdvisory {
		client := advisory.NewClient(advURL, time.Duration(cfg.Advisory.Timeout)*time.Second)
		v, err := client.Validate(ctx, &raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: advisory unavailable, using rule-based scores: %v\n", err)
		} else {
			scoring.ApplyAdjustments(result, v.AdjustedScores, v.Flags)
			result.AdvisoryConfidence = v.Confidence
			for _, sug := range v.Suggestions {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", sug)
			}
		}
	}

	saveResult(cfg, result)

	switch opts.outputFmt {
	case "json":
		renderer := &report.JSONRenderer{}
		if err := renderer.Render(os.Stdout, result); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	default:
		renderer := &report.TerminalRenderer{}
		if err := renderer.Render(os.Stdout, result); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}

	return nil
}

func resolveConfig(path string) (*config.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = config.FindConfigFile(cwd)
		if path == "" {
			return config.DefaultConfig(), nil
		}
	}
	return config.Load(path)
}

// saveResult caches a scored result locally so past runs can be reviewed.
func saveResult(cfg *config.Config, result *scoring.ScoringResult) {
	resultDir := config.ResultDir(cfg)
	if err := os.MkdirAll(resultDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create result dir: %v\n", err)
		return
	}

	wrapped := struct {
		*scoring.ScoringResult
		ID       string `json:"id"`
		ScoredAt string `json:"scoredAt"`
	}{
		ScoringResult: result,
		ID:            uuid.New().String(),
		ScoredAt:      time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(wrapped, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal result: %v\n", err)
		return
	}

	path := filepath.Join(resultDir, wrapped.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save result: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Result saved: %s\n", path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
