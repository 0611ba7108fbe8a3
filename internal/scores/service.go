// Package scores persists computed scoring results as immutable records.
// The store is append-only: corrections are new records, and the full
// history per applicant is retained for trend display and audit.
package scores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/circulend/circulend/pkg/scoring"
)

// Record is the persisted, flattened form of a scoring result.
type Record struct {
	ID           string
	SubmissionID string
	ApplicantID  string

	TotalScore                  int
	OperationalCircularityScore int
	EthicsScore                 int
	ImpactScore                 int

	ResourceReductionScore       float64
	ResourceReductionConfidence  float64
	ReusePracticeScore           float64
	ReusePracticeConfidence      float64
	RecycleIntegrationScore      float64
	RecycleIntegrationConfidence float64
	ProductDurabilityScore       float64
	ProductDurabilityConfidence  float64
	ProcessEfficiencyScore       float64
	ProcessEfficiencyConfidence  float64
	TransparencyScore            float64
	TransparencyConfidence       float64
	CarbonAvoidanceScore         float64
	CarbonAvoidanceConfidence    float64
	LivelihoodImpactScore        float64
	LivelihoodImpactConfidence   float64

	AdvisoryConfidence float64
	Flags              []string
	Recommendation     string
	RulesetVersion     string
	ScoredAt           time.Time
}

// Service provides the score record store backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a new score record Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

const recordColumns = `id, submission_id, applicant_id, total_score,
	operational_circularity_score, ethics_score, impact_score,
	resource_reduction_score, resource_reduction_confidence,
	reuse_practice_score, reuse_practice_confidence,
	recycle_integration_score, recycle_integration_confidence,
	product_durability_score, product_durability_confidence,
	process_efficiency_score, process_efficiency_confidence,
	transparency_score, transparency_confidence,
	carbon_avoidance_score, carbon_avoidance_confidence,
	livelihood_impact_score, livelihood_impact_confidence,
	advisory_confidence, flags, recommendation, ruleset_version, scored_at`

// Save flattens and persists a scoring result for a submission. The row id
// and scored_at timestamp are assigned by the database. There is no update
// path; calling Save twice appends two records.
func (s *Service) Save(ctx context.Context, submissionID, applicantID string, result *scoring.ScoringResult) (*Record, error) {
	flagsJSON, err := json.Marshal(result.Flags)
	if err != nil {
		return nil, fmt.Errorf("marshal flags: %w", err)
	}

	ind := func(key string) scoring.IndicatorResult { return result.Indicators[key] }

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO scores (submission_id, applicant_id, total_score,
			operational_circularity_score, ethics_score, impact_score,
			resource_reduction_score, resource_reduction_confidence,
			reuse_practice_score, reuse_practice_confidence,
			recycle_integration_score, recycle_integration_confidence,
			product_durability_score, product_durability_confidence,
			process_efficiency_score, process_efficiency_confidence,
			transparency_score, transparency_confidence,
			carbon_avoidance_score, carbon_avoidance_confidence,
			livelihood_impact_score, livelihood_impact_confidence,
			advisory_confidence, flags, recommendation, ruleset_version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		 RETURNING `+recordColumns,
		submissionID, applicantID, result.TotalScore,
		result.Breakdown.OperationalCircularity, result.Breakdown.Ethics, result.Breakdown.Impact,
		ind(scoring.KeyResourceReduction).Score, ind(scoring.KeyResourceReduction).Confidence,
		ind(scoring.KeyReusePractice).Score, ind(scoring.KeyReusePractice).Confidence,
		ind(scoring.KeyRecycleIntegration).Score, ind(scoring.KeyRecycleIntegration).Confidence,
		ind(scoring.KeyProductDurability).Score, ind(scoring.KeyProductDurability).Confidence,
		ind(scoring.KeyProcessEfficiency).Score, ind(scoring.KeyProcessEfficiency).Confidence,
		ind(scoring.KeyTransparency).Score, ind(scoring.KeyTransparency).Confidence,
		ind(scoring.KeyCarbonAvoidance).Score, ind(scoring.KeyCarbonAvoidance).Confidence,
		ind(scoring.KeyLivelihoodImpact).Score, ind(scoring.KeyLivelihoodImpact).Confidence,
		result.AdvisoryConfidence, flagsJSON, result.Recommendation, result.RulesetVersion,
	)

	rec, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("insert score record: %w", err)
	}
	return rec, nil
}

// History returns all score records for an applicant, newest first.
func (s *Service) History(ctx context.Context, applicantID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM scores
		 WHERE applicant_id = $1 ORDER BY scored_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query score history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score records: %w", err)
	}
	return records, nil
}

// Latest returns the newest score record for an applicant, or nil if the
// applicant has never been scored.
func (s *Service) Latest(ctx context.Context, applicantID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM scores
		 WHERE applicant_id = $1 ORDER BY scored_at DESC LIMIT 1`,
		applicantID,
	)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest score: %w", err)
	}
	return rec, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	var flagsJSON []byte
	err := row.Scan(
		&rec.ID, &rec.SubmissionID, &rec.ApplicantID, &rec.TotalScore,
		&rec.OperationalCircularityScore, &rec.EthicsScore, &rec.ImpactScore,
		&rec.ResourceReductionScore, &rec.ResourceReductionConfidence,
		&rec.ReusePracticeScore, &rec.ReusePracticeConfidence,
		&rec.RecycleIntegrationScore, &rec.RecycleIntegrationConfidence,
		&rec.ProductDurabilityScore, &rec.ProductDurabilityConfidence,
		&rec.ProcessEfficiencyScore, &rec.ProcessEfficiencyConfidence,
		&rec.TransparencyScore, &rec.TransparencyConfidence,
		&rec.CarbonAvoidanceScore, &rec.CarbonAvoidanceConfidence,
		&rec.LivelihoodImpactScore, &rec.LivelihoodImpactConfidence,
		&rec.AdvisoryConfidence, &flagsJSON, &rec.Recommendation,
		&rec.RulesetVersion, &rec.ScoredAt,
	)
	if err != nil {
		return nil, err
	}

	if len(flagsJSON) > 0 {
		if err := json.Unmarshal(flagsJSON, &rec.Flags); err != nil {
			return nil, fmt.Errorf("unmarshal flags: %w", err)
		}
	}
	return &rec, nil
}
