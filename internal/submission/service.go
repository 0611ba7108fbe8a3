// Package submission orchestrates the scoring pipeline: it accepts raw
// submissions, persists them, and drives each one through the
// PENDING -> SCORED / FLAGGED lifecycle.
package submission

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/circulend/circulend/internal/advisory"
	"github.com/circulend/circulend/internal/archive"
	"github.com/circulend/circulend/internal/scores"
	"github.com/circulend/circulend/pkg/scoring"
)

// Submission statuses. A submission is PENDING from creation until scoring
// completes; SCORED when a score record exists for it; FLAGGED when the
// pipeline failed and an operator needs to look.
const (
	StatusPending = "PENDING"
	StatusScored  = "SCORED"
	StatusFlagged = "FLAGGED"
)

// Submission is a persisted scoring request for one applicant.
type Submission struct {
	ID          string
	ApplicantID string
	Status      string
	Payload     scoring.RawSubmission
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// Service accepts submissions and runs them through scoring.
type Service struct {
	db       *sql.DB
	engine   *scoring.Engine
	scores   *scores.Service
	advisory *advisory.Client     // nil disables advisory enrichment
	archive  archive.PayloadStore // nil disables payload archiving
}

// NewService creates a submission Service. advisoryClient and payloadStore
// may be nil; the corresponding steps are then skipped.
func NewService(db *sql.DB, engine *scoring.Engine, scoresSvc *scores.Service, advisoryClient *advisory.Client, payloadStore archive.PayloadStore) *Service {
	return &Service{
		db:       db,
		engine:   engine,
		scores:   scoresSvc,
		advisory: advisoryClient,
		archive:  payloadStore,
	}
}

const submissionColumns = `id, applicant_id, status,
	resource_reduction_percentage, resource_reduction_details,
	reuse_frequency, reuse_details,
	recycle_type, recycle_details,
	product_lifespan_years, product_repairability, product_details,
	process_efficiency_improvement, process_details,
	documentation_level, traceability_system,
	carbon_reduction_kg, carbon_calculation_method,
	local_employees, income_stability,
	submitted_at, updated_at`

// Create persists a new submission in PENDING status and kicks off scoring
// in the background. The returned submission reflects the pre-scoring state;
// callers poll Get for the outcome.
func (s *Service) Create(ctx context.Context, applicantID string, raw *scoring.RawSubmission) (*Submission, error) {
	if raw == nil {
		return nil, fmt.Errorf("submission payload is nil")
	}

	row := s.db.QueryRowContext(ctx,
		`INSERT INTO submissions (applicant_id, status,
			resource_reduction_percentage, resource_reduction_details,
			reuse_frequency, reuse_details,
			recycle_type, recycle_details,
			product_lifespan_years, product_repairability, product_details,
			process_efficiency_improvement, process_details,
			documentation_level, traceability_system,
			carbon_reduction_kg, carbon_calculation_method,
			local_employees, income_stability)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19)
		 RETURNING `+submissionColumns,
		applicantID, StatusPending,
		raw.ResourceReductionPercentage, raw.ResourceReductionDetails,
		raw.ReuseFrequency, raw.ReuseDetails,
		raw.RecycleType, raw.RecycleDetails,
		raw.ProductLifespanYears, raw.ProductRepairability, raw.ProductDetails,
		raw.ProcessEfficiencyImprovement, raw.ProcessDetails,
		raw.DocumentationLevel, raw.TraceabilitySystem,
		raw.CarbonReductionKg, raw.CarbonCalculationMethod,
		raw.LocalEmployees, raw.IncomeStability,
	)

	sub, err := scanSubmission(row)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}

	s.archivePayload(ctx, sub)

	// Scoring runs detached from the request context so a client disconnect
	// cannot strand the submission in PENDING.
	go s.process(context.Background(), sub.ID, sub.ApplicantID, raw)

	return sub, nil
}

// archivePayload writes an audit copy of the raw payload to blob storage.
// Failures are logged and swallowed; archiving never affects scoring.
func (s *Service) archivePayload(ctx context.Context, sub *Submission) {
	if s.archive == nil {
		return
	}
	data, err := json.Marshal(sub.Payload)
	if err != nil {
		log.Printf("archive submission %s: marshal payload: %v", sub.ID, err)
		return
	}
	if err := s.archive.PutPayload(ctx, sub.ApplicantID, sub.ID, data); err != nil {
		log.Printf("archive submission %s: %v", sub.ID, err)
	}
}

// process scores one submission end to end and records the outcome status.
func (s *Service) process(ctx context.Context, submissionID, applicantID string, raw *scoring.RawSubmission) {
	result, err := s.Evaluate(ctx, raw)
	if err != nil {
		log.Printf("score submission %s: %v", submissionID, err)
		s.setStatus(ctx, submissionID, StatusFlagged)
		return
	}

	if _, err := s.scores.Save(ctx, submissionID, applicantID, result); err != nil {
		log.Printf("save score for submission %s: %v", submissionID, err)
		s.setStatus(ctx, submissionID, StatusFlagged)
		return
	}

	s.setStatus(ctx, submissionID, StatusScored)
	log.Printf("submission %s scored: total=%d recommendation=%q", submissionID, result.TotalScore, result.Recommendation)
}

// Evaluate runs the rule engine and, when configured, the advisory service
// over a raw submission. An advisory failure degrades to the rule-based
// result; it never fails the evaluation.
func (s *Service) Evaluate(ctx context.Context, raw *scoring.RawSubmission) (*scoring.ScoringResult, error) {
	result, err := s.engine.Score(raw)
	if err != nil {
		return nil, err
	}

	if s.advisory == nil {
		return result, nil
	}

	v, err := s.advisory.Validate(ctx, raw)
	if err != nil {
		log.Printf("advisory unavailable, using rule-based scores: %v", err)
		return result, nil
	}

	scoring.ApplyAdjustments(result, v.AdjustedScores, v.Flags)
	result.AdvisoryConfidence = v.Confidence
	for _, sug := range v.Suggestions {
		log.Printf("advisory suggestion: %s", sug)
	}
	return result, nil
}

// Get retrieves a submission by id, or nil if none exists.
func (s *Service) Get(ctx context.Context, id string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`,
		id,
	)

	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	return sub, nil
}

// ListByApplicant returns all submissions for an applicant, newest first.
func (s *Service) ListByApplicant(ctx context.Context, applicantID string) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions
		 WHERE applicant_id = $1 ORDER BY submitted_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return subs, nil
}

func (s *Service) setStatus(ctx context.Context, id, status string) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE submissions SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		log.Printf("update submission %s status to %s: %v", id, status, err)
	}
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*Submission, error) {
	var sub Submission
	err := row.Scan(
		&sub.ID, &sub.ApplicantID, &sub.Status,
		&sub.Payload.ResourceReductionPercentage, &sub.Payload.ResourceReductionDetails,
		&sub.Payload.ReuseFrequency, &sub.Payload.ReuseDetails,
		&sub.Payload.RecycleType, &sub.Payload.RecycleDetails,
		&sub.Payload.ProductLifespanYears, &sub.Payload.ProductRepairability, &sub.Payload.ProductDetails,
		&sub.Payload.ProcessEfficiencyImprovement, &sub.Payload.ProcessDetails,
		&sub.Payload.DocumentationLevel, &sub.Payload.TraceabilitySystem,
		&sub.Payload.CarbonReductionKg, &sub.Payload.CarbonCalculationMethod,
		&sub.Payload.LocalEmployees, &sub.Payload.IncomeStability,
		&sub.SubmittedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
