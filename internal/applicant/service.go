// Package applicant manages the business entities being scored. Profile
// detail, KYC, and lender browsing live outside this service; it carries
// only the identity the scoring pipeline and its consumers key on.
package applicant

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Applicant is a small business seeking lending readiness.
type Applicant struct {
	ID            string
	DisplayName   string
	Sector        *string // e.g. Fashion, F&B, Kerajinan, Pertanian
	BusinessScale *string // small, medium, large
	CreatedAt     time.Time
}

// Service provides applicant records backed by Postgres.
type Service struct {
	db *sql.DB
}

// NewService creates a new applicant Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Create registers a new applicant.
func (s *Service) Create(ctx context.Context, displayName string, sector, businessScale *string) (*Applicant, error) {
	a := &Applicant{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO applicants (display_name, sector, business_scale)
		 VALUES ($1, $2, $3)
		 RETURNING id, display_name, sector, business_scale, created_at`,
		displayName, sector, businessScale,
	).Scan(&a.ID, &a.DisplayName, &a.Sector, &a.BusinessScale, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create applicant: %w", err)
	}
	return a, nil
}

// Get retrieves an applicant by id, or nil if none exists.
func (s *Service) Get(ctx context.Context, id string) (*Applicant, error) {
	a := &Applicant{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, display_name, sector, business_scale, created_at
		 FROM applicants WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.DisplayName, &a.Sector, &a.BusinessScale, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get applicant %s: %w", id, err)
	}
	return a, nil
}

// List returns all applicants ordered by display name.
func (s *Service) List(ctx context.Context) ([]Applicant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, display_name, sector, business_scale, created_at
		 FROM applicants ORDER BY display_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []Applicant
	for rows.Next() {
		var a Applicant
		if err := rows.Scan(&a.ID, &a.DisplayName, &a.Sector, &a.BusinessScale, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applicants: %w", err)
	}
	return applicants, nil
}
