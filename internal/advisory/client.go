// Package advisory calls the external statistical advisory service that may
// adjust rule-based indicator scores. The caller treats any error from this
// package as "score without enrichment"; nothing here is fatal to scoring.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every advisory call. The deadline is hard: a slow
// advisory service must not stall the scoring pipeline.
const DefaultTimeout = 5 * time.Second

// Validation is the advisory service's response to a submission.
type Validation struct {
	IsValid bool `json:"isValid"`
	// Confidence is an overall scalar for operator visibility. It is logged
	// and persisted but never enters score math.
	Confidence float64 `json:"confidence"`
	Flags      []string `json:"flags"`
	// Suggestions are operator hints; they are logged, never persisted.
	Suggestions []string `json:"suggestions"`
	// AdjustedScores maps indicator keys to signed score deltas. Keys that
	// match no known indicator are ignored by the engine.
	AdjustedScores map[string]float64 `json:"adjustedScores"`
}

// Client talks to the advisory service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the advisory service at baseURL.
// A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Validate posts the raw submission to the advisory service and returns its
// validation. Any transport, deadline, status, or decode failure is returned
// as an error for the caller to absorb.
func (c *Client) Validate(ctx context.Context, sub any) (*Validation, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/validate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post validate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("advisory service error %d: %s", resp.StatusCode, string(respBody))
	}

	var v Validation
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode validation: %w", err)
	}
	return &v, nil
}
