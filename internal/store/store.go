// Package store provides PostgreSQL persistence for drafts and
// generation runs.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IamPrat15/im-creator/internal/types"
)

// Run statuses recorded on generation_runs.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Well-known artifact names for a generation run.
const (
	ArtifactPlan            = "slide_plan"
	ArtifactRecommendations = "layout_recommendations"
	ArtifactOutline         = "outline"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveDraft upserts the form data for a project. Drafts are keyed by the
// caller-chosen project ID, so repeated saves overwrite in place.
func (s *Store) SaveDraft(ctx context.Context, projectID string, record *types.InputRecord) error {
	if projectID == "" {
		return fmt.Errorf("project ID is required")
	}

	data, err := json.Marshal(record.Fields())
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO drafts (project_id, data)
		 VALUES ($1, $2)
		 ON CONFLICT (project_id) DO UPDATE SET data = $2, updated_at = NOW()`,
		projectID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft %s: %w", projectID, err)
	}
	return nil
}

// GetDraft retrieves a draft by project ID. A missing draft returns
// (nil, nil).
func (s *Store) GetDraft(ctx context.Context, projectID string) (*types.InputRecord, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM drafts WHERE project_id = $1`,
		projectID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft %s: %w", projectID, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("corrupt draft %s: %w", projectID, err)
	}
	return types.NewInputRecord(raw), nil
}

// DeleteDraft removes a draft. Deleting a missing draft is not an error.
func (s *Store) DeleteDraft(ctx context.Context, projectID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM drafts WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", projectID, err)
	}
	return nil
}

// ListDrafts returns the known project IDs, most recently updated first.
func (s *Store) ListDrafts(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT project_id FROM drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateRun creates a generation run record and returns its ID.
func (s *Store) CreateRun(ctx context.Context, documentType, companyName string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (document_type, company_name, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		documentType, companyName,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a generation run as finished with the given status.
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE generation_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveArtifact stores one JSON artifact for a run, keyed by name. Saving
// the same name twice replaces the content.
func (s *Store) SaveArtifact(ctx context.Context, runID uuid.UUID, name string, content any) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, name, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, name) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, name, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", name, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by run ID and name. A missing
// artifact returns (nil, nil).
func (s *Store) GetArtifact(ctx context.Context, runID uuid.UUID, name string) ([]byte, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM run_artifacts WHERE run_id = $1 AND name = $2`,
		runID, name,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", name, err)
	}
	return content, nil
}
