package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
)

type InterviewRepository struct {
	db *supabase.Client
}

func (r InterviewRepository) ListByCompany(ctx context.Context, companyID string) ([]model.Interview, error) {
	interviews := []model.Interview{}
	err := r.db.From("interviews").
		Select("*").
		Eq("company_id", companyID).
		Order("created_at", false).
		Get(ctx, &interviews)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return interviews, nil
}

func (r InterviewRepository) Get(ctx context.Context, companyID string, id int64) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.From("interviews").
		Select("*").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("company_id", companyID).
		Single(ctx, &interview)
	if err != nil {
		return nil, fmt.Errorf("get interview %d: %w", id, err)
	}
	return &interview, nil
}

// GetByEmail recovers a candidate's own interview row from their verified
// email. This is the candidate session subject; there is no separate
// candidate entity.
func (r InterviewRepository) GetByEmail(ctx context.Context, email string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.From("interviews").
		Select("*").
		Eq("candidate_email", email).
		Order("created_at", false).
		Single(ctx, &interview)
	if err != nil {
		return nil, fmt.Errorf("get interview for %q: %w", email, err)
	}
	return &interview, nil
}

func (r InterviewRepository) Create(ctx context.Context, payload map[string]any) (*model.Interview, error) {
	var created model.Interview
	if err := r.db.From("interviews").Insert(ctx, payload, &created); err != nil {
		return nil, fmt.Errorf("insert interview: %w", err)
	}
	return &created, nil
}

func (r InterviewRepository) Delete(ctx context.Context, companyID string, id int64) error {
	n, err := r.db.From("interviews").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("company_id", companyID).
		Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete interview %d: %w", id, err)
	}
	if n == 0 {
		return supabase.ErrNotFound
	}
	return nil
}

// Update patches arbitrary columns of one interview, always scoped to the
// owning company.
func (r InterviewRepository) Update(ctx context.Context, companyID string, id int64, fields map[string]any) error {
	n, err := r.db.From("interviews").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("company_id", companyID).
		Update(ctx, fields)
	if err != nil {
		return fmt.Errorf("update interview %d: %w", id, err)
	}
	if n == 0 {
		return supabase.ErrNotFound
	}
	return nil
}

// SetEvaluationIfEmpty stores the evaluation only when none exists yet. The
// is-null guard rides the PATCH filter, so a concurrent grader that got there
// first simply makes this a no-op (returns false).
func (r InterviewRepository) SetEvaluationIfEmpty(ctx context.Context, companyID string, id int64, evaluation any) (bool, error) {
	n, err := r.db.From("interviews").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("company_id", companyID).
		IsNull("ai_evaluation").
		Update(ctx, map[string]any{"ai_evaluation": evaluation})
	if err != nil {
		return false, fmt.Errorf("store evaluation for interview %d: %w", id, err)
	}
	return n > 0, nil
}
