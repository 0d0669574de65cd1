package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
)

type QuestionRepository struct {
	db *supabase.Client
}

func (r QuestionRepository) Get(ctx context.Context, id int64) (*model.Question, error) {
	var question model.Question
	err := r.db.From("questions").
		Select("*").
		Eq("id", strconv.FormatInt(id, 10)).
		Single(ctx, &question)
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

// TextsByRole returns the ordered question texts used to build a workflow.
func (r QuestionRepository) TextsByRole(ctx context.Context, roleID int64) ([]string, error) {
	rows := []struct {
		QuestionText string `json:"question_text"`
	}{}
	err := r.db.From("questions").
		Select("question_text").
		Eq("role_id", strconv.FormatInt(roleID, 10)).
		Order("created_at", true).
		Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list questions for role %d: %w", roleID, err)
	}

	texts := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.QuestionText
	}
	return texts, nil
}

func (r QuestionRepository) Create(ctx context.Context, payload map[string]any) (*model.Question, error) {
	var created model.Question
	if err := r.db.From("questions").Insert(ctx, payload, &created); err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	return &created, nil
}

func (r QuestionRepository) Update(ctx context.Context, id int64, fields map[string]any) (*model.Question, error) {
	n, err := r.db.From("questions").
		Eq("id", strconv.FormatInt(id, 10)).
		Update(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("update question %d: %w", id, err)
	}
	if n == 0 {
		return nil, supabase.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.db.From("questions").
		Eq("id", strconv.FormatInt(id, 10)).
		Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if n == 0 {
		return supabase.ErrNotFound
	}
	return nil
}
