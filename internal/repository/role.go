package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
)

type RoleRepository struct {
	db *supabase.Client
}

// ListActive returns the company's roles that already have a generated voice
// workflow. Roles without one are not listed.
func (r RoleRepository) ListActive(ctx context.Context, companyID string) ([]model.Role, error) {
	roles := []model.Role{}
	err := r.db.From("roles").
		Select("*").
		Eq("company_id", companyID).
		NotNull("vapi_workflow_id").
		Get(ctx, &roles)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// Get fetches a role by id regardless of owner. Handlers compare the row's
// company id against the caller so cross-tenant access fails with 403, not 404.
func (r RoleRepository) Get(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	err := r.db.From("roles").
		Select("*").
		Eq("id", strconv.FormatInt(id, 10)).
		Single(ctx, &role)
	if err != nil {
		return nil, fmt.Errorf("get role %d: %w", id, err)
	}
	return &role, nil
}

func (r RoleRepository) Create(ctx context.Context, payload map[string]any) (*model.Role, error) {
	var created model.Role
	if err := r.db.From("roles").Insert(ctx, payload, &created); err != nil {
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return &created, nil
}

func (r RoleRepository) Update(ctx context.Context, companyID string, id int64, fields map[string]any) (*model.Role, error) {
	n, err := r.db.From("roles").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("company_id", companyID).
		Update(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("update role %d: %w", id, err)
	}
	if n == 0 {
		return nil, supabase.ErrNotFound
	}

	var role model.Role
	err = r.db.From("roles").
		Select("*").
		Eq("id", strconv.FormatInt(id, 10)).
		Single(ctx, &role)
	if err != nil {
		return nil, fmt.Errorf("reload role %d: %w", id, err)
	}
	return &role, nil
}

// Delete removes a role and its questions. Questions go first so a failure
// never leaves orphans pointing at a missing role.
func (r RoleRepository) Delete(ctx context.Context, companyID string, id int64) error {
	if _, err := r.db.From("questions").
		Eq("role_id", strconv.FormatInt(id, 10)).
		Delete(ctx); err != nil {
		return fmt.Errorf("delete questions for role %d: %w", id, err)
	}

	n, err := r.db.From("roles").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("company_id", companyID).
		Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	if n == 0 {
		return supabase.ErrNotFound
	}
	return nil
}

// WorkflowIDByTitle resolves a position title to the owning role's workflow
// id, when the company has such a role and a workflow exists for it.
func (r RoleRepository) WorkflowIDByTitle(ctx context.Context, companyID, title string) (*string, error) {
	var row struct {
		VapiWorkflowID *string `json:"vapi_workflow_id"`
	}
	err := r.db.From("roles").
		Select("vapi_workflow_id").
		Eq("company_id", companyID).
		Eq("title", title).
		Single(ctx, &row)
	if err != nil {
		return nil, err
	}
	return row.VapiWorkflowID, nil
}

func (r RoleRepository) SetWorkflowID(ctx context.Context, companyID string, id int64, workflowID string) error {
	n, err := r.db.From("roles").
		Eq("id", strconv.FormatInt(id, 10)).
		Eq("company_id", companyID).
		Update(ctx, map[string]any{"vapi_workflow_id": workflowID})
	if err != nil {
		return fmt.Errorf("store workflow id for role %d: %w", id, err)
	}
	if n == 0 {
		return supabase.ErrNotFound
	}
	return nil
}
