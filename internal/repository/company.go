package repository

import (
	"context"
	"fmt"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
)

type CompanyRepository struct {
	db *supabase.Client
}

// GetByUsername fetches the full company row, private columns included.
// Company rows are provisioned out of band; this API never writes them.
func (r CompanyRepository) GetByUsername(ctx context.Context, username string) (*model.CompanyRecord, error) {
	var company model.CompanyRecord
	err := r.db.From("company").
		Select("*").
		Eq("username", username).
		Single(ctx, &company)
	if err != nil {
		return nil, fmt.Errorf("get company %q: %w", username, err)
	}
	return &company, nil
}

// GetByCompanyID fetches a company row by its opaque tenant key.
func (r CompanyRepository) GetByCompanyID(ctx context.Context, companyID string) (*model.CompanyRecord, error) {
	var company model.CompanyRecord
	err := r.db.From("company").
		Select("*").
		Eq("company_id", companyID).
		Single(ctx, &company)
	if err != nil {
		return nil, fmt.Errorf("get company %q: %w", companyID, err)
	}
	return &company, nil
}
