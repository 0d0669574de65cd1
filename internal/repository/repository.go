package repository

import "github.com/Irfan-Firosh/Yapply/internal/supabase"

// Repository groups the per-entity repositories over the hosted table API.
// Every tenant-scoped method takes the company's opaque id explicitly; the
// store does not auto-scope and no ambient session state is used.
type Repository struct {
	Company   CompanyRepository
	Interview InterviewRepository
	Role      RoleRepository
	Question  QuestionRepository
}

func NewRepository(db *supabase.Client) *Repository {
	return &Repository{
		Company:   CompanyRepository{db: db},
		Interview: InterviewRepository{db: db},
		Role:      RoleRepository{db: db},
		Question:  QuestionRepository{db: db},
	}
}
