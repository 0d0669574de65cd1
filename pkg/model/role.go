package model

import "time"

// Role is a position a company hires for. A role with no workflow id has not
// had a voice workflow generated yet and is excluded from active listings.
type Role struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	CompanyID      string    `json:"company_id"`
	Title          string    `json:"title"`
	Department     *string   `json:"department"`
	Description    *string   `json:"description"`
	Requirements   *string   `json:"requirements"`
	VapiWorkflowID *string   `json:"vapi_workflow_id"`
}

type RoleReq struct {
	Title        string  `json:"title" binding:"required"`
	Department   *string `json:"department"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
}
