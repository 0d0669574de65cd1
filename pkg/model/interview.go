package model

import (
	"encoding/json"
	"time"
)

const (
	StatusPending   = "Pending"
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
)

// Interview is one candidate's interview instance for a company.
// call_id, transcript and ai_evaluation are filled in as the external
// voice/LLM services are invoked and are never recomputed once set.
type Interview struct {
	ID              int64           `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	CompanyID       string          `json:"company_id"`
	CandidateName   string          `json:"candidate_name"`
	CandidateEmail  *string         `json:"candidate_email"`
	CandidatePhone  string          `json:"candidate_phone"`
	Position        *string         `json:"position"`
	Status          string          `json:"status"`
	InterviewDate   *string         `json:"interview_date"`
	InterviewTime   *string         `json:"interview_time"`
	VapiWorkflowID  *string         `json:"vapi_workflow_id"`
	CallID          *string         `json:"call_id"`
	Transcript      *string         `json:"transcript"`
	AIEvaluation    json.RawMessage `json:"ai_evaluation"`
	MagicLinkStatus bool            `json:"magiclink_status"`
	CandidateID     *string         `json:"candidate_id"`
	AccessCode      *string         `json:"access_code"`
}

type CreateInterviewForm struct {
	CandidateName  string `form:"candidate_name" binding:"required"`
	CandidatePhone string `form:"candidate_phone" binding:"required"`
	CandidateEmail string `form:"candidate_email"`
	Position       string `form:"position"`
	Date           string `form:"date"`
	Time           string `form:"time"`
}

// Credentials is the plaintext pair returned once when an interview is scheduled.
type Credentials struct {
	CandidateID string `json:"candidate_id"`
	AccessCode  string `json:"access_code"`
}
