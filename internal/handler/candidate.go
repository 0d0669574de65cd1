package handler

import (
	"errors"
	"net/http"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
	"github.com/Irfan-Firosh/Yapply/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dashboard returns the candidate's own interview row. The access code is
// stored hashed and is never echoed back.
func (h *Handler) Dashboard(c *gin.Context) {
	interview := h.GetInterviewFromContext(c)
	out := *interview
	out.AccessCode = nil
	c.JSON(http.StatusOK, out)
}

// Profile returns the identity slice of the interview the candidate sees on
// their profile page.
func (h *Handler) Profile(c *gin.Context) {
	interview := h.GetInterviewFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"candidate_name":  interview.CandidateName,
		"candidate_email": interview.CandidateEmail,
		"candidate_phone": interview.CandidatePhone,
		"position":        interview.Position,
		"interview_date":  interview.InterviewDate,
		"interview_time":  interview.InterviewTime,
		"status":          interview.Status,
	})
}

// Company returns the public profile of the company running the candidate's
// interview.
func (h *Handler) Company(c *gin.Context) {
	interview := h.GetInterviewFromContext(c)

	company, err := h.Repo.Company.GetByCompanyID(c.Request.Context(), interview.CompanyID)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Company not found")
			return
		}
		h.Logger.Error("candidate_company: fetch failed", zap.String("company_id", interview.CompanyID), zap.Error(err))
		response.InternalError(c, "failed to fetch company")
		return
	}
	c.JSON(http.StatusOK, company.Company)
}

// CreateCall places the outbound interview call for the authenticated
// candidate and records the call id against the interview.
func (h *Handler) CreateCall(c *gin.Context) {
	interview := h.GetInterviewFromContext(c)

	if interview.VapiWorkflowID == nil || *interview.VapiWorkflowID == "" {
		response.BadRequest(c, "No workflow configured for this interview")
		return
	}

	callID, err := h.Vapi.CreateCall(c.Request.Context(), *interview.VapiWorkflowID, interview.CandidatePhone, interview.CandidateName)
	if err != nil {
		h.Logger.Error("create_call: vapi call failed", zap.Int64("interview_id", interview.ID), zap.Error(err))
		response.BadRequest(c, "Failed to create call")
		return
	}

	err = h.Repo.Interview.Update(c.Request.Context(), interview.CompanyID, interview.ID, map[string]any{
		"call_id": callID,
		"status":  model.StatusCompleted,
	})
	if err != nil {
		h.Logger.Error("create_call: persist failed", zap.Int64("interview_id", interview.ID), zap.Error(err))
		response.InternalError(c, "failed to record call")
		return
	}
	c.JSON(http.StatusOK, gin.H{"call_id": callID, "status": model.StatusCompleted})
}
