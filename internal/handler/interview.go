package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/pkg"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
	"github.com/Irfan-Firosh/Yapply/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid interview id")
		return 0, false
	}
	return id, true
}

// ListInterviews returns every interview belonging to the caller's company.
func (h *Handler) ListInterviews(c *gin.Context) {
	company := h.GetCompanyFromContext(c)

	interviews, err := h.Repo.Interview.ListByCompany(c.Request.Context(), company.CompanyID)
	if err != nil {
		h.Logger.Error("list_interviews: failed to fetch", zap.Error(err))
		response.InternalError(c, "failed to fetch interviews")
		return
	}
	c.JSON(http.StatusOK, interviews)
}

func (h *Handler) GetInterview(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	interview, err := h.Repo.Interview.Get(c.Request.Context(), company.CompanyID, id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		h.Logger.Error("get_interview: failed to fetch", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to fetch interview")
		return
	}
	c.JSON(http.StatusOK, interview)
}

// CreateInterview creates an interview in Pending status. When the position
// matches one of the company's roles, the role's workflow id is attached so a
// call can later be placed without another lookup.
func (h *Handler) CreateInterview(c *gin.Context) {
	company := h.GetCompanyFromContext(c)

	var form model.CreateInterviewForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cid, err := uuid.Parse(company.CompanyID)
	if err != nil {
		h.Logger.Error("create_interview: malformed company id", zap.String("company_id", company.CompanyID), zap.Error(err))
		response.InternalError(c, "invalid company record")
		return
	}

	ctx := c.Request.Context()
	payload := map[string]any{
		"company_id":      cid.String(),
		"created_at":      time.Now().UTC().Format(time.RFC3339),
		"status":          model.StatusPending,
		"candidate_name":  form.CandidateName,
		"candidate_phone": form.CandidatePhone,
		"candidate_email": form.CandidateEmail,
	}
	if form.Position != "" {
		payload["position"] = form.Position
		workflowID, err := h.Repo.Role.WorkflowIDByTitle(ctx, company.CompanyID, form.Position)
		if err == nil && workflowID != nil {
			payload["vapi_workflow_id"] = *workflowID
		} else if err != nil && !errors.Is(err, supabase.ErrNotFound) {
			h.Logger.Warn("create_interview: workflow lookup failed", zap.String("position", form.Position), zap.Error(err))
		}
	}
	if form.Date != "" {
		payload["interview_date"] = form.Date
	}
	if form.Time != "" {
		payload["interview_time"] = form.Time
	}

	created, err := h.Repo.Interview.Create(ctx, payload)
	if err != nil {
		h.Logger.Error("create_interview: insert failed", zap.Error(err))
		response.BadRequest(c, "Failed to create interview")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) DeleteInterview(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Repo.Interview.Delete(c.Request.Context(), company.CompanyID, id); err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		h.Logger.Error("delete_interview: failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to delete interview")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted successfully"})
}

// GenerateCredentials issues the candidate's deterministic login pair and
// moves the interview to Scheduled. The access code is stored hashed; the
// plaintext appears only in this response.
func (h *Handler) GenerateCredentials(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Repo.Interview.Get(ctx, company.CompanyID, id); err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		h.Logger.Error("generate_credentials: fetch failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to fetch interview")
		return
	}

	candidateID, accessCode := pkg.GenerateCredentials(company.CompanyID, time.Now().UTC())
	codeHash, err := pkg.HashPassword(accessCode)
	if err != nil {
		h.Logger.Error("generate_credentials: hash failed", zap.Error(err))
		response.InternalError(c, "failed to generate credentials")
		return
	}

	err = h.Repo.Interview.Update(ctx, company.CompanyID, id, map[string]any{
		"candidate_id": candidateID,
		"access_code":  codeHash,
		"status":       model.StatusScheduled,
	})
	if err != nil {
		h.Logger.Error("generate_credentials: update failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to store credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"credentials": model.Credentials{CandidateID: candidateID, AccessCode: accessCode},
		"status":      model.StatusScheduled,
	})
}

// SendLink asks the auth service to mail a magic login link to the candidate.
func (h *Handler) SendLink(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	interview, err := h.Repo.Interview.Get(ctx, company.CompanyID, id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		h.Logger.Error("send_link: fetch failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to fetch interview")
		return
	}
	if interview.CandidateEmail == nil || *interview.CandidateEmail == "" {
		response.BadRequest(c, "interview has no candidate email")
		return
	}

	if err := h.Supabase.SendMagicLink(ctx, *interview.CandidateEmail, h.Config.Supabase.RedirectURL); err != nil {
		h.Logger.Error("send_link: magic link failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to send magic link")
		return
	}

	if err := h.Repo.Interview.Update(ctx, company.CompanyID, id, map[string]any{"magiclink_status": true}); err != nil {
		h.Logger.Error("send_link: status update failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to update link status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Magic link sent to candidate"})
}

func (h *Handler) LinkStatus(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	interview, err := h.Repo.Interview.Get(c.Request.Context(), company.CompanyID, id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		response.InternalError(c, "failed to fetch interview")
		return
	}
	c.JSON(http.StatusOK, gin.H{"magiclink_status": interview.MagicLinkStatus})
}

type evaluationResult struct {
	Transcript string          `json:"transcript"`
	Evaluation json.RawMessage `json:"evaluation"`
}

// EvaluateTranscript returns the interview's transcript and structured
// evaluation, computing and persisting them on first request. Concurrent
// requests for the same interview share one computation (singleflight) and
// the store write is guarded by an is-null filter, so the external grader
// runs at most once per interview.
func (h *Handler) EvaluateTranscript(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	key := fmt.Sprintf("%s/%d", company.CompanyID, id)
	v, err, _ := h.evalGroup.Do(key, func() (any, error) {
		return h.fetchOrComputeEvaluation(c, company.CompanyID, id)
	})
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Interview not found")
			return
		}
		if errors.Is(err, errNoCall) {
			response.BadRequest(c, errNoCall.Error())
			return
		}
		h.Logger.Error("evaluate_transcript: failed", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to evaluate transcript")
		return
	}

	c.JSON(http.StatusOK, v.(*evaluationResult))
}

var errNoCall = errors.New("no call has been placed for this interview")

func hasEvaluation(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func (h *Handler) fetchOrComputeEvaluation(c *gin.Context, companyID string, id int64) (*evaluationResult, error) {
	ctx := c.Request.Context()

	interview, err := h.Repo.Interview.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if hasEvaluation(interview.AIEvaluation) {
		transcript := ""
		if interview.Transcript != nil {
			transcript = *interview.Transcript
		}
		return &evaluationResult{Transcript: transcript, Evaluation: interview.AIEvaluation}, nil
	}

	if interview.CallID == nil || *interview.CallID == "" {
		return nil, errNoCall
	}

	transcript, err := h.Vapi.Transcript(ctx, *interview.CallID)
	if err != nil {
		return nil, fmt.Errorf("retrieve transcript: %w", err)
	}
	if err := h.Repo.Interview.Update(ctx, companyID, id, map[string]any{"transcript": transcript}); err != nil {
		return nil, err
	}

	evaluation, err := h.OpenAI.GradeTranscript(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("grade transcript: %w", err)
	}

	stored, err := h.Repo.Interview.SetEvaluationIfEmpty(ctx, companyID, id, evaluation)
	if err != nil {
		return nil, err
	}
	if !stored {
		// lost the write race; serve whatever landed first
		fresh, err := h.Repo.Interview.Get(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		return &evaluationResult{Transcript: transcript, Evaluation: fresh.AIEvaluation}, nil
	}

	raw, err := json.Marshal(evaluation)
	if err != nil {
		return nil, err
	}
	return &evaluationResult{Transcript: transcript, Evaluation: raw}, nil
}
