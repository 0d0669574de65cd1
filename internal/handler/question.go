package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
	"github.com/Irfan-Firosh/Yapply/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// authorizeQuestionRole checks that the role a question belongs to is owned
// by the caller. 403 fires before any mutation.
func (h *Handler) authorizeQuestionRole(c *gin.Context, companyID string, roleID int64) bool {
	role, err := h.Repo.Role.Get(c.Request.Context(), roleID)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Role not found")
			return false
		}
		h.Logger.Error("question_auth: role fetch failed", zap.Int64("role_id", roleID), zap.Error(err))
		response.InternalError(c, "failed to fetch role")
		return false
	}
	if role.CompanyID != companyID {
		response.Forbidden(c, "Not authorized for this question")
		return false
	}
	return true
}

func (h *Handler) CreateQuestion(c *gin.Context) {
	company := h.GetCompanyFromContext(c)

	var req model.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !h.authorizeQuestionRole(c, company.CompanyID, req.RoleID) {
		return
	}

	created, err := h.Repo.Question.Create(c.Request.Context(), map[string]any{
		"created_at":    time.Now().UTC().Format(time.RFC3339),
		"role_id":       req.RoleID,
		"question_text": req.QuestionText,
		"question_type": req.QuestionType,
		"difficulty":    req.Difficulty,
	})
	if err != nil {
		h.Logger.Error("create_question: insert failed", zap.Int64("role_id", req.RoleID), zap.Error(err))
		response.BadRequest(c, "Failed to create question")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) UpdateQuestion(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	question, err := h.Repo.Question.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Question not found")
			return
		}
		response.InternalError(c, "failed to fetch question")
		return
	}
	if !h.authorizeQuestionRole(c, company.CompanyID, question.RoleID) {
		return
	}

	updated, err := h.Repo.Question.Update(c.Request.Context(), id, map[string]any{
		"question_text": req.QuestionText,
		"question_type": req.QuestionType,
		"difficulty":    req.Difficulty,
	})
	if err != nil {
		h.Logger.Error("update_question: failed", zap.Int64("id", id), zap.Error(err))
		response.BadRequest(c, "Failed to update question")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	question, err := h.Repo.Question.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Question not found")
			return
		}
		response.InternalError(c, "failed to fetch question")
		return
	}
	if !h.authorizeQuestionRole(c, company.CompanyID, question.RoleID) {
		return
	}

	if err := h.Repo.Question.Delete(c.Request.Context(), id); err != nil {
		h.Logger.Error("delete_question: failed", zap.Int64("id", id), zap.Error(err))
		response.BadRequest(c, "Failed to delete question")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
