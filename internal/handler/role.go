package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/internal/workflow"
	"github.com/Irfan-Firosh/Yapply/pkg"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
	"github.com/Irfan-Firosh/Yapply/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getOwnedRole loads a role and enforces ownership: missing rows are 404,
// rows belonging to another company are 403, before any mutation happens.
func (h *Handler) getOwnedRole(c *gin.Context, companyID string) (*model.Role, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}

	role, err := h.Repo.Role.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			response.NotFound(c, "Role not found")
			return nil, false
		}
		h.Logger.Error("get_role: failed to fetch", zap.Int64("id", id), zap.Error(err))
		response.InternalError(c, "failed to fetch role")
		return nil, false
	}
	if role.CompanyID != companyID {
		response.Forbidden(c, "Not authorized for this role")
		return nil, false
	}
	return role, true
}

// ListRoles returns the company's active roles (those with a voice workflow).
func (h *Handler) ListRoles(c *gin.Context) {
	company := h.GetCompanyFromContext(c)

	roles, err := h.Repo.Role.ListActive(c.Request.Context(), company.CompanyID)
	if err != nil {
		h.Logger.Error("list_roles: failed to fetch", zap.Error(err))
		response.InternalError(c, "failed to fetch roles")
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *Handler) GetRole(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	role, ok := h.getOwnedRole(c, company.CompanyID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *Handler) CreateRole(c *gin.Context) {
	company := h.GetCompanyFromContext(c)

	var req model.RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.Repo.Role.Create(c.Request.Context(), map[string]any{
		"company_id":       company.CompanyID,
		"created_at":       time.Now().UTC().Format(time.RFC3339),
		"title":            req.Title,
		"department":       req.Department,
		"description":      req.Description,
		"requirements":     req.Requirements,
		"vapi_workflow_id": nil,
	})
	if err != nil {
		h.Logger.Error("create_role: insert failed", zap.Error(err))
		response.BadRequest(c, "Failed to create role")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	role, ok := h.getOwnedRole(c, company.CompanyID)
	if !ok {
		return
	}

	var req model.RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.Repo.Role.Update(c.Request.Context(), company.CompanyID, role.ID, map[string]any{
		"title":        req.Title,
		"department":   req.Department,
		"description":  req.Description,
		"requirements": req.Requirements,
	})
	if err != nil {
		h.Logger.Error("update_role: failed", zap.Int64("id", role.ID), zap.Error(err))
		response.BadRequest(c, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRole removes a role and cascades to its questions.
func (h *Handler) DeleteRole(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	role, ok := h.getOwnedRole(c, company.CompanyID)
	if !ok {
		return
	}

	if err := h.Repo.Role.Delete(c.Request.Context(), company.CompanyID, role.ID); err != nil {
		h.Logger.Error("delete_role: failed", zap.Int64("id", role.ID), zap.Error(err))
		response.BadRequest(c, "Failed to delete role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}

// CreateWorkflow builds the interview graph from the role's questions,
// submits it to the voice service, and stores the returned workflow id on
// the role, making it an active role.
func (h *Handler) CreateWorkflow(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	role, ok := h.getOwnedRole(c, company.CompanyID)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	questions, err := h.Repo.Question.TextsByRole(ctx, role.ID)
	if err != nil {
		h.Logger.Error("create_workflow: question fetch failed", zap.Int64("role_id", role.ID), zap.Error(err))
		response.InternalError(c, "failed to fetch questions")
		return
	}
	if len(questions) == 0 {
		response.NotFound(c, "Questions not found")
		return
	}

	name := fmt.Sprintf("%s_%s_Interview_Workflow", company.Username, role.Title)
	wf := workflow.Build(workflow.Params{
		Questions:       questions,
		CompanyName:     company.Username,
		InterviewerName: h.Config.Workflow.InterviewerName,
		Name:            name,
		VoiceID:         h.Config.Workflow.VoiceID,
		ModelID:         h.Config.Workflow.ModelID,
		TimeoutSeconds:  h.Config.Workflow.TimeoutSeconds,
	})

	if dir := h.Config.Workflow.DebugDir; dir != "" {
		path := filepath.Join(dir, pkg.GenerateSlug(name)+".json")
		if err := workflow.Save(wf, path); err != nil {
			h.Logger.Warn("create_workflow: debug export failed", zap.String("path", path), zap.Error(err))
		}
	}

	workflowID, err := h.Vapi.CreateWorkflow(ctx, wf)
	if err != nil {
		h.Logger.Error("create_workflow: submission failed", zap.Int64("role_id", role.ID), zap.Error(err))
		response.InternalError(c, "failed to create workflow")
		return
	}

	if err := h.Repo.Role.SetWorkflowID(ctx, company.CompanyID, role.ID, workflowID); err != nil {
		h.Logger.Error("create_workflow: store failed", zap.Int64("role_id", role.ID), zap.Error(err))
		response.InternalError(c, "failed to store workflow id")
		return
	}

	c.JSON(http.StatusOK, gin.H{"vapi_workflow_id": workflowID})
}
