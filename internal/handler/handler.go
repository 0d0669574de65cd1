package handler

import (
	"github.com/Irfan-Firosh/Yapply/internal/config"
	"github.com/Irfan-Firosh/Yapply/internal/openai"
	"github.com/Irfan-Firosh/Yapply/internal/repository"
	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/internal/vapi"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Handler struct {
	Logger   *zap.Logger
	Repo     *repository.Repository
	Supabase *supabase.Client
	Vapi     *vapi.Client
	OpenAI   *openai.Client
	Config   *config.Config

	// collapses concurrent evaluate-transcript requests for the same interview
	evalGroup singleflight.Group
}

// GetCompanyFromContext retrieves the authenticated company placed in the gin
// context by the auth middleware.
func (h *Handler) GetCompanyFromContext(c *gin.Context) *model.CompanyRecord {
	v, exists := c.Get("company")
	if !exists {
		return nil
	}
	company, ok := v.(*model.CompanyRecord)
	if !ok {
		return nil
	}
	return company
}

// GetInterviewFromContext retrieves the candidate's interview row placed in
// the gin context by the candidate auth middleware.
func (h *Handler) GetInterviewFromContext(c *gin.Context) *model.Interview {
	v, exists := c.Get("interview")
	if !exists {
		return nil
	}
	interview, ok := v.(*model.Interview)
	if !ok {
		return nil
	}
	return interview
}
