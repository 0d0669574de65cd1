package handler

import (
	"net/http"

	"github.com/Irfan-Firosh/Yapply/internal/auth"
	"github.com/Irfan-Firosh/Yapply/pkg"
	"github.com/Irfan-Firosh/Yapply/pkg/model"
	"github.com/gin-gonic/gin"
)

// Login exchanges form-encoded username/password for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var form model.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	company, err := h.Repo.Company.GetByUsername(ctx, form.Username)
	if err != nil {
		h.Logger.Sugar().Warnw("login company not found", "username", form.Username, "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}
	if err := pkg.ComparePassword(company.HashedPassword, form.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "username", form.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := auth.GenerateToken(h.Config.JWT.Secret, company.Username, company.CompanyID, h.Config.TokenTTL())
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, model.Token{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated company's public profile.
func (h *Handler) Me(c *gin.Context) {
	company := h.GetCompanyFromContext(c)
	if company == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, company.Company)
}
