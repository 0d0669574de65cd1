package main

import (
	"net/http"
	"strings"

	"github.com/Irfan-Firosh/Yapply/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyAuthMiddleware authenticates a company session token and loads the
// company row into the context. Disabled companies are rejected before any
// handler runs.
func (app *application) CompanyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerFromAuthHeader(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := auth.ParseToken(app.Config.JWT.Secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		company, err := app.Repository.Company.GetByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}
		if company.Disabled {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive company"})
			return
		}

		c.Set("company", company)
		c.Next()
	}
}

// CandidateAuthMiddleware authenticates a candidate via the magic-link access
// token issued by the hosted auth service and resolves their interview by the
// verified email.
func (app *application) CandidateAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerFromAuthHeader(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		email, err := app.Supabase.UserEmail(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		interview, err := app.Repository.Interview.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No interview found for this candidate"})
			return
		}

		c.Set("interview", interview)
		c.Next()
	}
}

// RequestIDMiddleware tags every request with an id for log correlation.
func (app *application) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func bearerFromAuthHeader(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", auth.ErrInvalidToken
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", auth.ErrInvalidToken
	}

	return fields[1], nil
}
