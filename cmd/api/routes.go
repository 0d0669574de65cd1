package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestIDMiddleware())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	})

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	company := r.Group("/company")
	{
		company.POST("/token", app.Handler.Login)
	}

	protected := company.Group("/")
	protected.Use(app.CompanyAuthMiddleware())
	{
		protected.GET("/", app.Handler.Me)

		// interview routes
		protected.GET("/interviews", app.Handler.ListInterviews)
		protected.GET("/interviews/:id", app.Handler.GetInterview)
		protected.POST("/interviews", app.Handler.CreateInterview)
		protected.DELETE("/interviews/:id", app.Handler.DeleteInterview)
		protected.PATCH("/interviews/generate/:id", app.Handler.GenerateCredentials)
		protected.GET("/interviews/:id/send-link", app.Handler.SendLink)
		protected.GET("/interviews/:id/link-status", app.Handler.LinkStatus)
		protected.GET("/interviews/:id/evaluate-transcript", app.Handler.EvaluateTranscript)

		// role routes
		protected.GET("/roles", app.Handler.ListRoles)
		protected.GET("/roles/:id", app.Handler.GetRole)
		protected.POST("/roles", app.Handler.CreateRole)
		protected.PUT("/roles/:id", app.Handler.UpdateRole)
		protected.DELETE("/roles/:id", app.Handler.DeleteRole)
		protected.POST("/roles/:id/create-workflow", app.Handler.CreateWorkflow)

		// question routes
		protected.POST("/questions", app.Handler.CreateQuestion)
		protected.PUT("/questions/:id", app.Handler.UpdateQuestion)
		protected.DELETE("/questions/:id", app.Handler.DeleteQuestion)
	}

	candidate := r.Group("/candidate")
	candidate.Use(app.CandidateAuthMiddleware())
	{
		candidate.GET("/dashboard", app.Handler.Dashboard)
		candidate.GET("/profile", app.Handler.Profile)
		candidate.GET("/company", app.Handler.Company)
		candidate.GET("/createcall", app.Handler.CreateCall)
	}

	return r
}
