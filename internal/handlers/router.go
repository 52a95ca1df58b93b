package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hireflow/internal/services"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Candidates *services.CandidateService
	Comments   *services.CommentService
	Users      services.UserRepository

	MaxUploadBytes int64
}

// NewRouter wires the gin engine: CORS, identity middleware, metrics and
// the /api/v1 routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.Default()
	if deps.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = deps.MaxUploadBytes
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-User-ID"}
	r.Use(cors.New(corsConfig))
	r.Use(Identity(deps.Users))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	candidateHandler := NewCandidateHandler(deps.Candidates)
	commentHandler := NewCommentHandler(deps.Comments)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		api.POST("/jobs/:jobId/candidates", candidateHandler.Create)
		api.GET("/jobs/:jobId/candidates", candidateHandler.ListByJob)

		api.PATCH("/candidates/:id/status", candidateHandler.UpdateStatus)
		api.PATCH("/candidates/:id/notes", candidateHandler.UpdateNotes)
		api.GET("/candidates/:id/cv", candidateHandler.GetCV)
		api.GET("/candidates/:id/profile-picture", candidateHandler.GetProfilePicture)
		api.DELETE("/candidates/:id", candidateHandler.Delete)

		api.POST("/candidates/:id/comments", commentHandler.Create)
		api.GET("/candidates/:id/comments", commentHandler.ListByCandidate)
	}

	return r
}
