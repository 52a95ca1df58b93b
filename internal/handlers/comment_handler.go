package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireflow/internal/dtos"
	"hireflow/internal/services"
)

type CommentHandler struct {
	Comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

// Create is the POST /candidates/:id/comments endpoint.
func (h *CommentHandler) Create(c *gin.Context) {
	var req dtos.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	// The raw header id goes to the service so an unresolvable author
	// surfaces as 404 "User not found" rather than an auth failure.
	authorID := c.GetHeader(userIDHeader)
	if authorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	comment, err := h.Comments.Create(c.Request.Context(), c.Param("id"), req.Text, authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListByCandidate is the GET /candidates/:id/comments endpoint. Comments
// come back oldest first.
func (h *CommentHandler) ListByCandidate(c *gin.Context) {
	comments, err := h.Comments.ListByCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
