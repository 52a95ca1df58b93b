package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireflow/internal/apperrors"
)

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.UserMessage(err)})
}

// HealthCheck is the GET /health endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
