package handlers

import (
	"github.com/gin-gonic/gin"

	"hireflow/internal/models"
	"hireflow/internal/services"
)

const (
	userIDHeader   = "X-User-ID"
	currentUserKey = "currentUser"
)

// Identity resolves the requesting user from the X-User-ID header and, when
// it maps to a known user, exposes it on the gin context. Requests without a
// resolvable user proceed anonymously; endpoints that need an author check
// for one themselves.
func Identity(users services.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(userIDHeader)
		if id != "" {
			if user, err := users.FindByID(c.Request.Context(), id); err == nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

// currentUser returns the authenticated user, or nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
