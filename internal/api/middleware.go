package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/service"
)

// Constants for context keys
const (
	ContextUserKey      = "currentUser"
	ContextRequestIDKey = "requestID"
)

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// SessionMiddleware resolves the session cookie to a user and stores it in
// the request context. Anonymous requests pass through with no user set;
// authorization decisions happen in the service layer.
func SessionMiddleware(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			// Dead or dangling session: proceed anonymously. The cookie is
			// cleared on the next logout or login.
			c.Next()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireUser aborts with 401 unless SessionMiddleware resolved a user.
// Must run AFTER SessionMiddleware.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			abortWithError(c, http.StatusUnauthorized, "Not logged in")
			return
		}
		c.Next()
	}
}

// currentUser returns the acting user, or nil for anonymous requests.
func currentUser(c *gin.Context) *domain.User {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := raw.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// parseIDParam parses the :id path segment.
func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// bindPatchJSON decodes a patch payload into its closed input struct. Keys
// outside the struct's allow-list are rejected, not silently dropped.
func bindPatchJSON(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
