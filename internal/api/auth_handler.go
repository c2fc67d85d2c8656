package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/service"
)

// SessionCookie describes how the session token travels to the client.
// SameSite=None + Secure is required for credentialed cross-origin requests
// from the trusted frontend origin.
type SessionCookie struct {
	Name   string
	MaxAge int // seconds
	Secure bool
	Domain string
}

// AuthHandler owns registration, login, logout, and current-user resolution.
type AuthHandler struct {
	authService service.AuthService
	cookie      SessionCookie
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// --- Request Structs ---

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	FitnessLevel string `json:"fitness_level" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// Register creates a new account and opens a session for it.
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.FitnessLevel)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

// Login authenticates an account and opens a session.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Logout invalidates the session binding and clears the cookie.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			abortWithServiceError(c, err)
			return
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentUser returns the acting user. Mounted behind RequireUser.
// GET /current-user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
