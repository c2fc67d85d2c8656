package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/service"
)

// UserHandler exposes account listing and self-or-admin account mutation.
// Account creation happens through POST /register, not here.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users (password digests are never serialized).
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one user.
// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Patch applies the fields present in the payload (self or admin).
// PATCH /users/:id
func (h *UserHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input service.UpdateUserInput
	if err := bindPatchJSON(c, &input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), currentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes an account and cascades its personal data (self or admin).
// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
