package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/service"
)

// UserExerciseHandler exposes the acting user's personal exercise profile.
type UserExerciseHandler struct {
	userExerciseService service.UserExerciseService
}

// NewUserExerciseHandler creates a new UserExerciseHandler.
func NewUserExerciseHandler(userExerciseService service.UserExerciseService) *UserExerciseHandler {
	return &UserExerciseHandler{userExerciseService: userExerciseService}
}

// ListMine returns the acting user's rows only. Mounted behind RequireUser
// for both GET /user-exercises and GET /my-exercises.
func (h *UserExerciseHandler) ListMine(c *gin.Context) {
	userExercises, err := h.userExerciseService.ListMine(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if userExercises == nil {
		userExercises = []domain.UserExercise{}
	}
	c.JSON(http.StatusOK, userExercises)
}

// Get returns one personal exercise row.
// GET /user-exercises/:id
func (h *UserExerciseHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user exercise id")
		return
	}

	ue, err := h.userExerciseService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ue)
}

// Create adds an exercise to the acting user's profile. The owner is always
// the session user; the input type has no user field to spoof.
// POST /user-exercises
func (h *UserExerciseHandler) Create(c *gin.Context) {
	var input service.CreateUserExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ue, err := h.userExerciseService.Create(c.Request.Context(), currentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ue)
}

// Patch applies the fields present in the payload under the ownership rules.
// PATCH /user-exercises/:id
func (h *UserExerciseHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user exercise id")
		return
	}

	var input service.UpdateUserExerciseInput
	if err := bindPatchJSON(c, &input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ue, err := h.userExerciseService.Update(c.Request.Context(), currentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ue)
}

// Delete removes a personal exercise row under the ownership rules.
// DELETE /user-exercises/:id
func (h *UserExerciseHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user exercise id")
		return
	}

	if err := h.userExerciseService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
