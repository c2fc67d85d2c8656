package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/service"
)

// ExerciseHandler exposes the shared exercise library.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// List returns the whole exercise library.
// GET /exercises
func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// Get returns one exercise.
// GET /exercises/:id
func (h *ExerciseHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	exercise, err := h.exerciseService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// Create adds an exercise to the library (admin only).
// POST /exercises
func (h *ExerciseHandler) Create(c *gin.Context) {
	var input service.CreateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), currentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// Patch applies the fields present in the payload (admin only).
// PATCH /exercises/:id
func (h *ExerciseHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	var input service.UpdateExerciseInput
	if err := bindPatchJSON(c, &input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), currentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// Delete removes an exercise and its dependent link rows (admin only).
// DELETE /exercises/:id
func (h *ExerciseHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise id")
		return
	}

	if err := h.exerciseService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
