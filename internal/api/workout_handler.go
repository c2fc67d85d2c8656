package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/service"
)

// WorkoutHandler exposes instructor templates and personal workouts.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// List returns shared templates only; personal workouts never appear here.
// GET /workouts
func (h *WorkoutHandler) List(c *gin.Context) {
	workouts, err := h.workoutService.ListTemplates(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// ListMine returns the acting user's personal workouts. Mounted behind RequireUser.
// GET /my-workouts
func (h *WorkoutHandler) ListMine(c *gin.Context) {
	workouts, err := h.workoutService.ListMine(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// Get returns one workout, template or personal.
// GET /workouts/:id
func (h *WorkoutHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	workout, err := h.workoutService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Create stores a personal workout owned by the acting user. Any user_id in
// the payload is ignored; the input type simply has no such field.
// POST /workouts
func (h *WorkoutHandler) Create(c *gin.Context) {
	var input service.CreateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.CreatePersonal(c.Request.Context(), currentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// Patch applies the fields present in the payload under the ownership rules.
// PATCH /workouts/:id
func (h *WorkoutHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	var input service.UpdateWorkoutInput
	if err := bindPatchJSON(c, &input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), currentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Delete removes a workout under the ownership rules.
// DELETE /workouts/:id
func (h *WorkoutHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout id")
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
