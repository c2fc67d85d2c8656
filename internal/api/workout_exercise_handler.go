package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/service"
)

// WorkoutExerciseHandler exposes the exercises placed inside workouts.
type WorkoutExerciseHandler struct {
	workoutExerciseService service.WorkoutExerciseService
}

// NewWorkoutExerciseHandler creates a new WorkoutExerciseHandler.
func NewWorkoutExerciseHandler(workoutExerciseService service.WorkoutExerciseService) *WorkoutExerciseHandler {
	return &WorkoutExerciseHandler{workoutExerciseService: workoutExerciseService}
}

// List returns the link rows for one workout, selected by the workout_id
// query parameter.
// GET /workout-exercises?workout_id=N
func (h *WorkoutExerciseHandler) List(c *gin.Context) {
	workoutID, err := strconv.ParseInt(c.Query("workout_id"), 10, 64)
	if err != nil || workoutID <= 0 {
		abortWithError(c, http.StatusBadRequest, "workout_id query parameter is required")
		return
	}

	links, err := h.workoutExerciseService.ListByWorkout(c.Request.Context(), workoutID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if links == nil {
		links = []domain.WorkoutExercise{}
	}
	c.JSON(http.StatusOK, links)
}

// Get returns one link row.
// GET /workout-exercises/:id
func (h *WorkoutExerciseHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout exercise id")
		return
	}

	we, err := h.workoutExerciseService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, we)
}

// Create places an exercise into a workout the actor may mutate.
// POST /workout-exercises
func (h *WorkoutExerciseHandler) Create(c *gin.Context) {
	var input service.CreateWorkoutExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	we, err := h.workoutExerciseService.Create(c.Request.Context(), currentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, we)
}

// Patch applies the prescription fields present in the payload.
// PATCH /workout-exercises/:id
func (h *WorkoutExerciseHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout exercise id")
		return
	}

	var input service.UpdateWorkoutExerciseInput
	if err := bindPatchJSON(c, &input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	we, err := h.workoutExerciseService.Update(c.Request.Context(), currentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, we)
}

// Delete removes a link row under the parent workout's ownership rules.
// DELETE /workout-exercises/:id
func (h *WorkoutExerciseHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout exercise id")
		return
	}

	if err := h.workoutExerciseService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
