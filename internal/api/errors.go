package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/service"
)

// abortWithServiceError maps service-layer errors onto the HTTP error
// taxonomy: 401 unauthenticated, 403 forbidden, 404 not found, 409 conflict,
// 400 validation, 500 everything else with a generic message only.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrInstructorNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrWorkoutExerciseNotFound),
		errors.Is(err, service.ErrUserExerciseNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrExerciseAlreadyAdded):
		abortWithError(c, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInstructorRequired),
		errors.Is(err, service.ErrExerciseRequired),
		errors.Is(err, service.ErrWorkoutExerciseRefs),
		errors.Is(err, service.ErrInstructorValidation),
		errors.Is(err, service.ErrExerciseValidation),
		errors.Is(err, service.ErrWorkoutValidation),
		errors.Is(err, service.ErrInstructorReferenced):
		abortWithError(c, http.StatusBadRequest, err.Error())

	default:
		// Never leak internal detail beyond a short string.
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
