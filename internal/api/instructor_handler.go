package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/service"
)

// InstructorHandler exposes the shared instructor catalog.
type InstructorHandler struct {
	instructorService service.InstructorService
}

// NewInstructorHandler creates a new InstructorHandler.
func NewInstructorHandler(instructorService service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// List returns all instructors.
// GET /instructors
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.instructorService.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if instructors == nil {
		instructors = []domain.Instructor{}
	}
	c.JSON(http.StatusOK, instructors)
}

// Get returns one instructor.
// GET /instructors/:id
func (h *InstructorHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid instructor id")
		return
	}

	instructor, err := h.instructorService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, instructor)
}

// Create adds an instructor to the catalog (admin only).
// POST /instructors
func (h *InstructorHandler) Create(c *gin.Context) {
	var input service.CreateInstructorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	instructor, err := h.instructorService.Create(c.Request.Context(), currentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, instructor)
}

// Patch applies the fields present in the payload (admin only).
// PATCH /instructors/:id
func (h *InstructorHandler) Patch(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid instructor id")
		return
	}

	var input service.UpdateInstructorInput
	if err := bindPatchJSON(c, &input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	instructor, err := h.instructorService.Update(c.Request.Context(), currentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, instructor)
}

// Delete removes an instructor (admin only).
// DELETE /instructors/:id
func (h *InstructorHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid instructor id")
		return
	}

	if err := h.instructorService.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
