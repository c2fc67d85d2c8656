package service

import (
	"context"
	"errors"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrInstructorNotFound   = errors.New("instructor not found")
	ErrInstructorValidation = errors.New("instructor name and specialty are required")
	ErrInstructorReferenced = errors.New("instructor is still referenced by exercises or workouts")
)

// CreateInstructorInput carries the accepted attributes for a new instructor.
type CreateInstructorInput struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Bio       string `json:"bio"`
}

// UpdateInstructorInput is the closed set of patchable instructor fields.
// Nil fields are left untouched; set fields overwrite.
type UpdateInstructorInput struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Bio       *string `json:"bio"`
}

// InstructorService manages the shared instructor catalog. All mutation is
// admin-only; instructors have no owning user.
type InstructorService interface {
	List(ctx context.Context) ([]domain.Instructor, error)
	GetByID(ctx context.Context, id int64) (*domain.Instructor, error)
	Create(ctx context.Context, actor *domain.User, input CreateInstructorInput) (*domain.Instructor, error)
	Update(ctx context.Context, actor *domain.User, id int64, input UpdateInstructorInput) (*domain.Instructor, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

// instructorService implements the InstructorService interface.
type instructorService struct {
	instructorRepo repository.InstructorRepository
	authz          Authorizer
}

// NewInstructorService creates a new instance of instructorService.
func NewInstructorService(instructorRepo repository.InstructorRepository, authz Authorizer) InstructorService {
	return &instructorService{instructorRepo: instructorRepo, authz: authz}
}

// List returns all instructors. Reading the catalog needs no session.
func (s *instructorService) List(ctx context.Context) ([]domain.Instructor, error) {
	return s.instructorRepo.List(ctx)
}

// GetByID retrieves a single instructor.
func (s *instructorService) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}
	return instructor, nil
}

// Create adds an instructor to the catalog.
func (s *instructorService) Create(ctx context.Context, actor *domain.User, input CreateInstructorInput) (*domain.Instructor, error) {
	if err := s.authz.Authorize(actor, nil); err != nil {
		return nil, err
	}
	if input.Name == "" || input.Specialty == "" {
		return nil, ErrInstructorValidation
	}

	instructor := &domain.Instructor{
		Name:      input.Name,
		Specialty: input.Specialty,
		Bio:       input.Bio,
	}
	if _, err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

// Update patches an instructor with the fields present in input.
func (s *instructorService) Update(ctx context.Context, actor *domain.User, id int64, input UpdateInstructorInput) (*domain.Instructor, error) {
	if err := s.authz.Authorize(actor, nil); err != nil {
		return nil, err
	}

	instructor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		instructor.Name = *input.Name
	}
	if input.Specialty != nil {
		instructor.Specialty = *input.Specialty
	}
	if input.Bio != nil {
		instructor.Bio = *input.Bio
	}
	if instructor.Name == "" || instructor.Specialty == "" {
		return nil, ErrInstructorValidation
	}

	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}
	return instructor, nil
}

// Delete removes an instructor. While exercises or workouts still reference
// it the delete is rejected; instructor identity is immutable once referenced.
func (s *instructorService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if err := s.authz.Authorize(actor, nil); err != nil {
		return err
	}

	err := s.instructorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInstructorNotFound
		}
		if errors.Is(err, repository.ErrForeignKey) {
			return ErrInstructorReferenced
		}
		return err
	}
	return nil
}
