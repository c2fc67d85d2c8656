package service

import (
	"context"
	"errors"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrExerciseValidation = errors.New("exercise name is required")
	ErrInstructorRequired = errors.New("instructor_id is required and must reference an existing instructor")
)

// CreateExerciseInput carries the accepted attributes for a new library exercise.
type CreateExerciseInput struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	MuscleGroup  string `json:"muscle_group"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
	InstructorID int64  `json:"instructor_id"`
}

// UpdateExerciseInput is the closed set of patchable exercise fields.
// The instructor reference is deliberately absent; authorship does not move.
type UpdateExerciseInput struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	MuscleGroup  *string `json:"muscle_group"`
	Difficulty   *string `json:"difficulty"`
	Instructions *string `json:"instructions"`
}

// ExerciseService manages the shared exercise library. Reads are public;
// mutation is admin-only since exercises have no owning user.
type ExerciseService interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	Create(ctx context.Context, actor *domain.User, input CreateExerciseInput) (*domain.Exercise, error)
	Update(ctx context.Context, actor *domain.User, id int64, input UpdateExerciseInput) (*domain.Exercise, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	authz        Authorizer
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, authz Authorizer) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo, authz: authz}
}

// List returns the whole exercise library.
func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// GetByID retrieves a single exercise.
func (s *exerciseService) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// Create adds an exercise to the library.
func (s *exerciseService) Create(ctx context.Context, actor *domain.User, input CreateExerciseInput) (*domain.Exercise, error) {
	if err := s.authz.Authorize(actor, nil); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, ErrExerciseValidation
	}
	if input.InstructorID == 0 {
		return nil, ErrInstructorRequired
	}

	exercise := &domain.Exercise{
		Name:         input.Name,
		Category:     input.Category,
		MuscleGroup:  input.MuscleGroup,
		Difficulty:   input.Difficulty,
		Instructions: input.Instructions,
		InstructorID: input.InstructorID,
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrInstructorRequired
		}
		return nil, err
	}
	return exercise, nil
}

// Update patches an exercise with the fields present in input.
func (s *exerciseService) Update(ctx context.Context, actor *domain.User, id int64, input UpdateExerciseInput) (*domain.Exercise, error) {
	if err := s.authz.Authorize(actor, nil); err != nil {
		return nil, err
	}

	exercise, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		exercise.Name = *input.Name
	}
	if input.Category != nil {
		exercise.Category = *input.Category
	}
	if input.MuscleGroup != nil {
		exercise.MuscleGroup = *input.MuscleGroup
	}
	if input.Difficulty != nil {
		exercise.Difficulty = *input.Difficulty
	}
	if input.Instructions != nil {
		exercise.Instructions = *input.Instructions
	}
	if exercise.Name == "" {
		return nil, ErrExerciseValidation
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// Delete removes an exercise; dependent workout_exercises and user_exercises
// rows cascade away with it.
func (s *exerciseService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if err := s.authz.Authorize(actor, nil); err != nil {
		return err
	}

	err := s.exerciseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
