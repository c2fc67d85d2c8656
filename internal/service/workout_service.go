package service

import (
	"context"
	"errors"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrWorkoutValidation = errors.New("workout name is required")
)

// CreateWorkoutInput carries the accepted attributes for a new personal
// workout. There is no user field: the owner is always the acting session
// user, regardless of anything present in the request payload.
type CreateWorkoutInput struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Duration     int    `json:"duration"`
	InstructorID int64  `json:"instructor_id"`
}

// UpdateWorkoutInput is the closed set of patchable workout fields.
// Owner and instructor references are deliberately absent.
type UpdateWorkoutInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration"`
}

// WorkoutService manages instructor templates and personal workouts.
type WorkoutService interface {
	// ListTemplates returns shared instructor templates only; personal
	// workouts never appear here.
	ListTemplates(ctx context.Context) ([]domain.Workout, error)
	// ListMine returns the acting user's personal workouts.
	ListMine(ctx context.Context, actor *domain.User) ([]domain.Workout, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	// CreatePersonal creates a workout owned by the acting user.
	CreatePersonal(ctx context.Context, actor *domain.User, input CreateWorkoutInput) (*domain.Workout, error)
	Update(ctx context.Context, actor *domain.User, id int64, input UpdateWorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	authz       Authorizer
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, authz Authorizer) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo, authz: authz}
}

func (s *workoutService) ListTemplates(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.ListTemplates(ctx)
}

func (s *workoutService) ListMine(ctx context.Context, actor *domain.User) ([]domain.Workout, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	return s.workoutRepo.ListByUserID(ctx, actor.ID)
}

// GetByID retrieves a single workout. Templates and personal workouts are
// both readable; ownership only gates mutation.
func (s *workoutService) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// CreatePersonal creates a workout owned by the acting user. The owner id is
// injected here from the session identity, never read from the payload.
func (s *workoutService) CreatePersonal(ctx context.Context, actor *domain.User, input CreateWorkoutInput) (*domain.Workout, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if input.Name == "" {
		return nil, ErrWorkoutValidation
	}
	if input.InstructorID == 0 {
		return nil, ErrInstructorRequired
	}

	ownerID := actor.ID
	workout := &domain.Workout{
		Name:         input.Name,
		Description:  input.Description,
		Duration:     input.Duration,
		InstructorID: input.InstructorID,
		UserID:       &ownerID,
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrInstructorRequired
		}
		return nil, err
	}
	return workout, nil
}

// Update patches a workout. Personal workouts require the owner or an admin;
// templates require an admin.
func (s *workoutService) Update(ctx context.Context, actor *domain.User, id int64, input UpdateWorkoutInput) (*domain.Workout, error) {
	workout, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actor, workout.UserID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		workout.Name = *input.Name
	}
	if input.Description != nil {
		workout.Description = *input.Description
	}
	if input.Duration != nil {
		workout.Duration = *input.Duration
	}
	if workout.Name == "" {
		return nil, ErrWorkoutValidation
	}

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// Delete removes a workout under the same ownership rules as Update.
// Its workout_exercises rows cascade away with it.
func (s *workoutService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	workout, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.Authorize(actor, workout.UserID); err != nil {
		return err
	}

	err = s.workoutRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
