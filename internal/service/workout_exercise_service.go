package service

import (
	"context"
	"errors"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
	ErrWorkoutExerciseRefs     = errors.New("workout_id and exercise_id are required and must reference existing rows")
)

// CreateWorkoutExerciseInput carries the accepted attributes for placing an
// exercise into a workout.
type CreateWorkoutExerciseInput struct {
	WorkoutID  int64    `json:"workout_id"`
	ExerciseID int64    `json:"exercise_id"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight"`
	RestTime   *int     `json:"rest_time"`
}

// UpdateWorkoutExerciseInput is the closed set of patchable prescription
// fields. The workout and exercise references cannot be repointed.
type UpdateWorkoutExerciseInput struct {
	Sets     *int     `json:"sets"`
	Reps     *int     `json:"reps"`
	Weight   *float64 `json:"weight"`
	RestTime *int     `json:"rest_time"`
}

// WorkoutExerciseService manages the exercises placed in a workout. A link
// row has no owner of its own; mutation authorizes against the parent
// workout's owner (so template rows are admin-only, personal rows belong to
// the workout's owner).
type WorkoutExerciseService interface {
	ListByWorkout(ctx context.Context, workoutID int64) ([]domain.WorkoutExercise, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error)
	Create(ctx context.Context, actor *domain.User, input CreateWorkoutExerciseInput) (*domain.WorkoutExercise, error)
	Update(ctx context.Context, actor *domain.User, id int64, input UpdateWorkoutExerciseInput) (*domain.WorkoutExercise, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

// workoutExerciseService implements the WorkoutExerciseService interface.
type workoutExerciseService struct {
	workoutExerciseRepo repository.WorkoutExerciseRepository
	workoutRepo         repository.WorkoutRepository
	authz               Authorizer
}

// NewWorkoutExerciseService creates a new instance of workoutExerciseService.
func NewWorkoutExerciseService(
	workoutExerciseRepo repository.WorkoutExerciseRepository,
	workoutRepo repository.WorkoutRepository,
	authz Authorizer,
) WorkoutExerciseService {
	return &workoutExerciseService{
		workoutExerciseRepo: workoutExerciseRepo,
		workoutRepo:         workoutRepo,
		authz:               authz,
	}
}

func (s *workoutExerciseService) ListByWorkout(ctx context.Context, workoutID int64) ([]domain.WorkoutExercise, error) {
	return s.workoutExerciseRepo.ListByWorkoutID(ctx, workoutID)
}

func (s *workoutExerciseService) GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error) {
	we, err := s.workoutExerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutExerciseNotFound
		}
		return nil, err
	}
	return we, nil
}

// authorizeParent loads the parent workout and checks the actor against its owner.
func (s *workoutExerciseService) authorizeParent(ctx context.Context, actor *domain.User, workoutID int64) error {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutExerciseRefs
		}
		return err
	}
	return s.authz.Authorize(actor, workout.UserID)
}

// Create places an exercise into a workout the actor may mutate.
func (s *workoutExerciseService) Create(ctx context.Context, actor *domain.User, input CreateWorkoutExerciseInput) (*domain.WorkoutExercise, error) {
	if input.WorkoutID == 0 || input.ExerciseID == 0 {
		return nil, ErrWorkoutExerciseRefs
	}
	if err := s.authorizeParent(ctx, actor, input.WorkoutID); err != nil {
		return nil, err
	}

	we := &domain.WorkoutExercise{
		WorkoutID:  input.WorkoutID,
		ExerciseID: input.ExerciseID,
		Sets:       input.Sets,
		Reps:       input.Reps,
		Weight:     input.Weight,
		RestTime:   input.RestTime,
	}
	if _, err := s.workoutExerciseRepo.Create(ctx, we); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrWorkoutExerciseRefs
		}
		return nil, err
	}
	return we, nil
}

// Update patches the prescription fields of a link row.
func (s *workoutExerciseService) Update(ctx context.Context, actor *domain.User, id int64, input UpdateWorkoutExerciseInput) (*domain.WorkoutExercise, error) {
	we, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeParent(ctx, actor, we.WorkoutID); err != nil {
		return nil, err
	}

	if input.Sets != nil {
		we.Sets = *input.Sets
	}
	if input.Reps != nil {
		we.Reps = *input.Reps
	}
	if input.Weight != nil {
		we.Weight = input.Weight
	}
	if input.RestTime != nil {
		we.RestTime = input.RestTime
	}

	if err := s.workoutExerciseRepo.Update(ctx, we); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutExerciseNotFound
		}
		return nil, err
	}
	return we, nil
}

// Delete removes a link row under the parent workout's ownership rules.
func (s *workoutExerciseService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	we, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeParent(ctx, actor, we.WorkoutID); err != nil {
		return err
	}

	err = s.workoutExerciseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutExerciseNotFound
		}
		return err
	}
	return nil
}
