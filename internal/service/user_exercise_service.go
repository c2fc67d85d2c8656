package service

import (
	"context"
	"errors"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserExerciseNotFound = errors.New("user exercise not found")
	ErrExerciseRequired     = errors.New("exercise_id is required and must reference an existing exercise")
	ErrExerciseAlreadyAdded = errors.New("exercise already in your profile")
)

// CreateUserExerciseInput carries the accepted attributes for adding an
// exercise to the acting user's profile. There is no user field: the owner is
// always the session user.
type CreateUserExerciseInput struct {
	ExerciseID     int64    `json:"exercise_id"`
	PersonalRecord *float64 `json:"personal_record"`
	Notes          string   `json:"notes"`
}

// UpdateUserExerciseInput is the closed set of patchable fields. Owner and
// exercise references cannot be repointed.
type UpdateUserExerciseInput struct {
	PersonalRecord *float64 `json:"personal_record"`
	Notes          *string  `json:"notes"`
}

// UserExerciseService manages personal exercise rows. Every operation except
// Create/ListMine authorizes against the row's owner.
type UserExerciseService interface {
	ListMine(ctx context.Context, actor *domain.User) ([]domain.UserExercise, error)
	GetByID(ctx context.Context, id int64) (*domain.UserExercise, error)
	Create(ctx context.Context, actor *domain.User, input CreateUserExerciseInput) (*domain.UserExercise, error)
	Update(ctx context.Context, actor *domain.User, id int64, input UpdateUserExerciseInput) (*domain.UserExercise, error)
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

// userExerciseService implements the UserExerciseService interface.
type userExerciseService struct {
	userExerciseRepo repository.UserExerciseRepository
	authz            Authorizer
}

// NewUserExerciseService creates a new instance of userExerciseService.
func NewUserExerciseService(userExerciseRepo repository.UserExerciseRepository, authz Authorizer) UserExerciseService {
	return &userExerciseService{userExerciseRepo: userExerciseRepo, authz: authz}
}

func (s *userExerciseService) ListMine(ctx context.Context, actor *domain.User) ([]domain.UserExercise, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	return s.userExerciseRepo.ListByUserID(ctx, actor.ID)
}

func (s *userExerciseService) GetByID(ctx context.Context, id int64) (*domain.UserExercise, error) {
	ue, err := s.userExerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserExerciseNotFound
		}
		return nil, err
	}
	return ue, nil
}

// Create adds an exercise to the acting user's profile. The owner id comes
// from the session, never the payload. A second row for the same
// (user, exercise) pair is rejected; the storage-level unique index backs the
// check under concurrency.
func (s *userExerciseService) Create(ctx context.Context, actor *domain.User, input CreateUserExerciseInput) (*domain.UserExercise, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if input.ExerciseID == 0 {
		return nil, ErrExerciseRequired
	}

	_, err := s.userExerciseRepo.GetByUserAndExercise(ctx, actor.ID, input.ExerciseID)
	if err == nil {
		return nil, ErrExerciseAlreadyAdded
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	ue := &domain.UserExercise{
		UserID:         actor.ID,
		ExerciseID:     input.ExerciseID,
		PersonalRecord: input.PersonalRecord,
		Notes:          input.Notes,
	}
	if _, err := s.userExerciseRepo.Create(ctx, ue); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent add of the same pair.
			return nil, ErrExerciseAlreadyAdded
		}
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrExerciseRequired
		}
		return nil, err
	}
	return ue, nil
}

// Update patches the personal record and notes of an owned row.
func (s *userExerciseService) Update(ctx context.Context, actor *domain.User, id int64, input UpdateUserExerciseInput) (*domain.UserExercise, error) {
	ue, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actor, &ue.UserID); err != nil {
		return nil, err
	}

	if input.PersonalRecord != nil {
		ue.PersonalRecord = input.PersonalRecord
	}
	if input.Notes != nil {
		ue.Notes = *input.Notes
	}

	if err := s.userExerciseRepo.Update(ctx, ue); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserExerciseNotFound
		}
		return nil, err
	}
	return ue, nil
}

// Delete removes an owned row.
func (s *userExerciseService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	ue, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.Authorize(actor, &ue.UserID); err != nil {
		return err
	}

	err = s.userExerciseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserExerciseNotFound
		}
		return err
	}
	return nil
}
