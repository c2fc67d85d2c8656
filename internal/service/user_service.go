package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("user not found")
)

// UpdateUserInput is the closed set of patchable user fields. The admin flag
// and raw password hash are deliberately absent; Password is re-hashed when
// set.
type UpdateUserInput struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	FitnessLevel *string `json:"fitness_level"`
	Password     *string `json:"password"`
}

// UserService manages user accounts. A user is its own owner: patch and
// delete require the user itself or an admin.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id int64, input UpdateUserInput) (*domain.User, error)
	// Delete removes the account; personal workouts and user exercises
	// cascade away with it.
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
	authz    Authorizer
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, authz Authorizer) UserService {
	return &userService{userRepo: userRepo, authz: authz}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update patches an account with the fields present in input.
func (s *userService) Update(ctx context.Context, actor *domain.User, id int64, input UpdateUserInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Authorize(actor, &user.ID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FitnessLevel != nil {
		user.FitnessLevel = *input.FitnessLevel
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}
	if user.Name == "" || user.Email == "" {
		return nil, ErrMissingFields
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Delete removes an account under the self-or-admin rule.
func (s *userService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.Authorize(actor, &user.ID); err != nil {
		return err
	}

	err = s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
