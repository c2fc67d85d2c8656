package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
	"fitforge/workout-planner/internal/session"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrMissingFields        = errors.New("missing required fields")
)

// AuthService owns registration, login, and the session lifecycle.
// On success Register and Login return the user together with a fresh opaque
// session token; the API layer moves the token in and out of the cookie.
type AuthService interface {
	Register(ctx context.Context, name, email, password, fitnessLevel string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Logout invalidates the session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves a session token back to a user, failing with
	// ErrUnauthenticated when the token is absent, unknown, or bound to a
	// user id that no longer exists.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo repository.UserRepository
	sessions session.Store
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, sessions session.Store) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register handles new user registration and opens a session for the new account.
func (s *authService) Register(ctx context.Context, name, email, password, fitnessLevel string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" || fitnessLevel == "" {
		return nil, "", ErrMissingFields
	}

	// Check whether the email is already taken. The unique index on email is
	// the real guarantee; this check just produces a friendlier error for the
	// common case.
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrHashingFailed
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		FitnessLevel: fitnessLevel,
		// IsAdmin is never taken from a registration payload.
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent registration for the same email.
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login handles user authentication and opens a session on success.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrAuthenticationFailed
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		// Password mismatch maps to the same failure as an unknown email.
		return nil, "", ErrAuthenticationFailed
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout invalidates the session binding.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// CurrentUser resolves the acting identity from a session token.
func (s *authService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The bound user was deleted after login; the session is dead.
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
