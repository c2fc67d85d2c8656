package repository

import (
	"context"

	"fitforge/workout-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound   = RepositoryError("not found")
	ErrDuplicate  = RepositoryError("duplicate row")       // unique constraint violation
	ErrForeignKey = RepositoryError("invalid reference")   // foreign key violation
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// InstructorRepository defines the interface for interacting with instructor data.
type InstructorRepository interface {
	Create(ctx context.Context, instructor *domain.Instructor) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Instructor, error)
	List(ctx context.Context) ([]domain.Instructor, error)
	Update(ctx context.Context, instructor *domain.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete cascades to the user's personal workouts and user exercises.
	Delete(ctx context.Context, id int64) error
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	// Delete cascades to workout_exercises and user_exercises rows.
	Delete(ctx context.Context, id int64) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	// ListTemplates returns instructor templates only (user_id IS NULL).
	ListTemplates(ctx context.Context) ([]domain.Workout, error)
	// ListByUserID returns the personal workouts owned by the given user.
	ListByUserID(ctx context.Context, userID int64) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id int64) error
}

// WorkoutExerciseRepository defines the interface for workout/exercise link rows.
type WorkoutExerciseRepository interface {
	Create(ctx context.Context, we *domain.WorkoutExercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error)
	ListByWorkoutID(ctx context.Context, workoutID int64) ([]domain.WorkoutExercise, error)
	Update(ctx context.Context, we *domain.WorkoutExercise) error
	Delete(ctx context.Context, id int64) error
}

// UserExerciseRepository defines the interface for personal exercise rows.
type UserExerciseRepository interface {
	Create(ctx context.Context, ue *domain.UserExercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.UserExercise, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.UserExercise, error)
	GetByUserAndExercise(ctx context.Context, userID, exerciseID int64) (*domain.UserExercise, error)
	Update(ctx context.Context, ue *domain.UserExercise) error
	Delete(ctx context.Context, id int64) error
}
