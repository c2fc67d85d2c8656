package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// postgresWorkoutRepository implements repository.WorkoutRepository
type postgresWorkoutRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWorkoutRepository creates a new Workout repository backed by PostgreSQL.
func NewPostgresWorkoutRepository(pool *pgxpool.Pool) repository.WorkoutRepository {
	return &postgresWorkoutRepository{pool: pool}
}

const workoutColumns = `id, name, description, duration, instructor_id, user_id, created_at`

func scanWorkout(row pgx.Row) (*domain.Workout, error) {
	var workout domain.Workout
	err := row.Scan(&workout.ID, &workout.Name, &workout.Description, &workout.Duration,
		&workout.InstructorID, &workout.UserID, &workout.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// Create inserts a new workout. UserID nil stores a template row.
func (r *postgresWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	if workout.Name == "" || workout.InstructorID == 0 {
		return 0, errors.New("workout name and instructor ID are required")
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO workouts (name, description, duration, instructor_id, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		workout.Name, workout.Description, workout.Duration, workout.InstructorID, workout.UserID,
	).Scan(&workout.ID, &workout.CreatedAt)
	if err != nil {
		return 0, mapError(err)
	}
	return workout.ID, nil
}

// GetByID retrieves a workout by its id.
func (r *postgresWorkoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	return scanWorkout(r.pool.QueryRow(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = $1`, id))
}

func (r *postgresWorkoutRepository) list(ctx context.Context, query string, args ...any) ([]domain.Workout, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var workout domain.Workout
		if err := rows.Scan(&workout.ID, &workout.Name, &workout.Description, &workout.Duration,
			&workout.InstructorID, &workout.UserID, &workout.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	return workouts, rows.Err()
}

// ListTemplates returns instructor templates only. Personal workouts never
// appear in the shared listing.
func (r *postgresWorkoutRepository) ListTemplates(ctx context.Context) ([]domain.Workout, error) {
	return r.list(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id IS NULL ORDER BY id`)
}

// ListByUserID returns the personal workouts owned by the given user.
func (r *postgresWorkoutRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Workout, error) {
	return r.list(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = $1 ORDER BY id`, userID)
}

// Update overwrites the mutable columns of a workout. The owner (user_id) and
// instructor_id are deliberately not part of the SET list.
func (r *postgresWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == 0 {
		return errors.New("workout ID is required for update")
	}
	if workout.Name == "" {
		return errors.New("workout name cannot be empty")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE workouts SET name = $1, description = $2, duration = $3 WHERE id = $4`,
		workout.Name, workout.Description, workout.Duration, workout.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a workout; its workout_exercises rows cascade.
func (r *postgresWorkoutRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
