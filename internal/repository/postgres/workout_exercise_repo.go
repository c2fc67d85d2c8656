package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// postgresWorkoutExerciseRepository implements repository.WorkoutExerciseRepository
type postgresWorkoutExerciseRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWorkoutExerciseRepository creates a new WorkoutExercise repository backed by PostgreSQL.
func NewPostgresWorkoutExerciseRepository(pool *pgxpool.Pool) repository.WorkoutExerciseRepository {
	return &postgresWorkoutExerciseRepository{pool: pool}
}

const workoutExerciseColumns = `id, workout_id, exercise_id, sets, reps, weight, rest_time`

func scanWorkoutExercise(row pgx.Row) (*domain.WorkoutExercise, error) {
	var we domain.WorkoutExercise
	err := row.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Sets, &we.Reps, &we.Weight, &we.RestTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &we, nil
}

// Create inserts a workout/exercise link row. Dangling workout or exercise ids
// surface as ErrForeignKey.
func (r *postgresWorkoutExerciseRepository) Create(ctx context.Context, we *domain.WorkoutExercise) (int64, error) {
	if we.WorkoutID == 0 || we.ExerciseID == 0 {
		return 0, errors.New("workout ID and exercise ID are required")
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps, weight, rest_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		we.WorkoutID, we.ExerciseID, we.Sets, we.Reps, we.Weight, we.RestTime,
	).Scan(&we.ID)
	if err != nil {
		return 0, mapError(err)
	}
	return we.ID, nil
}

// GetByID retrieves a link row by its id.
func (r *postgresWorkoutExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error) {
	return scanWorkoutExercise(r.pool.QueryRow(ctx,
		`SELECT `+workoutExerciseColumns+` FROM workout_exercises WHERE id = $1`, id))
}

// ListByWorkoutID returns all exercises placed in a workout.
func (r *postgresWorkoutExerciseRepository) ListByWorkoutID(ctx context.Context, workoutID int64) ([]domain.WorkoutExercise, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+workoutExerciseColumns+` FROM workout_exercises WHERE workout_id = $1 ORDER BY id`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.WorkoutExercise
	for rows.Next() {
		var we domain.WorkoutExercise
		if err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Sets, &we.Reps, &we.Weight, &we.RestTime); err != nil {
			return nil, err
		}
		links = append(links, we)
	}
	return links, rows.Err()
}

// Update overwrites the prescription columns. The workout and exercise
// references are not part of the SET list.
func (r *postgresWorkoutExerciseRepository) Update(ctx context.Context, we *domain.WorkoutExercise) error {
	if we.ID == 0 {
		return errors.New("workout exercise ID is required for update")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE workout_exercises SET sets = $1, reps = $2, weight = $3, rest_time = $4
		 WHERE id = $5`,
		we.Sets, we.Reps, we.Weight, we.RestTime, we.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a link row.
func (r *postgresWorkoutExerciseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workout_exercises WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
