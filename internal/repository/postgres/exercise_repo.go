package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// postgresExerciseRepository implements repository.ExerciseRepository
type postgresExerciseRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresExerciseRepository creates a new Exercise repository backed by PostgreSQL.
func NewPostgresExerciseRepository(pool *pgxpool.Pool) repository.ExerciseRepository {
	return &postgresExerciseRepository{pool: pool}
}

const exerciseColumns = `id, name, category, muscle_group, difficulty, instructions, instructor_id, created_at`

func scanExercise(row pgx.Row) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := row.Scan(&exercise.ID, &exercise.Name, &exercise.Category, &exercise.MuscleGroup,
		&exercise.Difficulty, &exercise.Instructions, &exercise.InstructorID, &exercise.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// Create inserts a new exercise. A dangling instructor_id surfaces as ErrForeignKey.
func (r *postgresExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	if exercise.Name == "" || exercise.InstructorID == 0 {
		return 0, errors.New("exercise name and instructor ID are required")
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO exercises (name, category, muscle_group, difficulty, instructions, instructor_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		exercise.Name, exercise.Category, exercise.MuscleGroup,
		exercise.Difficulty, exercise.Instructions, exercise.InstructorID,
	).Scan(&exercise.ID, &exercise.CreatedAt)
	if err != nil {
		return 0, mapError(err)
	}
	return exercise.ID, nil
}

// GetByID retrieves an exercise by its id.
func (r *postgresExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	return scanExercise(r.pool.QueryRow(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id))
}

// List returns the whole exercise library.
func (r *postgresExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var exercise domain.Exercise
		if err := rows.Scan(&exercise.ID, &exercise.Name, &exercise.Category, &exercise.MuscleGroup,
			&exercise.Difficulty, &exercise.Instructions, &exercise.InstructorID, &exercise.CreatedAt); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	return exercises, rows.Err()
}

// Update overwrites the mutable columns of an exercise.
// instructor_id is deliberately not part of the SET list; authorship does not move.
func (r *postgresExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == 0 {
		return errors.New("exercise ID is required for update")
	}
	if exercise.Name == "" {
		return errors.New("exercise name cannot be empty")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE exercises SET name = $1, category = $2, muscle_group = $3,
		        difficulty = $4, instructions = $5
		 WHERE id = $6`,
		exercise.Name, exercise.Category, exercise.MuscleGroup,
		exercise.Difficulty, exercise.Instructions, exercise.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an exercise; workout_exercises and user_exercises rows
// referencing it are removed by the cascade rules.
func (r *postgresExerciseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
