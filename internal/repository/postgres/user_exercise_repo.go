package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// postgresUserExerciseRepository implements repository.UserExerciseRepository
type postgresUserExerciseRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserExerciseRepository creates a new UserExercise repository backed by PostgreSQL.
func NewPostgresUserExerciseRepository(pool *pgxpool.Pool) repository.UserExerciseRepository {
	return &postgresUserExerciseRepository{pool: pool}
}

const userExerciseColumns = `id, user_id, exercise_id, personal_record, notes, created_at`

func scanUserExercise(row pgx.Row) (*domain.UserExercise, error) {
	var ue domain.UserExercise
	err := row.Scan(&ue.ID, &ue.UserID, &ue.ExerciseID, &ue.PersonalRecord, &ue.Notes, &ue.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &ue, nil
}

// Create inserts a personal exercise row. The unique index on
// (user_id, exercise_id) turns a concurrent duplicate into ErrDuplicate even
// when two requests pass the handler-level existence check at the same time.
func (r *postgresUserExerciseRepository) Create(ctx context.Context, ue *domain.UserExercise) (int64, error) {
	if ue.UserID == 0 || ue.ExerciseID == 0 {
		return 0, errors.New("user ID and exercise ID are required")
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_exercises (user_id, exercise_id, personal_record, notes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		ue.UserID, ue.ExerciseID, ue.PersonalRecord, ue.Notes,
	).Scan(&ue.ID, &ue.CreatedAt)
	if err != nil {
		return 0, mapError(err)
	}
	return ue.ID, nil
}

// GetByID retrieves a personal exercise row by its id.
func (r *postgresUserExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.UserExercise, error) {
	return scanUserExercise(r.pool.QueryRow(ctx,
		`SELECT `+userExerciseColumns+` FROM user_exercises WHERE id = $1`, id))
}

// ListByUserID returns all personal exercise rows for a user.
func (r *postgresUserExerciseRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.UserExercise, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userExerciseColumns+` FROM user_exercises WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userExercises []domain.UserExercise
	for rows.Next() {
		var ue domain.UserExercise
		if err := rows.Scan(&ue.ID, &ue.UserID, &ue.ExerciseID, &ue.PersonalRecord, &ue.Notes, &ue.CreatedAt); err != nil {
			return nil, err
		}
		userExercises = append(userExercises, ue)
	}
	return userExercises, rows.Err()
}

// GetByUserAndExercise finds the row for a (user, exercise) pair, if any.
func (r *postgresUserExerciseRepository) GetByUserAndExercise(ctx context.Context, userID, exerciseID int64) (*domain.UserExercise, error) {
	return scanUserExercise(r.pool.QueryRow(ctx,
		`SELECT `+userExerciseColumns+` FROM user_exercises WHERE user_id = $1 AND exercise_id = $2`,
		userID, exerciseID))
}

// Update overwrites the personal record and notes. Owner and exercise
// references are not part of the SET list.
func (r *postgresUserExerciseRepository) Update(ctx context.Context, ue *domain.UserExercise) error {
	if ue.ID == 0 {
		return errors.New("user exercise ID is required for update")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE user_exercises SET personal_record = $1, notes = $2 WHERE id = $3`,
		ue.PersonalRecord, ue.Notes, ue.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a personal exercise row.
func (r *postgresUserExerciseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM user_exercises WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
