package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// postgresInstructorRepository implements repository.InstructorRepository
type postgresInstructorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInstructorRepository creates a new Instructor repository backed by PostgreSQL.
func NewPostgresInstructorRepository(pool *pgxpool.Pool) repository.InstructorRepository {
	return &postgresInstructorRepository{pool: pool}
}

// Create inserts a new instructor and returns its generated id.
func (r *postgresInstructorRepository) Create(ctx context.Context, instructor *domain.Instructor) (int64, error) {
	if instructor.Name == "" || instructor.Specialty == "" {
		return 0, errors.New("instructor name and specialty are required")
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO instructors (name, specialty, bio)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		instructor.Name, instructor.Specialty, instructor.Bio,
	).Scan(&instructor.ID, &instructor.CreatedAt)
	if err != nil {
		return 0, mapError(err)
	}
	return instructor.ID, nil
}

// GetByID retrieves an instructor by its id.
func (r *postgresInstructorRepository) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	var instructor domain.Instructor
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, specialty, bio, created_at FROM instructors WHERE id = $1`, id,
	).Scan(&instructor.ID, &instructor.Name, &instructor.Specialty, &instructor.Bio, &instructor.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &instructor, nil
}

// List returns all instructors in insertion order.
func (r *postgresInstructorRepository) List(ctx context.Context) ([]domain.Instructor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, specialty, bio, created_at FROM instructors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []domain.Instructor
	for rows.Next() {
		var instructor domain.Instructor
		if err := rows.Scan(&instructor.ID, &instructor.Name, &instructor.Specialty, &instructor.Bio, &instructor.CreatedAt); err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}
	return instructors, rows.Err()
}

// Update overwrites the mutable columns of an instructor.
func (r *postgresInstructorRepository) Update(ctx context.Context, instructor *domain.Instructor) error {
	if instructor.ID == 0 {
		return errors.New("instructor ID is required for update")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE instructors SET name = $1, specialty = $2, bio = $3 WHERE id = $4`,
		instructor.Name, instructor.Specialty, instructor.Bio, instructor.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an instructor. Fails with ErrForeignKey while exercises or
// workouts still reference it (instructor identity is immutable once referenced).
func (r *postgresInstructorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
