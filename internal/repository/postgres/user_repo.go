package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// postgresUserRepository implements repository.UserRepository
type postgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new User repository backed by PostgreSQL.
func NewPostgresUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &postgresUserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, fitness_level, is_admin, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.FitnessLevel, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The unique index on email turns concurrent
// duplicate registrations into ErrDuplicate.
func (r *postgresUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return 0, errors.New("user email and password hash are required")
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, fitness_level, is_admin)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash, user.FitnessLevel, user.IsAdmin,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return 0, mapError(err)
	}
	return user.ID, nil
}

// GetByID retrieves a user by id.
func (r *postgresUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByEmail retrieves a user by email address.
func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// List returns all users.
func (r *postgresUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.FitnessLevel, &user.IsAdmin, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Update overwrites the mutable columns of a user.
func (r *postgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	if user.ID == 0 {
		return errors.New("user ID is required for update")
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, password_hash = $3, fitness_level = $4
		 WHERE id = $5`,
		user.Name, user.Email, user.PasswordHash, user.FitnessLevel, user.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a user. Personal workouts and user_exercises go with it
// via ON DELETE CASCADE.
func (r *postgresUserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
