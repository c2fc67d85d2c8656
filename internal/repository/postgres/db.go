package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitforge/workout-planner/internal/repository"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Connect establishes a pgx connection pool using the provided URL and
// verifies the connection with a ping.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// schemaDDL creates all tables. Cascade rules implement the delete semantics:
// deleting a user removes their personal workouts and user_exercises; deleting
// an exercise or workout removes dependent link rows. The unique index on
// user_exercises(user_id, exercise_id) enforces the one-row-per-pair rule at
// the storage level, so concurrent check-then-insert requests cannot race past
// the handler check.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS instructors (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(100) NOT NULL,
	specialty     VARCHAR(100) NOT NULL,
	bio           TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(100) NOT NULL,
	email         VARCHAR(120) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	fitness_level VARCHAR(20) NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercises (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(100) NOT NULL,
	category      VARCHAR(50) NOT NULL,
	muscle_group  VARCHAR(50) NOT NULL,
	difficulty    VARCHAR(20) NOT NULL,
	instructions  TEXT NOT NULL,
	instructor_id BIGINT NOT NULL REFERENCES instructors(id),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workouts (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(100) NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	duration      INTEGER NOT NULL,
	instructor_id BIGINT NOT NULL REFERENCES instructors(id),
	user_id       BIGINT REFERENCES users(id) ON DELETE CASCADE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id          BIGSERIAL PRIMARY KEY,
	workout_id  BIGINT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	exercise_id BIGINT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	sets        INTEGER NOT NULL,
	reps        INTEGER NOT NULL,
	weight      DOUBLE PRECISION,
	rest_time   INTEGER
);

CREATE TABLE IF NOT EXISTS user_exercises (
	id              BIGSERIAL PRIMARY KEY,
	user_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	exercise_id     BIGINT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	personal_record DOUBLE PRECISION,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, exercise_id)
);
`

// EnsureSchema creates the tables and constraints if they do not exist yet.
// Called once during server startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaDDL)
	return err
}

// mapError translates driver errors into repository errors so the service
// layer never sees pgconn types.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return repository.ErrDuplicate
		case "23503": // foreign_key_violation
			return repository.ErrForeignKey
		}
	}
	return err
}
