package main

import (
	"context"
	"log"
	"time"

	"fitforge/workout-planner/internal/config"
	"fitforge/workout-planner/internal/repository/postgres"
	"fitforge/workout-planner/internal/seed"
)

func main() {
	log.Println("Seeding FitForge database...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("FATAL: Could not ensure database schema: %v", err)
	}

	repos := seed.Repositories{
		Instructors:      postgres.NewPostgresInstructorRepository(pool),
		Users:            postgres.NewPostgresUserRepository(pool),
		Exercises:        postgres.NewPostgresExerciseRepository(pool),
		Workouts:         postgres.NewPostgresWorkoutRepository(pool),
		WorkoutExercises: postgres.NewPostgresWorkoutExerciseRepository(pool),
	}

	if err := seed.Run(ctx, repos); err != nil {
		log.Fatalf("FATAL: Seeding failed: %v", err)
	}

	log.Println("Database seeded successfully!")
}
