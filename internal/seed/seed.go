// Package seed populates a fresh database with the starter catalog:
// four instructors, five demo accounts, the exercise library, and the
// instructor workout templates. Demo accounts share one default password
// and start with empty personal profiles.
package seed

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// DefaultPassword is the login password for every seeded account.
const DefaultPassword = "fitforge123"

// Repositories groups the stores the seeder writes to.
type Repositories struct {
	Instructors      repository.InstructorRepository
	Users            repository.UserRepository
	Exercises        repository.ExerciseRepository
	Workouts         repository.WorkoutRepository
	WorkoutExercises repository.WorkoutExerciseRepository
}

// Run inserts the starter data. It refuses to run against a database that
// already has instructors so a redeploy cannot duplicate the catalog.
func Run(ctx context.Context, repos Repositories) error {
	existing, err := repos.Instructors.List(ctx)
	if err != nil {
		return fmt.Errorf("checking existing data: %w", err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("database already seeded (%d instructors present)", len(existing))
	}

	instructors := []domain.Instructor{
		{Name: "Jake Gallagher", Specialty: "Strength Training", Bio: "Expert in powerlifting and muscle building techniques"},
		{Name: "Waruiru Kibathi", Specialty: "Cardio & Endurance", Bio: "Marathon runner specializing in cardiovascular fitness"},
		{Name: "Levi Waithaka", Specialty: "Functional Fitness", Bio: "Functional movement and athletic performance specialist"},
		{Name: "Zelda Wambui", Specialty: "Flexibility & Recovery", Bio: "Yoga instructor and mobility expert"},
	}
	instructorIDs := make([]int64, len(instructors))
	for i := range instructors {
		id, err := repos.Instructors.Create(ctx, &instructors[i])
		if err != nil {
			return fmt.Errorf("creating instructor %q: %w", instructors[i].Name, err)
		}
		instructorIDs[i] = id
	}
	log.Printf("Seeded %d instructors", len(instructors))

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing default password: %w", err)
	}

	users := []domain.User{
		{Name: "Admin User", Email: "admin@fitforge.com", FitnessLevel: "Advanced", IsAdmin: true},
		{Name: "Lewis Hamilton", Email: "lewis.hamilton@fitforge.com", FitnessLevel: "Advanced"},
		{Name: "Max Verstappen", Email: "max.verstappen@fitforge.com", FitnessLevel: "Advanced"},
		{Name: "Charles Leclerc", Email: "charles.leclerc@fitforge.com", FitnessLevel: "Intermediate"},
		{Name: "Lando Norris", Email: "lando.norris@fitforge.com", FitnessLevel: "Intermediate"},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if _, err := repos.Users.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("creating user %q: %w", users[i].Email, err)
		}
	}
	log.Printf("Seeded %d users", len(users))

	exercises := []domain.Exercise{
		{
			Name:         "Power Push-ups",
			Category:     "Bodyweight",
			MuscleGroup:  "Chest",
			Difficulty:   "Intermediate",
			Instructions: "Jake's explosive push-up technique for upper body strength.",
			InstructorID: instructorIDs[0],
		},
		{
			Name:         "Endurance Running",
			Category:     "Cardio",
			MuscleGroup:  "Legs",
			Difficulty:   "Beginner",
			Instructions: "Waruiru's marathon training technique for cardiovascular fitness.",
			InstructorID: instructorIDs[1],
		},
		{
			Name:         "Functional Deadlifts",
			Category:     "Weightlifting",
			MuscleGroup:  "Back",
			Difficulty:   "Advanced",
			Instructions: "Levi's functional deadlift movement for athletic performance.",
			InstructorID: instructorIDs[2],
		},
		{
			Name:         "Flexibility Flow",
			Category:     "Yoga",
			MuscleGroup:  "Full Body",
			Difficulty:   "Beginner",
			Instructions: "Zelda's yoga flow sequence for flexibility and recovery.",
			InstructorID: instructorIDs[3],
		},
		{
			Name:         "Strength Squats",
			Category:     "Weightlifting",
			MuscleGroup:  "Legs",
			Difficulty:   "Intermediate",
			Instructions: "Jake's powerlifting squat technique for maximum strength.",
			InstructorID: instructorIDs[0],
		},
		{
			Name:         "Core Stability",
			Category:     "Bodyweight",
			MuscleGroup:  "Core",
			Difficulty:   "Intermediate",
			Instructions: "Levi's functional core training for athletic stability.",
			InstructorID: instructorIDs[2],
		},
	}
	exerciseIDs := make([]int64, len(exercises))
	for i := range exercises {
		id, err := repos.Exercises.Create(ctx, &exercises[i])
		if err != nil {
			return fmt.Errorf("creating exercise %q: %w", exercises[i].Name, err)
		}
		exerciseIDs[i] = id
	}
	log.Printf("Seeded %d exercises", len(exercises))

	// Instructor templates only. UserID stays nil so every account sees them.
	workouts := []domain.Workout{
		{Name: "Strength Builder", Description: "Jake's complete strength training program", Duration: 75, InstructorID: instructorIDs[0]},
		{Name: "Cardio Endurance", Description: "Waruiru's marathon training workout", Duration: 90, InstructorID: instructorIDs[1]},
		{Name: "Functional Athlete", Description: "Levi's athletic performance routine", Duration: 60, InstructorID: instructorIDs[2]},
		{Name: "Flexibility & Recovery", Description: "Zelda's yoga and mobility session", Duration: 45, InstructorID: instructorIDs[3]},
	}
	workoutIDs := make([]int64, len(workouts))
	for i := range workouts {
		id, err := repos.Workouts.Create(ctx, &workouts[i])
		if err != nil {
			return fmt.Errorf("creating workout %q: %w", workouts[i].Name, err)
		}
		workoutIDs[i] = id
	}
	log.Printf("Seeded %d workout templates", len(workouts))

	weight := func(v float64) *float64 { return &v }
	rest := func(v int) *int { return &v }

	workoutExercises := []domain.WorkoutExercise{
		{WorkoutID: workoutIDs[0], ExerciseID: exerciseIDs[0], Sets: 4, Reps: 15, Weight: weight(0), RestTime: rest(45)},
		{WorkoutID: workoutIDs[0], ExerciseID: exerciseIDs[4], Sets: 3, Reps: 60, Weight: weight(0), RestTime: rest(30)},
		{WorkoutID: workoutIDs[1], ExerciseID: exerciseIDs[1], Sets: 5, Reps: 12, Weight: weight(0), RestTime: rest(60)},
		{WorkoutID: workoutIDs[1], ExerciseID: exerciseIDs[5], Sets: 4, Reps: 8, Weight: weight(0), RestTime: rest(90)},
		{WorkoutID: workoutIDs[2], ExerciseID: exerciseIDs[2], Sets: 5, Reps: 5, Weight: weight(225), RestTime: rest(180)},
		{WorkoutID: workoutIDs[3], ExerciseID: exerciseIDs[3], Sets: 4, Reps: 1, Weight: weight(0), RestTime: rest(30)},
	}
	for i := range workoutExercises {
		if _, err := repos.WorkoutExercises.Create(ctx, &workoutExercises[i]); err != nil {
			return fmt.Errorf("creating workout exercise %d: %w", i+1, err)
		}
	}
	log.Printf("Seeded %d workout exercises", len(workoutExercises))

	// No personal workouts or user exercises. Accounts start empty.
	return nil
}
