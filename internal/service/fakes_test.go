package service

import (
	"context"
	"sync"
	"time"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
)

// In-memory repository fakes. They reproduce the repository contract the
// services depend on, including ErrNotFound, ErrDuplicate on unique columns,
// and ErrForeignKey on dangling references.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, repository.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeInstructorRepo struct {
	mu          sync.Mutex
	nextID      int64
	instructors map[int64]domain.Instructor
	referenced  map[int64]bool // ids whose delete fails with ErrForeignKey
}

func newFakeInstructorRepo() *fakeInstructorRepo {
	return &fakeInstructorRepo{
		instructors: make(map[int64]domain.Instructor),
		referenced:  make(map[int64]bool),
	}
}

func (r *fakeInstructorRepo) Create(_ context.Context, instructor *domain.Instructor) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	instructor.ID = r.nextID
	instructor.CreatedAt = time.Now()
	r.instructors[instructor.ID] = *instructor
	return instructor.ID, nil
}

func (r *fakeInstructorRepo) GetByID(_ context.Context, id int64) (*domain.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.instructors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &in, nil
}

func (r *fakeInstructorRepo) List(_ context.Context) ([]domain.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Instructor, 0, len(r.instructors))
	for _, in := range r.instructors {
		out = append(out, in)
	}
	return out, nil
}

func (r *fakeInstructorRepo) Update(_ context.Context, instructor *domain.Instructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instructors[instructor.ID]; !ok {
		return repository.ErrNotFound
	}
	r.instructors[instructor.ID] = *instructor
	return nil
}

func (r *fakeInstructorRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instructors[id]; !ok {
		return repository.ErrNotFound
	}
	if r.referenced[id] {
		return repository.ErrForeignKey
	}
	delete(r.instructors, id)
	return nil
}

type fakeExerciseRepo struct {
	mu        sync.Mutex
	nextID    int64
	exercises map[int64]domain.Exercise
	validFK   map[int64]bool // instructor ids that exist
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{
		exercises: make(map[int64]domain.Exercise),
		validFK:   map[int64]bool{1: true},
	}
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.validFK[exercise.InstructorID] {
		return 0, repository.ErrForeignKey
	}
	r.nextID++
	exercise.ID = r.nextID
	exercise.CreatedAt = time.Now()
	r.exercises[exercise.ID] = *exercise
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id int64) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Exercise, 0, len(r.exercises))
	for _, e := range r.exercises {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

type fakeWorkoutRepo struct {
	mu       sync.Mutex
	nextID   int64
	workouts map[int64]domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[int64]domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	workout.ID = r.nextID
	workout.CreatedAt = time.Now()
	r.workouts[workout.ID] = *workout
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id int64) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r *fakeWorkoutRepo) ListTemplates(_ context.Context) ([]domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Workout{}
	for _, w := range r.workouts {
		if w.UserID == nil {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) ListByUserID(_ context.Context, userID int64) ([]domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Workout{}
	for _, w := range r.workouts {
		if w.UserID != nil && *w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workouts[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type fakeWorkoutExerciseRepo struct {
	mu     sync.Mutex
	nextID int64
	links  map[int64]domain.WorkoutExercise
}

func newFakeWorkoutExerciseRepo() *fakeWorkoutExerciseRepo {
	return &fakeWorkoutExerciseRepo{links: make(map[int64]domain.WorkoutExercise)}
}

func (r *fakeWorkoutExerciseRepo) Create(_ context.Context, we *domain.WorkoutExercise) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	we.ID = r.nextID
	r.links[we.ID] = *we
	return we.ID, nil
}

func (r *fakeWorkoutExerciseRepo) GetByID(_ context.Context, id int64) (*domain.WorkoutExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	we, ok := r.links[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &we, nil
}

func (r *fakeWorkoutExerciseRepo) ListByWorkoutID(_ context.Context, workoutID int64) ([]domain.WorkoutExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.WorkoutExercise{}
	for _, we := range r.links {
		if we.WorkoutID == workoutID {
			out = append(out, we)
		}
	}
	return out, nil
}

func (r *fakeWorkoutExerciseRepo) Update(_ context.Context, we *domain.WorkoutExercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[we.ID]; !ok {
		return repository.ErrNotFound
	}
	r.links[we.ID] = *we
	return nil
}

func (r *fakeWorkoutExerciseRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.links, id)
	return nil
}

type fakeUserExerciseRepo struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]domain.UserExercise
	validFK map[int64]bool // exercise ids that exist
}

func newFakeUserExerciseRepo() *fakeUserExerciseRepo {
	return &fakeUserExerciseRepo{
		rows:    make(map[int64]domain.UserExercise),
		validFK: map[int64]bool{1: true, 2: true},
	}
}

func (r *fakeUserExerciseRepo) Create(_ context.Context, ue *domain.UserExercise) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.validFK[ue.ExerciseID] {
		return 0, repository.ErrForeignKey
	}
	for _, row := range r.rows {
		if row.UserID == ue.UserID && row.ExerciseID == ue.ExerciseID {
			return 0, repository.ErrDuplicate
		}
	}
	r.nextID++
	ue.ID = r.nextID
	ue.CreatedAt = time.Now()
	r.rows[ue.ID] = *ue
	return ue.ID, nil
}

func (r *fakeUserExerciseRepo) GetByID(_ context.Context, id int64) (*domain.UserExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ue, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ue, nil
}

func (r *fakeUserExerciseRepo) ListByUserID(_ context.Context, userID int64) ([]domain.UserExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.UserExercise{}
	for _, ue := range r.rows {
		if ue.UserID == userID {
			out = append(out, ue)
		}
	}
	return out, nil
}

func (r *fakeUserExerciseRepo) GetByUserAndExercise(_ context.Context, userID, exerciseID int64) (*domain.UserExercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ue := range r.rows {
		if ue.UserID == userID && ue.ExerciseID == exerciseID {
			out := ue
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserExerciseRepo) Update(_ context.Context, ue *domain.UserExercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[ue.ID]; !ok {
		return repository.ErrNotFound
	}
	r.rows[ue.ID] = *ue
	return nil
}

func (r *fakeUserExerciseRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// Shared test actors.

func testUser(id int64) *domain.User {
	return &domain.User{ID: id, Name: "Test User", Email: "user@example.com", FitnessLevel: "Beginner"}
}

func testAdmin(id int64) *domain.User {
	u := testUser(id)
	u.Name = "Admin"
	u.Email = "admin@example.com"
	u.IsAdmin = true
	return u
}

func int64Ptr(v int64) *int64     { return &v }
func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
