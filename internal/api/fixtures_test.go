package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fitforge/workout-planner/internal/domain"
	"fitforge/workout-planner/internal/repository"
	"fitforge/workout-planner/internal/service"
	"fitforge/workout-planner/internal/session"
)

// In-memory repositories backing full-router tests. They form a small
// consistent dataset: foreign keys are checked against the sibling maps.

type memDB struct {
	nextID           int64
	users            map[int64]domain.User
	instructors      map[int64]domain.Instructor
	exercises        map[int64]domain.Exercise
	workouts         map[int64]domain.Workout
	workoutExercises map[int64]domain.WorkoutExercise
	userExercises    map[int64]domain.UserExercise
}

func newMemDB() *memDB {
	return &memDB{
		users:            make(map[int64]domain.User),
		instructors:      make(map[int64]domain.Instructor),
		exercises:        make(map[int64]domain.Exercise),
		workouts:         make(map[int64]domain.Workout),
		workoutExercises: make(map[int64]domain.WorkoutExercise),
		userExercises:    make(map[int64]domain.UserExercise),
	}
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

type memUserRepo struct{ db *memDB }

func (r memUserRepo) Create(_ context.Context, u *domain.User) (int64, error) {
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return 0, repository.ErrDuplicate
		}
	}
	u.ID = r.db.id()
	u.CreatedAt = time.Now()
	r.db.users[u.ID] = *u
	return u.ID, nil
}

func (r memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.db.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.db.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.db.users {
		out = append(out, u)
	}
	return out, nil
}

func (r memUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.db.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.db.users {
		if id != u.ID && existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.db.users[u.ID] = *u
	return nil
}

func (r memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.users, id)
	for weID, ue := range r.db.userExercises {
		if ue.UserID == id {
			delete(r.db.userExercises, weID)
		}
	}
	for wID, w := range r.db.workouts {
		if w.UserID != nil && *w.UserID == id {
			delete(r.db.workouts, wID)
		}
	}
	return nil
}

type memInstructorRepo struct{ db *memDB }

func (r memInstructorRepo) Create(_ context.Context, in *domain.Instructor) (int64, error) {
	in.ID = r.db.id()
	in.CreatedAt = time.Now()
	r.db.instructors[in.ID] = *in
	return in.ID, nil
}

func (r memInstructorRepo) GetByID(_ context.Context, id int64) (*domain.Instructor, error) {
	in, ok := r.db.instructors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &in, nil
}

func (r memInstructorRepo) List(_ context.Context) ([]domain.Instructor, error) {
	out := []domain.Instructor{}
	for _, in := range r.db.instructors {
		out = append(out, in)
	}
	return out, nil
}

func (r memInstructorRepo) Update(_ context.Context, in *domain.Instructor) error {
	if _, ok := r.db.instructors[in.ID]; !ok {
		return repository.ErrNotFound
	}
	r.db.instructors[in.ID] = *in
	return nil
}

func (r memInstructorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.instructors[id]; !ok {
		return repository.ErrNotFound
	}
	for _, e := range r.db.exercises {
		if e.InstructorID == id {
			return repository.ErrForeignKey
		}
	}
	for _, w := range r.db.workouts {
		if w.InstructorID == id {
			return repository.ErrForeignKey
		}
	}
	delete(r.db.instructors, id)
	return nil
}

type memExerciseRepo struct{ db *memDB }

func (r memExerciseRepo) Create(_ context.Context, e *domain.Exercise) (int64, error) {
	if _, ok := r.db.instructors[e.InstructorID]; !ok {
		return 0, repository.ErrForeignKey
	}
	e.ID = r.db.id()
	e.CreatedAt = time.Now()
	r.db.exercises[e.ID] = *e
	return e.ID, nil
}

func (r memExerciseRepo) GetByID(_ context.Context, id int64) (*domain.Exercise, error) {
	e, ok := r.db.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r memExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	for _, e := range r.db.exercises {
		out = append(out, e)
	}
	return out, nil
}

func (r memExerciseRepo) Update(_ context.Context, e *domain.Exercise) error {
	if _, ok := r.db.exercises[e.ID]; !ok {
		return repository.ErrNotFound
	}
	r.db.exercises[e.ID] = *e
	return nil
}

func (r memExerciseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.exercises, id)
	for weID, we := range r.db.workoutExercises {
		if we.ExerciseID == id {
			delete(r.db.workoutExercises, weID)
		}
	}
	for ueID, ue := range r.db.userExercises {
		if ue.ExerciseID == id {
			delete(r.db.userExercises, ueID)
		}
	}
	return nil
}

type memWorkoutRepo struct{ db *memDB }

func (r memWorkoutRepo) Create(_ context.Context, w *domain.Workout) (int64, error) {
	if _, ok := r.db.instructors[w.InstructorID]; !ok {
		return 0, repository.ErrForeignKey
	}
	w.ID = r.db.id()
	w.CreatedAt = time.Now()
	r.db.workouts[w.ID] = *w
	return w.ID, nil
}

func (r memWorkoutRepo) GetByID(_ context.Context, id int64) (*domain.Workout, error) {
	w, ok := r.db.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r memWorkoutRepo) ListTemplates(_ context.Context) ([]domain.Workout, error) {
	out := []domain.Workout{}
	for _, w := range r.db.workouts {
		if w.UserID == nil {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r memWorkoutRepo) ListByUserID(_ context.Context, userID int64) ([]domain.Workout, error) {
	out := []domain.Workout{}
	for _, w := range r.db.workouts {
		if w.UserID != nil && *w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r memWorkoutRepo) Update(_ context.Context, w *domain.Workout) error {
	if _, ok := r.db.workouts[w.ID]; !ok {
		return repository.ErrNotFound
	}
	r.db.workouts[w.ID] = *w
	return nil
}

func (r memWorkoutRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.workouts, id)
	for weID, we := range r.db.workoutExercises {
		if we.WorkoutID == id {
			delete(r.db.workoutExercises, weID)
		}
	}
	return nil
}

type memWorkoutExerciseRepo struct{ db *memDB }

func (r memWorkoutExerciseRepo) Create(_ context.Context, we *domain.WorkoutExercise) (int64, error) {
	if _, ok := r.db.workouts[we.WorkoutID]; !ok {
		return 0, repository.ErrForeignKey
	}
	if _, ok := r.db.exercises[we.ExerciseID]; !ok {
		return 0, repository.ErrForeignKey
	}
	we.ID = r.db.id()
	r.db.workoutExercises[we.ID] = *we
	return we.ID, nil
}

func (r memWorkoutExerciseRepo) GetByID(_ context.Context, id int64) (*domain.WorkoutExercise, error) {
	we, ok := r.db.workoutExercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &we, nil
}

func (r memWorkoutExerciseRepo) ListByWorkoutID(_ context.Context, workoutID int64) ([]domain.WorkoutExercise, error) {
	out := []domain.WorkoutExercise{}
	for _, we := range r.db.workoutExercises {
		if we.WorkoutID == workoutID {
			out = append(out, we)
		}
	}
	return out, nil
}

func (r memWorkoutExerciseRepo) Update(_ context.Context, we *domain.WorkoutExercise) error {
	if _, ok := r.db.workoutExercises[we.ID]; !ok {
		return repository.ErrNotFound
	}
	r.db.workoutExercises[we.ID] = *we
	return nil
}

func (r memWorkoutExerciseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.workoutExercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.workoutExercises, id)
	return nil
}

type memUserExerciseRepo struct{ db *memDB }

func (r memUserExerciseRepo) Create(_ context.Context, ue *domain.UserExercise) (int64, error) {
	if _, ok := r.db.exercises[ue.ExerciseID]; !ok {
		return 0, repository.ErrForeignKey
	}
	for _, existing := range r.db.userExercises {
		if existing.UserID == ue.UserID && existing.ExerciseID == ue.ExerciseID {
			return 0, repository.ErrDuplicate
		}
	}
	ue.ID = r.db.id()
	ue.CreatedAt = time.Now()
	r.db.userExercises[ue.ID] = *ue
	return ue.ID, nil
}

func (r memUserExerciseRepo) GetByID(_ context.Context, id int64) (*domain.UserExercise, error) {
	ue, ok := r.db.userExercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ue, nil
}

func (r memUserExerciseRepo) ListByUserID(_ context.Context, userID int64) ([]domain.UserExercise, error) {
	out := []domain.UserExercise{}
	for _, ue := range r.db.userExercises {
		if ue.UserID == userID {
			out = append(out, ue)
		}
	}
	return out, nil
}

func (r memUserExerciseRepo) GetByUserAndExercise(_ context.Context, userID, exerciseID int64) (*domain.UserExercise, error) {
	for _, ue := range r.db.userExercises {
		if ue.UserID == userID && ue.ExerciseID == exerciseID {
			out := ue
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memUserExerciseRepo) Update(_ context.Context, ue *domain.UserExercise) error {
	if _, ok := r.db.userExercises[ue.ID]; !ok {
		return repository.ErrNotFound
	}
	r.db.userExercises[ue.ID] = *ue
	return nil
}

func (r memUserExerciseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.userExercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.userExercises, id)
	return nil
}

// apiFixture is a fully wired router over the in-memory dataset.
type apiFixture struct {
	router *gin.Engine
	db     *memDB
}

const testCookieName = "fitforge_session"

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newMemDB()
	sessions := session.NewMemoryStore(time.Hour)
	authz := service.NewAuthorizer()

	authService := service.NewAuthService(memUserRepo{db}, sessions)
	userService := service.NewUserService(memUserRepo{db}, authz)
	instructorService := service.NewInstructorService(memInstructorRepo{db}, authz)
	exerciseService := service.NewExerciseService(memExerciseRepo{db}, authz)
	workoutService := service.NewWorkoutService(memWorkoutRepo{db}, authz)
	workoutExerciseService := service.NewWorkoutExerciseService(memWorkoutExerciseRepo{db}, memWorkoutRepo{db}, authz)
	userExerciseService := service.NewUserExerciseService(memUserExerciseRepo{db}, authz)

	router := gin.New()
	cookie := SessionCookie{Name: testCookieName, MaxAge: 3600}
	SetupRoutes(
		router,
		cookie,
		"http://localhost:5173",
		authService,
		userService,
		instructorService,
		exerciseService,
		workoutService,
		workoutExerciseService,
		userExerciseService,
	)

	return &apiFixture{router: router, db: db}
}

// do performs a request. A non-empty sessionToken rides in the session cookie.
func (f *apiFixture) do(t *testing.T, method, path, sessionToken string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionToken})
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// sessionCookie digs the session token out of a response's Set-Cookie headers.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, c := range res.Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

// register creates an account through the HTTP surface and returns its
// session token plus the decoded user.
func (f *apiFixture) register(t *testing.T, name, email string) (string, domain.User) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/register", "", gin.H{
		"name":          name,
		"email":         email,
		"password":      "pw-123456",
		"fitness_level": "Intermediate",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	return cookie.Value, user
}

// seedAdmin plants an admin account directly and logs it in.
func (f *apiFixture) seedAdmin(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &domain.User{Name: "Admin", Email: "admin@fitforge.com", PasswordHash: string(hash), FitnessLevel: "Advanced", IsAdmin: true}
	_, err = memUserRepo{f.db}.Create(context.Background(), admin)
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/login", "", gin.H{"email": "admin@fitforge.com", "password": "admin-pw"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	return cookie.Value
}

// seedCatalog plants one instructor, one exercise, and one template workout.
func (f *apiFixture) seedCatalog(t *testing.T) (domain.Instructor, domain.Exercise, domain.Workout) {
	t.Helper()
	ctx := context.Background()

	instructor := &domain.Instructor{Name: "Jake Gallagher", Specialty: "Strength Training"}
	_, err := memInstructorRepo{f.db}.Create(ctx, instructor)
	require.NoError(t, err)

	exercise := &domain.Exercise{Name: "Power Push-ups", Category: "Bodyweight", MuscleGroup: "Chest", Difficulty: "Intermediate", Instructions: "x", InstructorID: instructor.ID}
	_, err = memExerciseRepo{f.db}.Create(ctx, exercise)
	require.NoError(t, err)

	template := &domain.Workout{Name: "Strength Builder", Duration: 75, InstructorID: instructor.ID}
	_, err = memWorkoutRepo{f.db}.Create(ctx, template)
	require.NoError(t, err)

	return *instructor, *exercise, *template
}
