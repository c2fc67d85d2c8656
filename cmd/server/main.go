package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"fitforge/workout-planner/internal/api"
	"fitforge/workout-planner/internal/config"
	"fitforge/workout-planner/internal/repository/postgres"
	"fitforge/workout-planner/internal/service"
	"fitforge/workout-planner/internal/session"
)

func main() {
	log.Println("Starting FitForge Workout Planner...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to PostgreSQL: %v", err)
	}
	defer func() {
		log.Println("Closing database pool...")
		pool.Close()
	}()
	log.Println("Database connection established.")

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("FATAL: Could not ensure database schema: %v", err)
	}
	log.Println("Database schema ensured.")

	// --- Session Store ---
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("FATAL: Could not connect to Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("ERROR: Failed to close Redis client: %v", err)
			}
		}()
		sessions = session.NewRedisStore(redisClient, cfg.Session.TTL)
		log.Println("Using Redis session store.")
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
		log.Println("Redis address not set, using in-memory session store.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := postgres.NewPostgresUserRepository(pool)
	instructorRepo := postgres.NewPostgresInstructorRepository(pool)
	exerciseRepo := postgres.NewPostgresExerciseRepository(pool)
	workoutRepo := postgres.NewPostgresWorkoutRepository(pool)
	workoutExerciseRepo := postgres.NewPostgresWorkoutExerciseRepository(pool)
	userExerciseRepo := postgres.NewPostgresUserExerciseRepository(pool)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authz := service.NewAuthorizer()
	authService := service.NewAuthService(userRepo, sessions)
	userService := service.NewUserService(userRepo, authz)
	instructorService := service.NewInstructorService(instructorRepo, authz)
	exerciseService := service.NewExerciseService(exerciseRepo, authz)
	workoutService := service.NewWorkoutService(workoutRepo, authz)
	workoutExerciseService := service.NewWorkoutExerciseService(workoutExerciseRepo, workoutRepo, authz)
	userExerciseService := service.NewUserExerciseService(userExerciseRepo, authz)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	cookie := api.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Session.Secure,
		Domain: cfg.Session.Domain,
	}
	api.SetupRoutes(
		router,
		cookie,
		cfg.CORS.Origin,
		authService,
		userService,
		instructorService,
		exerciseService,
		workoutService,
		workoutExerciseService,
		userExerciseService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
