package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fitforge/workout-planner/internal/service"
)

// SetupRoutes wires every handler onto the router. The session middleware
// runs on all routes; individual services enforce ownership, so most
// mutation routes stay open here and fail with 401/403 in the service layer.
func SetupRoutes(
	router *gin.Engine,
	cookie SessionCookie,
	corsOrigin string,
	authService service.AuthService,
	userService service.UserService,
	instructorService service.InstructorService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	workoutExerciseService service.WorkoutExerciseService,
	userExerciseService service.UserExerciseService,
) {
	authHandler := NewAuthHandler(authService, cookie)
	userHandler := NewUserHandler(userService)
	instructorHandler := NewInstructorHandler(instructorService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	workoutExerciseHandler := NewWorkoutExerciseHandler(workoutExerciseService)
	userExerciseHandler := NewUserExerciseHandler(userExerciseService)

	// Credentialed cookies only work cross-origin with an exact origin match.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(RequestIDMiddleware())
	router.Use(SessionMiddleware(authService, cookie.Name))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "FitForge Workout Planner API"})
	})

	// Authentication
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/current-user", RequireUser(), authHandler.CurrentUser)

	// Convenience listings scoped to the acting user
	router.GET("/my-exercises", RequireUser(), userExerciseHandler.ListMine)
	router.GET("/my-workouts", RequireUser(), workoutHandler.ListMine)

	// Users. Creation goes through the registration flow so the accepted
	// attribute set (and never is_admin or a raw hash) is enforced.
	users := router.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", authHandler.Register)
		users.GET("/:id", userHandler.Get)
		users.PATCH("/:id", userHandler.Patch)
		users.DELETE("/:id", userHandler.Delete)
	}

	// Instructor catalog
	instructors := router.Group("/instructors")
	{
		instructors.GET("", instructorHandler.List)
		instructors.POST("", instructorHandler.Create)
		instructors.GET("/:id", instructorHandler.Get)
		instructors.PATCH("/:id", instructorHandler.Patch)
		instructors.DELETE("/:id", instructorHandler.Delete)
	}

	// Exercise library
	exercises := router.Group("/exercises")
	{
		exercises.GET("", exerciseHandler.List)
		exercises.POST("", exerciseHandler.Create)
		exercises.GET("/:id", exerciseHandler.Get)
		exercises.PATCH("/:id", exerciseHandler.Patch)
		exercises.DELETE("/:id", exerciseHandler.Delete)
	}

	// Workouts: the collection lists templates, creation is always personal.
	workouts := router.Group("/workouts")
	{
		workouts.GET("", workoutHandler.List)
		workouts.POST("", workoutHandler.Create)
		workouts.GET("/:id", workoutHandler.Get)
		workouts.PATCH("/:id", workoutHandler.Patch)
		workouts.DELETE("/:id", workoutHandler.Delete)
	}

	// Exercises placed inside workouts
	workoutExercises := router.Group("/workout-exercises")
	{
		workoutExercises.GET("", workoutExerciseHandler.List)
		workoutExercises.POST("", workoutExerciseHandler.Create)
		workoutExercises.GET("/:id", workoutExerciseHandler.Get)
		workoutExercises.PATCH("/:id", workoutExerciseHandler.Patch)
		workoutExercises.DELETE("/:id", workoutExerciseHandler.Delete)
	}

	// Personal exercise profile
	userExercises := router.Group("/user-exercises")
	{
		userExercises.GET("", RequireUser(), userExerciseHandler.ListMine)
		userExercises.POST("", userExerciseHandler.Create)
		userExercises.GET("/:id", userExerciseHandler.Get)
		userExercises.PATCH("/:id", userExerciseHandler.Patch)
		userExercises.DELETE("/:id", userExerciseHandler.Delete)
	}
}
