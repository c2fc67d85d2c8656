package domain

// WorkoutExercise places an exercise inside a workout with its prescription.
// Rows are removed when the owning workout or exercise is deleted.
type WorkoutExercise struct {
	ID         int64    `json:"id"`
	WorkoutID  int64    `json:"workout_id"`
	ExerciseID int64    `json:"exercise_id"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight,omitempty"`    // user submittable attribute
	RestTime   *int     `json:"rest_time,omitempty"` // in seconds, user submittable attribute
}
