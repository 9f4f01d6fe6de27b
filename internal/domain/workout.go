package domain

type Workout struct {
	ID              int
	WorkoutType     string
	DurationMinutes int
	CaloriesBurned  int
	Intensity       string
	Notes           string
	Status          string
	CompletedDate   string
}

// Statistics is the aggregate the profile service computes over completed
// workouts.
type Statistics struct {
	TotalWorkouts         int
	Completed             int
	Planned               int
	TotalCaloriesBurned   int
	TotalMinutesExercised int
}

// DashboardSnapshot is a composite read-only view assembled from three
// independent fetches. Each field populates on its own success path;
// Loading turns false once the workouts fetch settles, regardless of the
// other two.
type DashboardSnapshot struct {
	User           *User
	Statistics     *Statistics
	RecentWorkouts []Workout
	Loading        bool
}
