package dashboard

import (
	"fmt"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(snapshot domain.DashboardSnapshot, s styles) string {
	lines := []string{
		s.title.Render("FitCoach Dashboard"),
	}

	lines = append(lines, greetingLine(snapshot.User, s))

	if snapshot.Statistics != nil {
		lines = append(lines, s.section.Render(renderStatistics(*snapshot.Statistics, s)))
	} else {
		lines = append(lines, s.section.Render(s.empty.Render("Statistics unavailable.")))
	}

	lines = append(lines, s.section.Render(renderWorkouts(snapshot.RecentWorkouts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func greetingLine(user *domain.User, s styles) string {
	if user == nil {
		return s.empty.Render("Profile unavailable.")
	}

	name := user.FullName
	if name == "" {
		name = user.Username
	}

	greeting := s.greeting.Render(fmt.Sprintf("Welcome back, %s!", name))
	if user.FitnessGoal == "" {
		return greeting
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		greeting,
		s.meta.Render(fmt.Sprintf("goal: %s", user.FitnessGoal)),
	)
}

func renderStatistics(stats domain.Statistics, s styles) string {
	row := func(key string, value int) string {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.statKey.Render(key+": "),
			s.statVal.Render(fmt.Sprintf("%d", value)),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.header.Render("Your progress"),
		row("workouts", stats.TotalWorkouts),
		row("completed", stats.Completed),
		row("planned", stats.Planned),
		row("calories burned", stats.TotalCaloriesBurned),
		row("minutes exercised", stats.TotalMinutesExercised),
	)
}

func renderWorkouts(workouts []domain.Workout, s styles) string {
	lines := []string{
		s.header.Render(fmt.Sprintf("Recent workouts: %d", len(workouts))),
	}

	if len(workouts) == 0 {
		lines = append(lines, s.empty.Render("No completed workouts yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, workout := range workouts {
		lines = append(lines, workoutLine(workout, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func workoutLine(workout domain.Workout, s styles) string {
	label := workout.WorkoutType
	if label == "" {
		label = "workout"
	}

	detail := fmt.Sprintf("%s  %d min, %d kcal", label, workout.DurationMinutes, workout.CaloriesBurned)
	line := s.workout.Render("- " + detail)

	if workout.CompletedDate != "" {
		line += " " + s.meta.Render(fmt.Sprintf("(%s)", workout.CompletedDate))
	}

	return line
}
