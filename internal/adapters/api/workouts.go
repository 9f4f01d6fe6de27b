package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avasseur/fitcoach-cli/internal/domain"
)

type workoutsResponse struct {
	Workouts []workoutSchema `json:"workouts"`
	Total    int             `json:"total"`
}

type workoutSchema struct {
	ID              int    `json:"id"`
	WorkoutType     string `json:"workout_type"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	Intensity       string `json:"intensity"`
	Notes           string `json:"notes"`
	Status          string `json:"status"`
	CompletedDate   string `json:"completed_date"`
}

func (c *Client) Workouts(ctx context.Context, status string, limit int) ([]domain.Workout, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if status != "" {
		query.Set("status", status)
	}

	var resp workoutsResponse
	if err := c.do(ctx, http.MethodGet, "/workouts", query, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}

	workouts := make([]domain.Workout, 0, len(resp.Workouts))
	for _, entry := range resp.Workouts {
		workouts = append(workouts, domain.Workout{
			ID:              entry.ID,
			WorkoutType:     entry.WorkoutType,
			DurationMinutes: entry.DurationMinutes,
			CaloriesBurned:  entry.CaloriesBurned,
			Intensity:       entry.Intensity,
			Notes:           entry.Notes,
			Status:          entry.Status,
			CompletedDate:   entry.CompletedDate,
		})
	}

	return workouts, nil
}
