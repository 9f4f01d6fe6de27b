package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avasseur/fitcoach-cli/internal/domain"
)

type profileResponse struct {
	User userSchema `json:"user"`
}

type statisticsResponse struct {
	TotalWorkouts         int `json:"total_workouts"`
	Completed             int `json:"completed"`
	Planned               int `json:"planned"`
	TotalCaloriesBurned   int `json:"total_calories_burned"`
	TotalMinutesExercised int `json:"total_minutes_exercised"`
}

func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var resp profileResponse
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &resp, true); err != nil {
		return domain.User{}, fmt.Errorf("get profile: %w", err)
	}

	return userFromSchema(resp.User), nil
}

func (c *Client) Statistics(ctx context.Context) (domain.Statistics, error) {
	var resp statisticsResponse
	if err := c.do(ctx, http.MethodGet, "/profile/statistics", nil, nil, &resp, true); err != nil {
		return domain.Statistics{}, fmt.Errorf("get statistics: %w", err)
	}

	return domain.Statistics{
		TotalWorkouts:         resp.TotalWorkouts,
		Completed:             resp.Completed,
		Planned:               resp.Planned,
		TotalCaloriesBurned:   resp.TotalCaloriesBurned,
		TotalMinutesExercised: resp.TotalMinutesExercised,
	}, nil
}
