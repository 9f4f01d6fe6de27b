package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avasseur/fitcoach-cli/internal/domain"
)

type registerRequest struct {
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	FullName     string  `json:"full_name,omitempty"`
	Age          int     `json:"age,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Gender       string  `json:"gender,omitempty"`
	FitnessLevel string  `json:"fitness_level,omitempty"`
	FitnessGoal  string  `json:"fitness_goal,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string     `json:"access_token"`
	User        userSchema `json:"user"`
}

type userSchema struct {
	ID           int     `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FullName     string  `json:"full_name"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	Gender       string  `json:"gender"`
	FitnessLevel string  `json:"fitness_level"`
	FitnessGoal  string  `json:"fitness_goal"`
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error) {
	payload := registerRequest{
		Email:        reg.Email,
		Username:     reg.Username,
		Password:     reg.Password,
		FullName:     reg.FullName,
		Age:          reg.Age,
		Weight:       reg.Weight,
		Height:       reg.Height,
		Gender:       reg.Gender,
		FitnessLevel: reg.FitnessLevel,
		FitnessGoal:  reg.FitnessGoal,
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, payload, &resp, false); err != nil {
		return domain.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	return authResultFromResponse(resp)
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	payload := loginRequest{Email: creds.Email, Password: creds.Password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, payload, &resp, false); err != nil {
		return domain.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	return authResultFromResponse(resp)
}

func authResultFromResponse(resp authResponse) (domain.AuthResult, error) {
	if resp.AccessToken == "" {
		return domain.AuthResult{}, &domain.RequestError{Status: 0, Message: "auth response missing access token"}
	}

	return domain.AuthResult{Token: resp.AccessToken, User: userFromSchema(resp.User)}, nil
}

func userFromSchema(u userSchema) domain.User {
	return domain.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FullName:     u.FullName,
		Age:          u.Age,
		Weight:       u.Weight,
		Height:       u.Height,
		Gender:       u.Gender,
		FitnessLevel: u.FitnessLevel,
		FitnessGoal:  u.FitnessGoal,
	}
}
