package ports

import (
	"context"

	"github.com/avasseur/fitcoach-cli/internal/domain"
)

type AuthAPI interface {
	Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error)
}

type ChatAPI interface {
	SendMessage(ctx context.Context, message string) (domain.ChatReply, error)
	History(ctx context.Context, limit int) ([]domain.ConversationTurn, error)
	ClearHistory(ctx context.Context) error
}

type ProfileAPI interface {
	Profile(ctx context.Context) (domain.User, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

type WorkoutAPI interface {
	Workouts(ctx context.Context, status string, limit int) ([]domain.Workout, error)
}
