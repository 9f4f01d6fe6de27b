package application

import (
	"context"
	"fmt"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/avasseur/fitcoach-cli/internal/ports"
)

// AuthGateway performs register and login against the remote identity
// service and translates success into a session store update. By the time a
// caller observes success, identity propagation has already happened.
type AuthGateway struct {
	api      ports.AuthAPI
	sessions *SessionStore
}

func NewAuthGateway(api ports.AuthAPI, sessions *SessionStore) *AuthGateway {
	return &AuthGateway{api: api, sessions: sessions}
}

func (g *AuthGateway) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	result, err := g.api.Register(ctx, reg)
	if err != nil {
		return domain.User{}, err
	}

	if err := g.sessions.SetSession(ctx, result.Token, result.User); err != nil {
		return domain.User{}, fmt.Errorf("store session after register: %w", err)
	}

	return result.User, nil
}

func (g *AuthGateway) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	result, err := g.api.Login(ctx, creds)
	if err != nil {
		return domain.User{}, err
	}

	if err := g.sessions.SetSession(ctx, result.Token, result.User); err != nil {
		return domain.User{}, fmt.Errorf("store session after login: %w", err)
	}

	return result.User, nil
}

// Logout invalidates the session locally. The remote service is not
// informed; the token simply stops being presented.
func (g *AuthGateway) Logout(ctx context.Context) error {
	return g.sessions.ClearSession(ctx)
}
