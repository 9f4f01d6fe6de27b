package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/avasseur/fitcoach-cli/internal/ports"
)

// SessionGuard classifies the failure outcome of authenticated requests and
// reacts uniformly to session death: local logout, then navigation to the
// login entry point. Every component issuing authenticated requests routes
// its failures through one shared guard instance.
type SessionGuard struct {
	auth *AuthGateway
	nav  ports.Navigator
	log  *slog.Logger
}

func NewSessionGuard(auth *AuthGateway, nav ports.Navigator, log *slog.Logger) *SessionGuard {
	if log == nil {
		log = slog.Default()
	}
	return &SessionGuard{auth: auth, nav: nav, log: log}
}

// Check passes a non-invalidating failure through unchanged. For a
// session-invalidating one it logs out, navigates to login, and returns
// ErrSessionInvalidated; the underlying status never reaches the end user.
// Both side effects are idempotent, so concurrent invalidating failures
// collapse into one cleared session and one navigation.
func (g *SessionGuard) Check(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if !sessionInvalidating(err) {
		return err
	}

	if logoutErr := g.auth.Logout(ctx); logoutErr != nil {
		g.log.Warn("clear session after invalidating failure", "error", logoutErr)
	}
	g.nav.GoToLogin()

	return domain.ErrSessionInvalidated
}

// sessionInvalidating applies the classification rule: 401, 422, or no
// status at all (the request never reached the server, so authentication was
// rejected at the transport boundary). Conflating transport failures with a
// dead token forces a logout on a transient network blip; kept for
// compatibility with the observed behavior, a distinct offline state is the
// candidate replacement.
func sessionInvalidating(err error) bool {
	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		return false
	}

	switch reqErr.Status {
	case 0, 401, 422:
		return true
	}
	return false
}
