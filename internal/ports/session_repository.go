package ports

import "context"

// SessionRepository persists the one opaque session token under a well-known
// location, surviving process restarts until explicit deletion.
type SessionRepository interface {
	Get(ctx context.Context) (string, error)
	Put(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
