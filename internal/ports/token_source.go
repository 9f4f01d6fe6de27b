package ports

import "context"

// TokenSource exposes the current bearer token for outgoing requests.
// Reads of the persisted token go through the session store, never straight
// to storage.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}
