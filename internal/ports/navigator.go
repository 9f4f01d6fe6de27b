package ports

// Navigator moves the user interface to an entry point. Implementations must
// be idempotent: navigating to the current destination is a no-op, so
// concurrent session-death triggers net a single visible navigation.
type Navigator interface {
	GoToLogin()
}
