package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/avasseur/fitcoach-cli/internal/domain"
)

// loginNavigator is the terminal rendition of "send the user back to the
// login screen": it prints a sign-in hint once per signed-out stretch.
// Repeated GoToLogin calls while already signed out stay silent, so
// concurrent session-death triggers produce a single message.
type loginNavigator struct {
	mu      sync.Mutex
	out     io.Writer
	atLogin bool
}

func newLoginNavigator(out io.Writer) *loginNavigator {
	return &loginNavigator{out: out}
}

func (n *loginNavigator) GoToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.atLogin {
		return
	}
	n.atLogin = true
	_, _ = fmt.Fprintln(n.out, "Your session has ended. Sign in again with: fitcoach login")
}

// trackSession resets the navigator once a session is established, so a
// later session death prints the hint again.
func (n *loginNavigator) trackSession(user *domain.User) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if user != nil {
		n.atLogin = false
	}
}
