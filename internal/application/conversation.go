package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/avasseur/fitcoach-cli/internal/ports"
	"github.com/google/uuid"
)

const DefaultHistoryLimit = 50

// ClearPrompt describes a pending destructive clear. The caller presents
// Prompt to the user and, on approval, passes Token to ConfirmClear.
type ClearPrompt struct {
	Token  string
	Prompt string
}

// ConversationEngine maintains one user's transcript with optimistic local
// echoes. The transcript is strictly append-only: a send first appends a
// pending echo, and the server's reply arrives as a second, separate
// completed turn. The echo is never edited, so a reload always shows exactly
// what was sent and what was answered, with no reconciliation step.
type ConversationEngine struct {
	api   ports.ChatAPI
	guard *SessionGuard
	clock ports.Clock

	mu         sync.Mutex
	turns      []domain.ConversationTurn
	sending    bool
	clearToken string
}

func NewConversationEngine(api ports.ChatAPI, guard *SessionGuard, clock ports.Clock) *ConversationEngine {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ConversationEngine{api: api, guard: guard, clock: clock}
}

// LoadHistory replaces the whole in-memory transcript with the server's
// ordered sequence, most-recent-last. On failure the transcript is left
// unchanged.
func (e *ConversationEngine) LoadHistory(ctx context.Context, limit int) error {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	turns, err := e.api.History(ctx, limit)
	if err != nil {
		return e.guard.Check(ctx, err)
	}

	e.mu.Lock()
	e.turns = turns
	e.mu.Unlock()

	return nil
}

// SendMessage appends a pending echo, issues the remote call, and on success
// appends the completed turn and returns the coach's reply. A trimmed-empty
// text or an already-outstanding send makes it a no-op returning a zero
// reply: at most one send is in flight at a time, which keeps append order
// equal to the user's causal order. On failure the echo stays pending; no
// error turn is appended.
func (e *ConversationEngine) SendMessage(ctx context.Context, text string) (domain.ChatReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatReply{}, nil
	}

	e.mu.Lock()
	if e.sending {
		e.mu.Unlock()
		return domain.ChatReply{}, nil
	}
	e.sending = true
	e.turns = append(e.turns, domain.ConversationTurn{
		Message:   text,
		Timestamp: e.now(),
	})
	e.mu.Unlock()

	reply, err := e.api.SendMessage(ctx, text)

	e.mu.Lock()
	e.sending = false
	if err == nil {
		e.turns = append(e.turns, domain.ConversationTurn{
			Message:   text,
			Response:  reply.Response,
			Intent:    reply.Intent,
			Sentiment: reply.Sentiment,
			Timestamp: e.now(),
		})
	}
	e.mu.Unlock()

	if err != nil {
		return domain.ChatReply{}, e.guard.Check(ctx, err)
	}

	return reply, nil
}

// RequestClear starts the two-step confirmation protocol for the
// irreversible history clear. No remote call happens until the returned
// token comes back through ConfirmClear.
func (e *ConversationEngine) RequestClear() ClearPrompt {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.clearToken = uuid.NewString()
	return ClearPrompt{
		Token:  e.clearToken,
		Prompt: "This permanently deletes your whole conversation history. Continue?",
	}
}

// ConfirmClear performs the remote clear once the confirmation token
// matches. The token is single-use. On success the transcript empties; on
// failure it is left unchanged and the error is reported without touching
// session state.
func (e *ConversationEngine) ConfirmClear(ctx context.Context, token string) error {
	e.mu.Lock()
	if token == "" || token != e.clearToken {
		e.mu.Unlock()
		return domain.ErrClearNotConfirmed
	}
	e.clearToken = ""
	e.mu.Unlock()

	if err := e.api.ClearHistory(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	e.turns = nil
	e.mu.Unlock()

	return nil
}

// Transcript returns a copy of the current transcript in append order.
func (e *ConversationEngine) Transcript() []domain.ConversationTurn {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.ConversationTurn, len(e.turns))
	copy(out, e.turns)
	return out
}

func (e *ConversationEngine) now() string {
	return e.clock.Now().UTC().Format(time.RFC3339)
}
