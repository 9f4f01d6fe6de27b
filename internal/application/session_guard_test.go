package application

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/avasseur/fitcoach-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardFixture(t *testing.T) (*SessionGuard, *mocks.MockSessionRepository, *mocks.MockNavigator) {
	t.Helper()

	repo := mocks.NewMockSessionRepository(t)
	nav := mocks.NewMockNavigator(t)
	store := NewSessionStore(repo)
	gateway := NewAuthGateway(mocks.NewMockAuthAPI(t), store)

	return NewSessionGuard(gateway, nav, nil), repo, nav
}

func TestGuardPassesNilThrough(t *testing.T) {
	guard, _, _ := newGuardFixture(t)

	require.NoError(t, guard.Check(context.Background(), nil))
}

func TestGuardClassifiesSessionInvalidatingStatuses(t *testing.T) {
	for _, status := range []int{0, 401, 422} {
		t.Run("status "+strconv.Itoa(status), func(t *testing.T) {
			guard, repo, nav := newGuardFixture(t)

			repo.EXPECT().Delete(mockAnyContext()).Return(nil).Once()
			nav.EXPECT().GoToLogin().Once()

			err := guard.Check(context.Background(), &domain.RequestError{Status: status})
			require.ErrorIs(t, err, domain.ErrSessionInvalidated)
		})
	}
}

func TestGuardPassesFeatureLocalFailuresThrough(t *testing.T) {
	for _, status := range []int{400, 403, 404, 500, 503} {
		guard, _, _ := newGuardFixture(t)

		wireErr := &domain.RequestError{Status: status, Message: "nope"}
		err := guard.Check(context.Background(), wireErr)
		require.ErrorIs(t, err, wireErr)
		// No Delete or GoToLogin expectations: any session mutation or
		// navigation would fail the mocks.
	}
}

func TestGuardIgnoresNonRequestErrors(t *testing.T) {
	guard, _, _ := newGuardFixture(t)

	plainErr := errors.New("local bookkeeping failed")
	err := guard.Check(context.Background(), plainErr)
	require.ErrorIs(t, err, plainErr)
}

func TestGuardSwallowsUnderlyingStatus(t *testing.T) {
	guard, repo, nav := newGuardFixture(t)

	repo.EXPECT().Delete(mockAnyContext()).Return(nil)
	nav.EXPECT().GoToLogin()

	err := guard.Check(context.Background(), &domain.RequestError{Status: 401, Message: "token expired"})
	require.ErrorIs(t, err, domain.ErrSessionInvalidated)

	var reqErr *domain.RequestError
	assert.False(t, errors.As(err, &reqErr))
	assert.NotContains(t, err.Error(), "401")
}

func TestGuardConcurrentInvalidationCollapsesToOneObservableEffect(t *testing.T) {
	guard, repo, nav := newGuardFixture(t)

	// Clearing an already-cleared session stays a no-op, and the navigator
	// contract makes repeat navigation a no-op, so repeated triggers are
	// allowed to reach both.
	repo.EXPECT().Delete(mockAnyContext()).Return(nil)
	nav.EXPECT().GoToLogin()

	first := guard.Check(context.Background(), &domain.RequestError{Status: 401})
	second := guard.Check(context.Background(), &domain.RequestError{Status: 0})
	require.ErrorIs(t, first, domain.ErrSessionInvalidated)
	require.ErrorIs(t, second, domain.ErrSessionInvalidated)
}
