package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/avasseur/fitcoach-cli/internal/domain"
	"github.com/avasseur/fitcoach-cli/internal/ports"
)

const (
	recentWorkoutLimit    = 5
	completedStatusFilter = "completed"
)

// DashboardAggregator composes a consolidated view from three independent
// reads: profile, statistics, and the most recent completed workouts. The
// three fetches run concurrently with no cross-dependency; a failure in one
// neither cancels nor blocks the others. The snapshot's Loading flag is
// driven solely by the workouts fetch settling: workouts is the primary
// readiness signal, profile and statistics are enrichments that may arrive
// late or not at all.
type DashboardAggregator struct {
	profiles ports.ProfileAPI
	workouts ports.WorkoutAPI
	guard    *SessionGuard
	log      *slog.Logger

	mu       sync.Mutex
	snapshot domain.DashboardSnapshot
}

func NewDashboardAggregator(profiles ports.ProfileAPI, workouts ports.WorkoutAPI, guard *SessionGuard, log *slog.Logger) *DashboardAggregator {
	if log == nil {
		log = slog.Default()
	}

	return &DashboardAggregator{profiles: profiles, workouts: workouts, guard: guard, log: log}
}

// Load fans out the three reads and waits for all of them to settle. The
// returned error is ErrSessionInvalidated when any of the three classified
// as session-invalidating (first classified failure wins, even if the other
// two succeeded); feature-local failures are logged and absorbed, leaving
// their snapshot field unpopulated.
func (a *DashboardAggregator) Load(ctx context.Context) (domain.DashboardSnapshot, error) {
	a.mu.Lock()
	a.snapshot = domain.DashboardSnapshot{Loading: true}
	a.mu.Unlock()

	var invalidatedOnce sync.Once
	var invalidated error
	report := func(what string, err error) {
		checked := a.guard.Check(ctx, err)
		if errors.Is(checked, domain.ErrSessionInvalidated) {
			invalidatedOnce.Do(func() { invalidated = checked })
			return
		}
		a.log.Warn("dashboard fetch failed", "source", what, "error", checked)
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		user, err := a.profiles.Profile(ctx)
		if err != nil {
			report("profile", err)
			return
		}
		a.mu.Lock()
		a.snapshot.User = &user
		a.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		stats, err := a.profiles.Statistics(ctx)
		if err != nil {
			report("statistics", err)
			return
		}
		a.mu.Lock()
		a.snapshot.Statistics = &stats
		a.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		workouts, err := a.workouts.Workouts(ctx, completedStatusFilter, recentWorkoutLimit)

		a.mu.Lock()
		a.snapshot.Loading = false
		if err == nil {
			a.snapshot.RecentWorkouts = workouts
		}
		a.mu.Unlock()

		if err != nil {
			report("workouts", err)
		}
	}()

	wg.Wait()

	return a.Snapshot(), invalidated
}

// Snapshot returns the current composite view.
func (a *DashboardAggregator) Snapshot() domain.DashboardSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := a.snapshot
	if a.snapshot.RecentWorkouts != nil {
		out.RecentWorkouts = make([]domain.Workout, len(a.snapshot.RecentWorkouts))
		copy(out.RecentWorkouts, a.snapshot.RecentWorkouts)
	}
	return out
}
