package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/fitness-tracker/internal/auth"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/events"
)

type fakeWorkoutRepo struct {
	workouts map[int64]*domain.Workout
	seq      int64
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[int64]*domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) error {
	r.seq++
	workout.ID = r.seq
	copied := *workout
	r.workouts[workout.ID] = &copied
	return nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	if _, ok := r.workouts[workout.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *workout
	r.workouts[workout.ID] = &copied
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.workouts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.workouts, id)
	return nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id int64) (*domain.Workout, error) {
	workout, ok := r.workouts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *workout
	return &copied, nil
}

func (r *fakeWorkoutRepo) ListByUser(ctx context.Context, userID int64, _, _ int) ([]domain.Workout, error) {
	return r.ListByUserAsc(ctx, userID)
}

func (r *fakeWorkoutRepo) ListAll(_ context.Context, _, _ int) ([]domain.Workout, error) {
	all := make([]domain.Workout, 0, len(r.workouts))
	for _, workout := range r.workouts {
		all = append(all, *workout)
	}
	return all, nil
}

func (r *fakeWorkoutRepo) ListByUserAsc(_ context.Context, userID int64) ([]domain.Workout, error) {
	mine := make([]domain.Workout, 0)
	for _, workout := range r.workouts {
		if workout.UserID == userID {
			mine = append(mine, *workout)
		}
	}
	return mine, nil
}

type fakeCache struct {
	values map[string][]byte
	dels   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, ok := c.values[key]
	return val, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	c.dels++
	delete(c.values, key)
	return nil
}

func principalFor(userID int64) *auth.Principal {
	return &auth.Principal{User: &domain.User{ID: userID, Username: "tester", IsActive: true}}
}

func seedWorkouts(t *testing.T, repo *fakeWorkoutRepo, userID int64, durations ...int) {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, d := range durations {
		require.NoError(t, repo.Create(context.Background(), &domain.Workout{
			UserID:          userID,
			Date:            base.AddDate(0, 0, i),
			DurationMinutes: d,
		}))
	}
}

func TestSummaryMath(t *testing.T) {
	repo := newFakeWorkoutRepo()
	seedWorkouts(t, repo, 1, 30, 60, 45)
	seedWorkouts(t, repo, 2, 999)

	svc := NewStatsService(repo, nil, 0, zap.NewNop())

	summary, err := svc.Summary(context.Background(), principalFor(1))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalWorkouts)
	assert.Equal(t, 135, summary.TotalDuration)
	assert.InDelta(t, 45.0, summary.AverageDuration, 0.001)
	assert.Equal(t, 60, summary.MaxDuration)
	assert.Equal(t, 30, summary.MinDuration)
}

func TestSummaryEmptyIsZero(t *testing.T) {
	svc := NewStatsService(newFakeWorkoutRepo(), nil, 0, zap.NewNop())

	summary, err := svc.Summary(context.Background(), principalFor(1))
	require.NoError(t, err)
	assert.Equal(t, &domain.WorkoutSummary{}, summary)
}

func TestSummaryUsesCache(t *testing.T) {
	repo := newFakeWorkoutRepo()
	seedWorkouts(t, repo, 1, 30)
	cache := newFakeCache()
	svc := NewStatsService(repo, cache, time.Minute, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Summary(ctx, principalFor(1))
	require.NoError(t, err)
	require.Len(t, cache.values, 1)

	// Mutate behind the cache's back; the stale value must be served.
	seedWorkouts(t, repo, 1, 120)
	second, err := svc.Summary(ctx, principalFor(1))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWorkoutEventsInvalidateSummary(t *testing.T) {
	repo := newFakeWorkoutRepo()
	seedWorkouts(t, repo, 1, 30)
	cache := newFakeCache()
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewStatsService(repo, cache, time.Minute, zap.NewNop())
	svc.RegisterInvalidation(dispatcher)

	workoutSvc := NewWorkoutService(repo, dispatcher)
	ctx := context.Background()

	_, err := svc.Summary(ctx, principalFor(1))
	require.NoError(t, err)
	require.Len(t, cache.values, 1)

	_, err = workoutSvc.Log(ctx, principalFor(1), WorkoutInput{
		Date:            time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 50,
	})
	require.NoError(t, err)

	assert.Empty(t, cache.values, "logging a workout must drop the cached summary")

	summary, err := svc.Summary(ctx, principalFor(1))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalWorkouts)
}

func TestProgressChartRendersPNG(t *testing.T) {
	repo := newFakeWorkoutRepo()
	seedWorkouts(t, repo, 1, 30, 45, 60)

	svc := NewStatsService(repo, nil, 0, zap.NewNop())

	png, err := svc.ProgressChart(context.Background(), principalFor(1))
	require.NoError(t, err)
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestProgressChartEmptyIsNotFound(t *testing.T) {
	svc := NewStatsService(newFakeWorkoutRepo(), nil, 0, zap.NewNop())

	_, err := svc.ProgressChart(context.Background(), principalFor(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
