package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spec-kit/fitness-tracker/internal/auth"
	"github.com/spec-kit/fitness-tracker/internal/domain"
	"github.com/spec-kit/fitness-tracker/internal/events"
	"github.com/spec-kit/fitness-tracker/internal/repository"
	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// SummaryCache is the slice of Redis the stats service needs. A nil cache
// disables caching without changing behavior.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// StatsService computes workout aggregates and renders progress charts.
type StatsService struct {
	workouts repository.WorkoutRepository
	cache    SummaryCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewStatsService builds the service.
func NewStatsService(workouts repository.WorkoutRepository, cache SummaryCache, cacheTTL time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{workouts: workouts, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// RegisterInvalidation drops a user's cached summary whenever one of their
// workouts changes.
func (s *StatsService) RegisterInvalidation(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	invalidate := func(ctx context.Context, event events.Event) error {
		if s.cache == nil {
			return nil
		}
		if err := s.cache.Del(ctx, summaryKey(event.UserID)); err != nil {
			s.logger.Warn("summary cache invalidation failed", zap.Int64("user_id", event.UserID), zap.Error(err))
		}
		return nil
	}
	dispatcher.Subscribe(events.EventWorkoutLogged, invalidate)
	dispatcher.Subscribe(events.EventWorkoutUpdated, invalidate)
	dispatcher.Subscribe(events.EventWorkoutDeleted, invalidate)
}

// Summary aggregates the caller's workout durations. A user without workouts
// gets the zero summary.
func (s *StatsService) Summary(ctx context.Context, principal *auth.Principal) (*domain.WorkoutSummary, error) {
	userID := principal.UserID()
	key := summaryKey(userID)

	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("summary cache read failed", zap.Error(err))
		} else if ok {
			var cached domain.WorkoutSummary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	workouts, err := s.workouts.ListByUserAsc(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := summarize(workouts)

	if s.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
				s.logger.Warn("summary cache write failed", zap.Error(err))
			}
		}
	}
	return summary, nil
}

// ProgressChart renders a PNG line chart of the caller's workout durations
// over time.
func (s *StatsService) ProgressChart(ctx context.Context, principal *auth.Principal) ([]byte, error) {
	workouts, err := s.workouts.ListByUserAsc(ctx, principal.UserID())
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, apperrors.NewNotFound("workout data", nil)
	}
	return renderProgressChart(workouts)
}

func summarize(workouts []domain.Workout) *domain.WorkoutSummary {
	summary := &domain.WorkoutSummary{TotalWorkouts: len(workouts)}
	if len(workouts) == 0 {
		return summary
	}

	summary.MaxDuration = workouts[0].DurationMinutes
	summary.MinDuration = workouts[0].DurationMinutes
	for _, w := range workouts {
		summary.TotalDuration += w.DurationMinutes
		if w.DurationMinutes > summary.MaxDuration {
			summary.MaxDuration = w.DurationMinutes
		}
		if w.DurationMinutes < summary.MinDuration {
			summary.MinDuration = w.DurationMinutes
		}
	}
	summary.AverageDuration = float64(summary.TotalDuration) / float64(len(workouts))
	return summary
}

func renderProgressChart(workouts []domain.Workout) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Workout Progress Chart"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Duration (minutes)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, len(workouts))
	for i, w := range workouts {
		points[i].X = float64(w.Date.Unix())
		points[i].Y = float64(w.DurationMinutes)
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, err
	}
	p.Add(line)

	writer, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryKey(userID int64) string {
	return fmt.Sprintf("fitness:summary:%d", userID)
}
