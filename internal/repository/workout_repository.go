package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/fitness-tracker/internal/domain"
)

// WorkoutRepository encapsulates workout persistence.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Workout, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Workout, error)
	// ListByUserAsc returns every workout for the user ordered by date,
	// used by summary and chart generation.
	ListByUserAsc(ctx context.Context, userID int64) ([]domain.Workout, error)
}

type workoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository instantiates repository.
func NewWorkoutRepository(pool *pgxpool.Pool) WorkoutRepository {
	return &workoutRepository{pool: pool}
}

const workoutColumns = `id, user_id, workout_date, duration_minutes, created_at, updated_at`

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	const query = `
        INSERT INTO workouts (user_id, workout_date, duration_minutes)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		workout.UserID,
		workout.Date,
		workout.DurationMinutes,
	).Scan(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	const query = `
        UPDATE workouts SET workout_date=$1, duration_minutes=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, workout.Date, workout.DurationMinutes, workout.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM workouts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE id=$1`
	var workout domain.Workout
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Date,
		&workout.DurationMinutes,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id=$1 ORDER BY workout_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, userID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func (r *workoutRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts ORDER BY workout_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func (r *workoutRepository) ListByUserAsc(ctx context.Context, userID int64) ([]domain.Workout, error) {
	const query = `SELECT ` + workoutColumns + ` FROM workouts WHERE user_id=$1 ORDER BY workout_date ASC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func scanWorkouts(rows pgx.Rows) ([]domain.Workout, error) {
	workouts := make([]domain.Workout, 0)
	for rows.Next() {
		var workout domain.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.UserID,
			&workout.Date,
			&workout.DurationMinutes,
			&workout.CreatedAt,
			&workout.UpdatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	return workouts, rows.Err()
}
