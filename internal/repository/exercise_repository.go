package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/fitness-tracker/internal/domain"
)

// ExerciseRepository encapsulates exercise persistence.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Exercise, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Exercise, error)
}

type exerciseRepository struct {
	pool *pgxpool.Pool
}

// NewExerciseRepository instantiates repository.
func NewExerciseRepository(pool *pgxpool.Pool) ExerciseRepository {
	return &exerciseRepository{pool: pool}
}

const exerciseColumns = `id, user_id, name, sets, repetitions, weight_lifted, distance_covered, calories_burned, intensity, performed_at, created_at, updated_at`

func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	const query = `
        INSERT INTO exercises (user_id, name, sets, repetitions, weight_lifted, distance_covered, calories_burned, intensity, performed_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		exercise.UserID,
		exercise.Name,
		exercise.Sets,
		exercise.Repetitions,
		exercise.WeightLifted,
		exercise.DistanceCovered,
		exercise.CaloriesBurned,
		exercise.Intensity,
		exercise.PerformedAt,
	).Scan(&exercise.ID, &exercise.CreatedAt, &exercise.UpdatedAt)
}

func (r *exerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	const query = `
        UPDATE exercises SET name=$1, sets=$2, repetitions=$3, weight_lifted=$4, distance_covered=$5,
            calories_burned=$6, intensity=$7, performed_at=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		exercise.Name,
		exercise.Sets,
		exercise.Repetitions,
		exercise.WeightLifted,
		exercise.DistanceCovered,
		exercise.CaloriesBurned,
		exercise.Intensity,
		exercise.PerformedAt,
		exercise.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *exerciseRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *exerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	const query = `SELECT ` + exerciseColumns + ` FROM exercises WHERE id=$1`
	var exercise domain.Exercise
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&exercise.ID,
		&exercise.UserID,
		&exercise.Name,
		&exercise.Sets,
		&exercise.Repetitions,
		&exercise.WeightLifted,
		&exercise.DistanceCovered,
		&exercise.CaloriesBurned,
		&exercise.Intensity,
		&exercise.PerformedAt,
		&exercise.CreatedAt,
		&exercise.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Exercise, error) {
	const query = `SELECT ` + exerciseColumns + ` FROM exercises WHERE user_id=$1 ORDER BY performed_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, userID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExercises(rows)
}

func (r *exerciseRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Exercise, error) {
	const query = `SELECT ` + exerciseColumns + ` FROM exercises ORDER BY performed_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExercises(rows)
}

func scanExercises(rows pgx.Rows) ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0)
	for rows.Next() {
		var exercise domain.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.UserID,
			&exercise.Name,
			&exercise.Sets,
			&exercise.Repetitions,
			&exercise.WeightLifted,
			&exercise.DistanceCovered,
			&exercise.CaloriesBurned,
			&exercise.Intensity,
			&exercise.PerformedAt,
			&exercise.CreatedAt,
			&exercise.UpdatedAt,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	return exercises, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}
