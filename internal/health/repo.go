package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMetricsNotFound = errors.New("user metrics not found")

// Repo persists measurements and their derived metrics.
//
// Tables:
//
//	measurements(id, user_id, height_cm, weight_kg, gender, age,
//	    activity_level, neck_cm, waist_cm, hip_cm, created_at,
//	    UNIQUE (user_id, (created_at::date)))
//	user_metrics(id, user_id, measurement_id, bmi, bmi_category,
//	    body_fat_pct, body_fat_mass_kg, lean_body_mass_kg, goal, goal_name,
//	    body_fat_category, reasoning, bmr, tdee, goal_calories, protein_g,
//	    fats_g, carbs_g, perfect_weight_kg, perfect_weight_delta_kg, created_at)
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the measurement and its derived metrics in one transaction, so
// a failure in either insert leaves no partial record behind. Returns the
// metrics with the measurement and metrics IDs set.
func (r *Repo) Add(ctx context.Context, m Measurement, metrics UserMetrics) (_ *UserMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", m.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = tx.QueryRow(
		ctx,
		`INSERT INTO measurements
				(user_id, height_cm, weight_kg, gender, age, activity_level, neck_cm, waist_cm, hip_cm, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		m.UserID, m.HeightCm, m.WeightKg, m.Gender, m.Age, m.ActivityLevel,
		m.NeckCm, m.WaistCm, m.HipCm, m.CreatedAt,
	).Scan(&metrics.MeasurementID); err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}

	if err = tx.QueryRow(
		ctx,
		`INSERT INTO user_metrics
				(user_id, measurement_id, bmi, bmi_category, body_fat_pct, body_fat_mass_kg,
				 lean_body_mass_kg, goal, goal_name, body_fat_category, reasoning,
				 bmr, tdee, goal_calories, protein_g, fats_g, carbs_g,
				 perfect_weight_kg, perfect_weight_delta_kg, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			RETURNING id;`,
		metrics.UserID, metrics.MeasurementID,
		metrics.Composition.BMI, metrics.Composition.BMICategory,
		metrics.Composition.BodyFatPct, metrics.Composition.BodyFatMassKg, metrics.Composition.LeanBodyMassKg,
		metrics.Recommendation.Goal, metrics.Recommendation.GoalName,
		metrics.Recommendation.BodyFatCategory, metrics.Recommendation.Reasoning,
		metrics.Energy.BMR, metrics.Energy.TDEE, metrics.Energy.GoalCalories,
		metrics.Energy.Macros.ProteinG, metrics.Energy.Macros.FatsG, metrics.Energy.Macros.CarbsG,
		metrics.PerfectWeight.WeightKg, metrics.PerfectWeight.DeltaKg,
		metrics.CreatedAt,
	).Scan(&metrics.ID); err != nil {
		return nil, fmt.Errorf("insert user metrics: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("metrics.id", metrics.ID))
	return &metrics, nil
}

// List returns the append-only metrics time series for a user, newest first.
func (r *Repo) List(ctx context.Context, userID string, page, size int) (_ []UserMetrics, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM user_metrics WHERE user_id = $1;`,
		userID,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count user metrics: %w", err)
	}

	limit := size
	offset := (page - 1) * size
	if total <= limit {
		limit = total
		offset = 0
	}
	if total-offset < limit {
		offset = total - limit
	}

	rows, err := r.db.Query(
		ctx,
		selectUserMetrics+`
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
			OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, fmt.Errorf("rows: %w", err)
	}

	metrics, err := r.rows2metrics(rows)
	if err != nil {
		return nil, -1, fmt.Errorf("rows2metrics: %w", err)
	}
	return metrics, total, nil
}

// Latest returns the most recent metrics record for a user.
func (r *Repo) Latest(ctx context.Context, userID string) (_ *UserMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectUserMetrics+`
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics, err := r.rows2metrics(rows)
	if err != nil {
		return nil, err
	}
	if len(metrics) != 1 {
		return nil, ErrMetricsNotFound
	}
	return &metrics[0], nil
}

const selectUserMetrics = `
	SELECT
		id, user_id, measurement_id, bmi, bmi_category, body_fat_pct,
		body_fat_mass_kg, lean_body_mass_kg, goal, goal_name, body_fat_category,
		reasoning, bmr, tdee, goal_calories, protein_g, fats_g, carbs_g,
		perfect_weight_kg, perfect_weight_delta_kg, created_at
	FROM user_metrics`

func (r *Repo) rows2metrics(rows pgx.Rows) ([]UserMetrics, error) {
	var metrics []UserMetrics
	for rows.Next() {
		var um UserMetrics
		var createdAt time.Time
		if err := rows.Scan(
			&um.ID, &um.UserID, &um.MeasurementID,
			&um.Composition.BMI, &um.Composition.BMICategory,
			&um.Composition.BodyFatPct, &um.Composition.BodyFatMassKg, &um.Composition.LeanBodyMassKg,
			&um.Recommendation.Goal, &um.Recommendation.GoalName,
			&um.Recommendation.BodyFatCategory, &um.Recommendation.Reasoning,
			&um.Energy.BMR, &um.Energy.TDEE, &um.Energy.GoalCalories,
			&um.Energy.Macros.ProteinG, &um.Energy.Macros.FatsG, &um.Energy.Macros.CarbsG,
			&um.PerfectWeight.WeightKg, &um.PerfectWeight.DeltaKg,
			&createdAt,
		); err != nil {
			return nil, err
		}
		um.Recommendation.BMICategory = um.Composition.BMICategory
		um.PerfectWeight.AbsDeltaKg = um.PerfectWeight.DeltaKg
		if um.PerfectWeight.AbsDeltaKg < 0 {
			um.PerfectWeight.AbsDeltaKg = -um.PerfectWeight.AbsDeltaKg
		}
		um.PerfectWeight.ShouldLose = um.PerfectWeight.DeltaKg > 0
		um.CreatedAt = createdAt
		metrics = append(metrics, um)
	}

	if metrics == nil {
		metrics = make([]UserMetrics, 0)
	}
	return metrics, nil
}
