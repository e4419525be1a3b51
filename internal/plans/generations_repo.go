package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// GenerationsRepo stores immutable plan generations. The ordered day bundle
// is kept as one JSONB document, it is only ever written once and read back
// whole.
//
// Table:
//
//	plan_generations(id uuid, user_id, kind, days jsonb, created_at)
type GenerationsRepo struct {
	db *pgxpool.Pool
}

func NewGenerationsRepo(db *pgxpool.Pool) *GenerationsRepo {
	return &GenerationsRepo{
		db: db,
	}
}

func (r *GenerationsRepo) Add(ctx context.Context, generation PlanGeneration) (_ *PlanGeneration, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.addGeneration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", generation.UserID))
	span.SetAttributes(attribute.String("plan.kind", string(generation.Kind)))

	if err := generation.Validate(); err != nil {
		return nil, err
	}
	if generation.ID == "" {
		generation.ID = uuid.NewString()
	}
	if generation.CreatedAt.IsZero() {
		generation.CreatedAt = time.Now()
	}

	daysJson, err := json.Marshal(generation.Days)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO plan_generations (id, user_id, kind, days, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		generation.ID, generation.UserID, generation.Kind, daysJson, generation.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert generation: %w", err)
	}

	return &generation, nil
}

func (r *GenerationsRepo) Get(ctx context.Context, id string) (_ *PlanGeneration, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getGeneration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("generation.id", id))

	var generation PlanGeneration
	var daysJson []byte
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, kind, days, created_at
			FROM plan_generations
			WHERE id = $1;`,
		id,
	).Scan(
		&generation.ID, &generation.UserID, &generation.Kind,
		&daysJson, &generation.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGenerationNotFound
		}
		return nil, fmt.Errorf("query generation: %w", err)
	}

	if err := json.Unmarshal(daysJson, &generation.Days); err != nil {
		return nil, fmt.Errorf("unmarshal days: %w", err)
	}
	return &generation, nil
}

// ListForUser returns the user's generations of one kind, newest first,
// without the day bundles. Used by plan overview listings.
func (r *GenerationsRepo) ListForUser(ctx context.Context, userID string, kind PlanKind) (_ []PlanGeneration, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listGenerations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, kind, created_at
			FROM plan_generations
			WHERE user_id = $1 AND kind = $2
			ORDER BY created_at DESC;`,
		userID, kind,
	)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	generations := make([]PlanGeneration, 0)
	for rows.Next() {
		var g PlanGeneration
		if err := rows.Scan(&g.ID, &g.UserID, &g.Kind, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		generations = append(generations, g)
	}
	return generations, nil
}
