package plans

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

// ProgressRepo persists progress sessions and per-item statuses.
//
// Tables:
//
//	plan_sessions(id, user_id, plan_kind, generation_id, current_day, created_at,
//	    UNIQUE (user_id, plan_kind, generation_id))
//	plan_item_progress(session_id, user_id, item_id, status, updated_at,
//	    UNIQUE (session_id, item_id))
//
// The unique keys carry the concurrency contract: exactly one session per
// key can ever be created, and one progress row per item, whatever the
// request interleaving.
type ProgressRepo struct {
	db *pgxpool.Pool
}

func NewProgressRepo(db *pgxpool.Pool) *ProgressRepo {
	return &ProgressRepo{
		db: db,
	}
}

// GetOrCreateSession inserts the session or, when a concurrent or earlier
// request already created one for the same (user, kind, generation), returns
// the existing row unchanged. The requested current day is only honored for
// the row that wins the insert.
func (r *ProgressRepo) GetOrCreateSession(ctx context.Context, session ProgressSession) (_ *ProgressSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getOrCreateSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", session.UserID))
	span.SetAttributes(attribute.String("generation.id", session.GenerationID))

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO plan_sessions (user_id, plan_kind, generation_id, current_day, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, plan_kind, generation_id) DO NOTHING
			RETURNING id;`,
		session.UserID, session.Kind, session.GenerationID, int(session.CurrentDay), session.CreatedAt,
	).Scan(&session.ID)
	if err == nil {
		span.SetAttributes(attribute.Bool("session.created", true))
		return &session, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	// lost the insert, fetch the winner
	existing, err := r.getSessionByKey(ctx, session.UserID, session.Kind, session.GenerationID)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *ProgressRepo) GetSession(ctx context.Context, id int) (_ *ProgressSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	var session ProgressSession
	var currentDay int
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, plan_kind, generation_id, current_day, created_at
			FROM plan_sessions
			WHERE id = $1;`,
		id,
	).Scan(
		&session.ID, &session.UserID, &session.Kind,
		&session.GenerationID, &currentDay, &session.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	session.CurrentDay = DayLabel(currentDay)
	return &session, nil
}

func (r *ProgressRepo) getSessionByKey(ctx context.Context, userID string, kind PlanKind, generationID string) (*ProgressSession, error) {
	var session ProgressSession
	var currentDay int
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, plan_kind, generation_id, current_day, created_at
			FROM plan_sessions
			WHERE user_id = $1 AND plan_kind = $2 AND generation_id = $3;`,
		userID, kind, generationID,
	).Scan(
		&session.ID, &session.UserID, &session.Kind,
		&session.GenerationID, &currentDay, &session.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session by key: %w", err)
	}
	session.CurrentDay = DayLabel(currentDay)
	return &session, nil
}

// AdvanceSessionDay moves the session from one day to the next with a
// compare-and-set on the current day. When another request advanced the
// session in between, no row matches and ErrDayConflict is returned, the
// caller re-reads the session and decides.
func (r *ProgressRepo) AdvanceSessionDay(ctx context.Context, sessionID int, from, to DayLabel) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.advanceSessionDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.Int("day.to", int(to)))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE plan_sessions
			SET current_day = $1
			WHERE id = $2 AND current_day = $3;`,
		int(to), sessionID, int(from),
	)
	if err != nil {
		return fmt.Errorf("update session day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDayConflict
	}
	return nil
}

func (r *ProgressRepo) ListProgress(ctx context.Context, sessionID int, itemIDs []string) (_ []ItemProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT session_id, user_id, item_id, status, updated_at
			FROM plan_item_progress
			WHERE session_id = $1 AND item_id = ANY($2);`,
		sessionID, itemIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	progress := make([]ItemProgress, 0)
	for rows.Next() {
		var p ItemProgress
		if err := rows.Scan(&p.SessionID, &p.UserID, &p.ItemID, &p.Status, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		progress = append(progress, p)
	}
	return progress, nil
}

// UpsertProgress writes the item status, one row per (session, item). A
// repeated mark with the same status is a no-op apart from the timestamp.
func (r *ProgressRepo) UpsertProgress(ctx context.Context, progress ItemProgress) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.upsertProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", progress.SessionID))
	span.SetAttributes(attribute.String("item.id", progress.ItemID))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO plan_item_progress (session_id, user_id, item_id, status, updated_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (session_id, item_id)
			DO UPDATE SET status = EXCLUDED.status, updated_at = NOW();`,
		progress.SessionID, progress.UserID, progress.ItemID, progress.Status,
	); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}
