package plans

import (
	"context"
	"fmt"
	"sync"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/metrics"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=plans_test

type progressRepo interface {
	GetOrCreateSession(ctx context.Context, session ProgressSession) (*ProgressSession, error)
	GetSession(ctx context.Context, id int) (*ProgressSession, error)
	AdvanceSessionDay(ctx context.Context, sessionID int, from, to DayLabel) error
	ListProgress(ctx context.Context, sessionID int, itemIDs []string) ([]ItemProgress, error)
	UpsertProgress(ctx context.Context, progress ItemProgress) error
}

type generationGetter interface {
	Get(ctx context.Context, id string) (*PlanGeneration, error)
}

type completionStore interface {
	SetCompleted(ctx context.Context, generationID string) error
	IsCompleted(ctx context.Context, generationID string) (bool, error)
	CompletedIDs(ctx context.Context) ([]string, error)
}

// Engine drives progress sessions through their days:
//
//	no session -> active (current day) -> completed
//
// The session row is the authoritative state, the engine additionally keeps
// the last statuses it saw confirmed by the repo, so a failed mark can be
// rolled back to the known-good value instead of a hardcoded pending.
type Engine struct {
	repo        progressRepo
	generations generationGetter
	completions completionStore
	metrics     *metrics.Manager

	mu        sync.Mutex
	confirmed map[int]map[string]ItemStatus
}

func NewEngine(
	repo progressRepo,
	generations generationGetter,
	completions completionStore,
	metricsManager *metrics.Manager,
) *Engine {
	return &Engine{
		repo:        repo,
		generations: generations,
		completions: completions,
		metrics:     metricsManager,
		confirmed:   make(map[int]map[string]ItemStatus),
	}
}

// GetOrCreateSession returns the session for (user, kind, generation),
// creating it lazily on first view. An existing session is returned
// unchanged, whatever day the caller asked for: the caller reconciles its
// view against the returned current day.
func (e *Engine) GetOrCreateSession(
	ctx context.Context,
	kind PlanKind,
	userID string,
	generationID string,
	requestedDay DayLabel,
) (_ *ProgressSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.engine.getOrCreateSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.kind", string(kind)))
	span.SetAttributes(attribute.String("generation.id", generationID))

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrGenerationKindMissing, kind)
	}
	if requestedDay == 0 {
		requestedDay = 1
	}
	if !requestedDay.Valid() {
		return nil, fmt.Errorf("%w: day %d", ErrInvalidDayLabel, int(requestedDay))
	}

	completed, err := e.completions.IsCompleted(ctx, generationID)
	if err != nil {
		return nil, fmt.Errorf("check completion flag: %w", err)
	}
	if completed {
		return nil, ErrSessionCompleted
	}

	if _, err := e.generations.Get(ctx, generationID); err != nil {
		return nil, fmt.Errorf("get generation %s: %w", generationID, err)
	}

	session, err := e.repo.GetOrCreateSession(ctx, ProgressSession{
		UserID:       userID,
		Kind:         kind,
		GenerationID: generationID,
		CurrentDay:   requestedDay,
	})
	if err != nil {
		return nil, fmt.Errorf("get or create session: %w", err)
	}
	return session, nil
}

// ViewDay returns the requested day of the session's plan together with the
// recorded item statuses. The requested day is clamped to [1, current day]:
// history can be browsed backward and forward, but never past the live day.
// Reaching the current day exactly restores the mutable view.
func (e *Engine) ViewDay(ctx context.Context, sessionID int, requestedDay DayLabel) (_ *DayView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.engine.viewDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	session, err := e.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", sessionID, err)
	}

	generation, err := e.generations.Get(ctx, session.GenerationID)
	if err != nil {
		return nil, fmt.Errorf("get generation %s: %w", session.GenerationID, err)
	}

	if requestedDay < 1 {
		requestedDay = 1
	}
	if requestedDay > session.CurrentDay {
		requestedDay = session.CurrentDay
	}

	day, err := generation.Day(requestedDay)
	if err != nil {
		return nil, err
	}

	statuses, err := e.dayStatuses(ctx, sessionID, day)
	if err != nil {
		return nil, err
	}

	return &DayView{
		Day:      *day,
		Statuses: statuses,
		ReadOnly: requestedDay < session.CurrentDay,
	}, nil
}

// MarkItemProgress records a completed/skipped transition for one item of
// the session's current day. Marking pending is rejected, pending is the
// implicit default, not a transition. Marking while browsing history is
// rejected too. The status is applied optimistically and rolled back to the
// last confirmed value if the repo write fails, the returned MarkFailedError
// carries that value for the caller. Re-sending the same mark after a
// success changes nothing.
func (e *Engine) MarkItemProgress(
	ctx context.Context,
	sessionID int,
	day DayLabel,
	itemID string,
	status ItemStatus,
) (_ *ItemProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.engine.markItemProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.String("item.id", itemID))

	if !status.Resolved() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	session, err := e.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", sessionID, err)
	}
	if day != session.CurrentDay {
		return nil, fmt.Errorf("%w: %s is not the current day %s", ErrReadOnlyHistory, day, session.CurrentDay)
	}

	prior, hadPrior := e.confirmedStatus(sessionID, itemID)
	e.setConfirmed(sessionID, itemID, status)

	progress := ItemProgress{
		SessionID: sessionID,
		UserID:    session.UserID,
		ItemID:    itemID,
		Status:    status,
	}
	if err := e.repo.UpsertProgress(ctx, progress); err != nil {
		lastConfirmed := StatusPending
		if hadPrior {
			e.setConfirmed(sessionID, itemID, prior)
			lastConfirmed = prior
		} else {
			e.dropConfirmed(sessionID, itemID)
		}
		return nil, &MarkFailedError{
			ItemID:        itemID,
			LastConfirmed: lastConfirmed,
			Err:           err,
		}
	}

	e.metrics.CounterItemsMarked.Inc()
	log.Debugf("session %d: item %s marked %s", sessionID, itemID, status)
	return &progress, nil
}

// IsDayResolved reports whether every item of the day has a resolved status.
// Items without a recorded status count as pending.
func IsDayResolved(items []PlanItem, statuses map[string]ItemStatus) bool {
	for _, item := range items {
		if !statuses[item.ID].Resolved() {
			return false
		}
	}
	return len(items) > 0
}

// MoveToNextDay advances the session by exactly one day. It refuses while
// any current-day item is still pending. Advancing past the last day sets
// the generation's permanent completion flag and reports completed instead.
// A concurrent advance of the same session loses with ErrDayConflict and
// should re-read the session state.
func (e *Engine) MoveToNextDay(ctx context.Context, sessionID int) (_ *AdvanceResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.engine.moveToNextDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	session, err := e.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", sessionID, err)
	}

	completed, err := e.completions.IsCompleted(ctx, session.GenerationID)
	if err != nil {
		return nil, fmt.Errorf("check completion flag: %w", err)
	}
	if completed {
		return nil, ErrSessionCompleted
	}

	generation, err := e.generations.Get(ctx, session.GenerationID)
	if err != nil {
		return nil, fmt.Errorf("get generation %s: %w", session.GenerationID, err)
	}

	day, err := generation.Day(session.CurrentDay)
	if err != nil {
		return nil, err
	}
	statuses, err := e.dayStatuses(ctx, sessionID, day)
	if err != nil {
		return nil, err
	}
	if !IsDayResolved(day.Items, statuses) {
		return nil, fmt.Errorf("%w: day %s", ErrUnresolvedItems, session.CurrentDay)
	}

	nextDay := session.CurrentDay.Next()
	if nextDay > generation.MaxDay() {
		if err := e.completions.SetCompleted(ctx, session.GenerationID); err != nil {
			return nil, fmt.Errorf("set completion flag: %w", err)
		}
		e.dropSession(sessionID)
		e.metrics.CounterPlansCompleted.Inc()
		log.Infof("session %d: generation %s completed", sessionID, session.GenerationID)
		return &AdvanceResult{Status: AdvanceStatusCompleted}, nil
	}

	if err := e.repo.AdvanceSessionDay(ctx, sessionID, session.CurrentDay, nextDay); err != nil {
		return nil, fmt.Errorf("advance session day: %w", err)
	}

	e.metrics.CounterDaysAdvanced.Inc()
	log.Debugf("session %d: advanced to %s", sessionID, nextDay)
	return &AdvanceResult{
		Status:     AdvanceStatusAdvanced,
		CurrentDay: nextDay,
	}, nil
}

// IsCompleted exposes the generation's permanent completion flag, queried by
// callers to decide whether to render a plan view at all.
func (e *Engine) IsCompleted(ctx context.Context, generationID string) (bool, error) {
	return e.completions.IsCompleted(ctx, generationID)
}

// CompletedPlanIDs lists every generation ever completed.
func (e *Engine) CompletedPlanIDs(ctx context.Context) ([]string, error) {
	return e.completions.CompletedIDs(ctx)
}

// dayStatuses fetches the recorded statuses of the day's items and refreshes
// the confirmed snapshot for them.
func (e *Engine) dayStatuses(ctx context.Context, sessionID int, day *PlanDay) (map[string]ItemStatus, error) {
	itemIDs := make([]string, 0, len(day.Items))
	for _, item := range day.Items {
		itemIDs = append(itemIDs, item.ID)
	}

	progress, err := e.repo.ListProgress(ctx, sessionID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	statuses := make(map[string]ItemStatus, len(progress))
	for _, p := range progress {
		statuses[p.ItemID] = p.Status
		e.setConfirmed(sessionID, p.ItemID, p.Status)
	}
	return statuses, nil
}

func (e *Engine) confirmedStatus(sessionID int, itemID string) (ItemStatus, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	status, ok := e.confirmed[sessionID][itemID]
	return status, ok
}

func (e *Engine) setConfirmed(sessionID int, itemID string, status ItemStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.confirmed[sessionID] == nil {
		e.confirmed[sessionID] = make(map[string]ItemStatus)
	}
	e.confirmed[sessionID][itemID] = status
}

func (e *Engine) dropConfirmed(sessionID int, itemID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.confirmed[sessionID], itemID)
}

// dropSession forgets the confirmed snapshot of a finished session, nothing
// will ever mark against it again.
func (e *Engine) dropSession(sessionID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.confirmed, sessionID)
}
