package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/metrics"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/tracing"
	"github.com/LackOfUsernameIdeas/mobilis-backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type planEngine interface {
	GetOrCreateSession(ctx context.Context, kind PlanKind, userID, generationID string, requestedDay DayLabel) (*ProgressSession, error)
	ViewDay(ctx context.Context, sessionID int, requestedDay DayLabel) (*DayView, error)
	MarkItemProgress(ctx context.Context, sessionID int, day DayLabel, itemID string, status ItemStatus) (*ItemProgress, error)
	MoveToNextDay(ctx context.Context, sessionID int) (*AdvanceResult, error)
	IsCompleted(ctx context.Context, generationID string) (bool, error)
	CompletedPlanIDs(ctx context.Context) ([]string, error)
}

type generationsRepo interface {
	Add(ctx context.Context, generation PlanGeneration) (*PlanGeneration, error)
	Get(ctx context.Context, id string) (*PlanGeneration, error)
	ListForUser(ctx context.Context, userID string, kind PlanKind) ([]PlanGeneration, error)
}

type planGenerator interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (*PlanGeneration, error)
}

type GetOrCreateSessionRequest struct {
	UserID       string   `json:"userId"`
	Kind         PlanKind `json:"kind"`
	GenerationID string   `json:"generationId"`
	RequestedDay DayLabel `json:"requestedDay,omitempty"`
}

type MarkItemRequest struct {
	Day    DayLabel   `json:"day"`
	ItemID string     `json:"itemId"`
	Status ItemStatus `json:"status"`
}

type CompletedResponse struct {
	GenerationID string `json:"generationId"`
	Completed    bool   `json:"completed"`
}

type ListGenerationsResponse struct {
	Generations []PlanGeneration `json:"generations"`
}

type CompletedIDsResponse struct {
	CompletedIDs []string `json:"completedIds"`
}

// MarkFailedResponse tells the client which status to roll its optimistic
// item view back to after a failed mark.
type MarkFailedResponse struct {
	ItemID   string     `json:"itemId"`
	RevertTo ItemStatus `json:"revertTo"`
}

type Handler struct {
	engine      planEngine
	generations generationsRepo
	generator   planGenerator
	metrics     *metrics.Manager
}

func NewHandler(
	engine planEngine,
	generations generationsRepo,
	planGen planGenerator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		engine:      engine,
		generations: generations,
		generator:   planGen,
		metrics:     metricsManager,
	}
}

// HandleGenerate asks the model for a new plan and persists the parsed
// generation. The generation is immutable from here on.
func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.generate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var planReq PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&planReq); err != nil {
		log.Tracef("generate plan, unmarshal json params: %s", err)
		http.Error(w, "generate plan failed", http.StatusBadRequest)
		return
	}
	if planReq.UserID == "" || !planReq.Kind.Valid() || planReq.Days < 1 {
		http.Error(w, "error, user id, kind or days invalid", http.StatusBadRequest)
		return
	}

	generation, err := handler.generator.GeneratePlan(ctx, planReq)
	if err != nil {
		log.Errorf("failed to generate %s plan for user %s: %s", planReq.Kind, planReq.UserID, err)
		if errors.Is(err, ErrUnusablePlan) {
			http.Error(w, "plan generator returned an unusable plan", http.StatusBadGateway)
			return
		}
		http.Error(w, "failed to generate plan", http.StatusInternalServerError)
		return
	}

	addedGeneration, err := handler.generations.Add(ctx, *generation)
	if err != nil {
		log.Errorf("failed to store generation for user %s: %s", planReq.UserID, err)
		http.Error(w, "failed to store generated plan", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterPlansGenerated.Inc()
	log.Debugf("new %s plan %s generated for user %s, %d days",
		addedGeneration.Kind, addedGeneration.ID, addedGeneration.UserID, len(addedGeneration.Days))

	generationJson, err := json.Marshal(addedGeneration)
	if err != nil {
		log.Errorf("failed to marshal generation: %s", err)
		http.Error(w, "failed to store generated plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, generationJson, http.StatusCreated)
}

func (handler *Handler) HandleGetGeneration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getGeneration")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	generation, err := handler.generations.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGenerationNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get generation %s: %s", id, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	generationJson, err := json.Marshal(generation)
	if err != nil {
		log.Errorf("failed to marshal generation: %s", err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, generationJson, http.StatusOK)
}

// HandleListGenerations serves the user's generations of one kind, newest
// first, without the day bundles. Plan overviews render from this.
func (handler *Handler) HandleListGenerations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.listGenerations")
	defer span.End()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	kind := PlanKind(r.URL.Query().Get("kind"))
	if !kind.Valid() {
		http.Error(w, "error, kind missing or unknown", http.StatusBadRequest)
		return
	}

	generations, err := handler.generations.ListForUser(ctx, userID, kind)
	if err != nil {
		log.Errorf("failed to list %s plans for user %s: %s", kind, userID, err)
		http.Error(w, "failed to list plans", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListGenerationsResponse{
		Generations: generations,
	})
	if err != nil {
		log.Errorf("failed to marshal plans list: %s", err)
		http.Error(w, "failed to list plans", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleCompleted serves the permanent completion flag of a generation.
// Clients check it before rendering a plan view at all.
func (handler *Handler) HandleCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.completed")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	completed, err := handler.engine.IsCompleted(ctx, id)
	if err != nil {
		log.Errorf("failed to check completion of %s: %s", id, err)
		http.Error(w, "failed to check completion", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(CompletedResponse{
		GenerationID: id,
		Completed:    completed,
	})
	if err != nil {
		http.Error(w, "failed to check completion", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleCompletedIDs lists every generation ever completed, used by cleanup
// jobs and admin views.
func (handler *Handler) HandleCompletedIDs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.completedIDs")
	defer span.End()

	ids, err := handler.engine.CompletedPlanIDs(ctx)
	if err != nil {
		log.Errorf("failed to list completed plans: %s", err)
		http.Error(w, "failed to list completed plans", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(CompletedIDsResponse{
		CompletedIDs: ids,
	})
	if err != nil {
		http.Error(w, "failed to list completed plans", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleGetOrCreateSession returns the authoritative session for the given
// (user, kind, generation) key, creating it on first view. Callers must
// adopt the returned current day, not the one they asked for.
func (handler *Handler) HandleGetOrCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.session")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var sessionReq GetOrCreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&sessionReq); err != nil {
		log.Tracef("get or create session, unmarshal json params: %s", err)
		http.Error(w, "get session failed", http.StatusBadRequest)
		return
	}
	if sessionReq.UserID == "" || sessionReq.GenerationID == "" {
		http.Error(w, "error, user id or generation id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.engine.GetOrCreateSession(
		ctx, sessionReq.Kind, sessionReq.UserID, sessionReq.GenerationID, sessionReq.RequestedDay,
	)
	if err != nil {
		handler.writeEngineError(w, err, "get or create session")
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		http.Error(w, "get session failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

// HandleViewDay serves one day of the session's plan, read-only when the day
// lies behind the session's current day.
func (handler *Handler) HandleViewDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.viewDay")
	defer span.End()

	sessionID, err := sessionIDVar(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		http.Error(w, "error, day NaN", http.StatusBadRequest)
		return
	}

	view, err := handler.engine.ViewDay(ctx, sessionID, DayLabel(day))
	if err != nil {
		handler.writeEngineError(w, err, "view day")
		return
	}

	viewJson, err := json.Marshal(view)
	if err != nil {
		http.Error(w, "view day failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, viewJson, http.StatusOK)
}

// HandleMarkItem records a completed/skipped transition for one item of the
// session's current day.
func (handler *Handler) HandleMarkItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.markItem")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	sessionID, err := sessionIDVar(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var markReq MarkItemRequest
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		log.Tracef("mark item, unmarshal json params: %s", err)
		http.Error(w, "mark item failed", http.StatusBadRequest)
		return
	}
	if markReq.ItemID == "" {
		http.Error(w, "error, item id empty", http.StatusBadRequest)
		return
	}

	progress, err := handler.engine.MarkItemProgress(ctx, sessionID, markReq.Day, markReq.ItemID, markReq.Status)
	if err != nil {
		handler.writeEngineError(w, err, "mark item")
		return
	}

	progressJson, err := json.Marshal(progress)
	if err != nil {
		http.Error(w, "mark item failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressJson, http.StatusOK)
}

// HandleAdvance moves the session to its next day, or completes the plan
// after the final one.
func (handler *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.advance")
	defer span.End()

	sessionID, err := sessionIDVar(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.engine.MoveToNextDay(ctx, sessionID)
	if err != nil {
		handler.writeEngineError(w, err, "advance day")
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "advance day failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) writeEngineError(w http.ResponseWriter, err error, op string) {
	var markFailed *MarkFailedError
	switch {
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidDayLabel),
		errors.Is(err, ErrGenerationKindMissing):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrGenerationNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrDayNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUnresolvedItems),
		errors.Is(err, ErrReadOnlyHistory),
		errors.Is(err, ErrDayConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrSessionCompleted):
		http.Error(w, err.Error(), http.StatusGone)
	case errors.As(err, &markFailed):
		// the write failed, tell the client which status to revert to
		log.Errorf("%s: %s", op, err)
		respJson, jsonErr := json.Marshal(MarkFailedResponse{
			ItemID:   markFailed.ItemID,
			RevertTo: markFailed.LastConfirmed,
		})
		if jsonErr != nil {
			http.Error(w, op+" failed", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusInternalServerError)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}

func sessionIDVar(r *http.Request) (int, error) {
	sessionID, err := strconv.Atoi(mux.Vars(r)["sessionId"])
	if err != nil {
		return 0, errors.New("error, session id NaN")
	}
	return sessionID, nil
}
