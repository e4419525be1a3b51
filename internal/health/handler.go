package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/metrics"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/tracing"
	"github.com/LackOfUsernameIdeas/mobilis-backend/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=health_test

const (
	latestMetricsCacheSize       = 512 * 1024
	latestMetricsCacheTTLSeconds = 5 * 60
)

type healthRepo interface {
	Add(ctx context.Context, m Measurement, metrics UserMetrics) (*UserMetrics, error)
	List(ctx context.Context, userID string, page, size int) (_ []UserMetrics, total int, err error)
	Latest(ctx context.Context, userID string) (*UserMetrics, error)
}

type ListMetricsResponse struct {
	Metrics []UserMetrics `json:"metrics"`
	Total   int           `json:"total"`
}

type Handler struct {
	repo        healthRepo
	calculator  *Calculator
	latestCache *freecache.Cache
	metrics     *metrics.Manager
}

func NewHandler(repo healthRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:        repo,
		calculator:  NewCalculator(),
		latestCache: freecache.NewCache(latestMetricsCacheSize),
		metrics:     metricsManager,
	}
}

// HandleAdd computes the full metrics bundle for a submitted measurement and
// stores both records atomically. Invalid input never reaches the repo.
func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var measurement Measurement
	if err := json.NewDecoder(r.Body).Decode(&measurement); err != nil {
		log.Tracef("add measurement, unmarshal json params: %s", err)
		http.Error(w, "add measurement failed", http.StatusBadRequest)
		return
	}

	if measurement.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if measurement.CreatedAt.IsZero() {
		measurement.CreatedAt = time.Now()
	}

	userMetrics, err := handler.calculator.Compute(measurement)
	if err != nil {
		log.Tracef("compute metrics for user %s: %s", measurement.UserID, err)
		switch {
		case errors.Is(err, ErrMissingInput),
			errors.Is(err, ErrInvalidMeasurement),
			errors.Is(err, ErrUnrecognizedCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "failed to compute metrics", http.StatusInternalServerError)
		}
		return
	}

	addedMetrics, err := handler.repo.Add(ctx, measurement, *userMetrics)
	if err != nil {
		log.Errorf("failed to store metrics for user %s: %s", measurement.UserID, err)
		http.Error(w, "error, failed to store metrics", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMetricsComputed.Inc()
	handler.latestCache.Del([]byte(measurement.UserID))

	metricsJson, err := json.Marshal(addedMetrics)
	if err != nil {
		log.Errorf("failed to marshal stored metrics: %s", err)
		http.Error(w, "error, failed to store metrics", http.StatusInternalServerError)
		return
	}

	log.Debugf("new metrics stored for user %s: bmi %.2f, goal %s",
		addedMetrics.UserID, addedMetrics.Composition.BMI, addedMetrics.Recommendation.Goal)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, metricsJson, http.StatusCreated)
}

// HandleList serves the append-only metrics history, newest first.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.list")
	defer span.End()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "error, page NaN", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "error, size NaN", http.StatusBadRequest)
		return
	}
	if page < 1 || size < 1 {
		http.Error(w, "error, page and size must be positive", http.StatusBadRequest)
		return
	}

	userMetrics, total, err := handler.repo.List(ctx, userID, page, size)
	if err != nil {
		log.Errorf("failed to list metrics for user %s: %s", userID, err)
		http.Error(w, "failed to list metrics", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListMetricsResponse{
		Metrics: userMetrics,
		Total:   total,
	})
	if err != nil {
		log.Errorf("failed to marshal metrics list: %s", err)
		http.Error(w, "failed to list metrics", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleLatest serves the most recent metrics record for a user. Responses
// are cached for a few minutes and the cache entry is dropped on every new
// measurement, so a fresh submit is visible immediately.
func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.latest")
	defer span.End()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if cached, err := handler.latestCache.Get([]byte(userID)); err == nil {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	latest, err := handler.repo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMetricsNotFound) {
			http.Error(w, "metrics not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get latest metrics for user %s: %s", userID, err)
		http.Error(w, "failed to get latest metrics", http.StatusInternalServerError)
		return
	}

	latestJson, err := json.Marshal(latest)
	if err != nil {
		log.Errorf("failed to marshal latest metrics: %s", err)
		http.Error(w, "failed to get latest metrics", http.StatusInternalServerError)
		return
	}

	if err := handler.latestCache.Set([]byte(userID), latestJson, latestMetricsCacheTTLSeconds); err != nil {
		log.Warnf("failed to cache latest metrics for user %s: %s", userID, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, latestJson, http.StatusOK)
}
