package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/auth"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/config"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/db"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/health"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/middleware"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/misc"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/plans"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/plans/generator"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/metrics"
	"github.com/LackOfUsernameIdeas/mobilis-backend/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	planGenerator *generator.Generator

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	GeminiAPIKey            string
	GeminiModel             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "mobilis-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:        params.Config,
		versionInfo:   params.VersionInfo,
		dbPool:        dbPool,
		redisClient:   rdb,
		authService:   authService,
		loginChecker:  auth.NewLoginChecker(auth.DefaultTTL, rdb),
		planGenerator: generator.NewGenerator(
			generator.NewGeminiClient(params.GeminiAPIKey, params.GeminiModel),
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("mobilis-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.authService, s.versionInfo)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	healthHandler := health.NewHandler(
		health.NewRepo(s.dbPool),
		s.metricsManager,
	)
	r.HandleFunc("/health/measurements", healthHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-measurement")
	r.HandleFunc("/health/metrics/list/page/{page}/size/{size}", healthHandler.HandleList).Methods("GET", "OPTIONS").Name("list-metrics")
	r.HandleFunc("/health/metrics/latest", healthHandler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-metrics")

	generationsRepo := plans.NewGenerationsRepo(s.dbPool)
	planEngine := plans.NewEngine(
		plans.NewProgressRepo(s.dbPool),
		generationsRepo,
		plans.NewCompletionStore(s.redisClient),
		s.metricsManager,
	)
	plansHandler := plans.NewHandler(planEngine, generationsRepo, s.planGenerator, s.metricsManager)
	r.HandleFunc("/plans/generate", plansHandler.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-plan")
	r.HandleFunc("/plans/progress/session", plansHandler.HandleGetOrCreateSession).Methods("POST", "OPTIONS").Name("plan-session")
	r.HandleFunc("/plans/progress/{sessionId}/day/{day}", plansHandler.HandleViewDay).Methods("GET", "OPTIONS").Name("plan-view-day")
	r.HandleFunc("/plans/progress/{sessionId}/item", plansHandler.HandleMarkItem).Methods("POST", "OPTIONS").Name("plan-mark-item")
	r.HandleFunc("/plans/progress/{sessionId}/advance", plansHandler.HandleAdvance).Methods("POST", "OPTIONS").Name("plan-advance")
	r.HandleFunc("/plans/completed/ids", plansHandler.HandleCompletedIDs).Methods("GET", "OPTIONS").Name("completed-plan-ids")
	r.HandleFunc("/plans", plansHandler.HandleListGenerations).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans/{id}", plansHandler.HandleGetGeneration).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}/completed", plansHandler.HandleCompleted).Methods("GET", "OPTIONS").Name("plan-completed")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
