package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/riskboard/pkg/usecase"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

const rootMessage = "Risk Management API is running"

type Server struct {
	router   *chi.Mux
	registry *prometheus.Registry
}

type Options func(*Server)

// WithMetrics records request metrics into registry and exposes them at
// /metrics
func WithMetrics(registry *prometheus.Registry) Options {
	return func(s *Server) {
		s.registry = registry
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	if s.registry != nil {
		r.Use(newMetrics(s.registry).middleware)
	}

	r.Get("/", rootHandler)

	// Auth endpoints (if an auth provider is configured)
	if uc.Auth != nil {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", signupHandler(uc.Auth))
			r.Post("/login", loginHandler(uc.Auth))
		})
	}

	r.Route("/risks", func(r chi.Router) {
		r.Get("/", listRiskScenariosHandler(uc.RiskScenario))
		r.Post("/", createRiskScenarioHandler(uc.RiskScenario))
	})

	r.Route("/risk-tables", func(r chi.Router) {
		r.Get("/", listAllRiskTablesHandler(uc.RiskTable))
		r.Get("/{pm_id}", listRiskTableHandler(uc.RiskTable))
		r.Post("/{pm_id}/add", addRiskTableItemHandler(uc.RiskTable))
		r.Delete("/{pm_id}/delete/{item_id}", deleteRiskTableItemHandler(uc.RiskTable))
		r.Put("/{pm_id}/update/{item_id}", updateRiskTableItemHandler(uc.RiskTable))
	})

	r.Get("/dashboard/stats", dashboardStatsHandler(uc.Dashboard))

	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// requestLogger binds a logger carrying the request ID to the request context
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(logging.With(r.Context(), logger)))
	})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"message": rootMessage})
}
