// Package http provides the JSON API server: routing, middleware and
// handlers over the store ports.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"bridezilla/internal/cache"
	"bridezilla/internal/core"
	"bridezilla/internal/services"
	"bridezilla/internal/store"
)

const statsCacheKey = "portfolio"

type Server struct {
	http.Server

	backend store.Backend
	vendors *services.VendorService
	demo    store.DemoController
	scanner *services.ReminderScanner

	statsCache   *cache.LRUCache[core.VendorStats]
	cacheManager *cache.Manager
	rateLimiter  *rateLimiter
	secMetrics   securityMetrics
	metrics      *httpMetrics

	shutdownOnce sync.Once
}

// Options configures a Server. Demo is nil for the sqlite backend, which
// disables the reset endpoint.
type Options struct {
	Addr               string
	Backend            store.Backend
	Vendors            *services.VendorService
	Demo               store.DemoController
	ReminderWindowDays int
	StatsCacheTTL      time.Duration
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(opts Options) *Server {
	if opts.ReminderWindowDays <= 0 {
		opts.ReminderWindowDays = 7
	}
	if opts.StatsCacheTTL <= 0 {
		opts.StatsCacheTTL = 30 * time.Second
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:              opts.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		backend:      opts.Backend,
		vendors:      opts.Vendors,
		demo:         opts.Demo,
		scanner:      services.NewReminderScanner(opts.Backend, opts.ReminderWindowDays),
		statsCache:   cache.NewLRUCache[core.VendorStats](16, opts.StatsCacheTTL),
		cacheManager: cache.NewManager(),
		rateLimiter:  newRateLimiter(60, time.Minute),
		metrics:      newHTTPMetrics(),
	}
	s.cacheManager.Register(s.statsCache)
	s.cacheManager.StartCleanup(time.Minute)

	// Couple-facing API
	s.route(mux, "GET /api/couples/vendors", s.handleListVendors)
	s.route(mux, "POST /api/couples/vendors", s.handleCreateVendor)
	s.route(mux, "GET /api/couples/vendors/export", s.handleExportVendors)
	s.route(mux, "GET /api/couples/vendors/{id}", s.handleGetVendor)
	s.route(mux, "PUT /api/couples/vendors/{id}", s.handleUpdateVendor)
	s.route(mux, "DELETE /api/couples/vendors/{id}", s.handleDeleteVendor)
	s.route(mux, "GET /api/couples/vendors/{id}/activity", s.handleVendorActivity)
	s.route(mux, "GET /api/couples/payments/upcoming", s.handleUpcomingPayments)
	s.route(mux, "GET /api/couples/rsvps", s.handleListRSVPs)
	s.route(mux, "POST /api/couples/rsvps", s.handleCreateRSVP)
	s.route(mux, "GET /api/couples/rsvps/export", s.handleExportRSVPs)

	// Planner-facing API
	s.route(mux, "GET /api/planners/couples", s.handleListCouples)
	s.route(mux, "POST /api/planners/couples", s.handleCreateCouple)
	s.route(mux, "GET /api/planners/couples/{id}", s.handleGetCouple)
	s.route(mux, "PUT /api/planners/couples/{id}", s.handleUpdateCouple)
	s.route(mux, "DELETE /api/planners/couples/{id}", s.handleDeactivateCouple)
	s.route(mux, "GET /api/planners/couples/{id}/vendors", s.handleListSharedVendors)
	s.route(mux, "POST /api/planners/couples/{id}/vendors", s.handleAddSharedVendor)
	s.route(mux, "PUT /api/planners/couples/{id}/vendors/{vendor_id}", s.handleUpdateSharedVendor)
	s.route(mux, "DELETE /api/planners/couples/{id}/vendors/{vendor_id}", s.handleRemoveSharedVendor)

	// Login-free shared workspace
	s.route(mux, "GET /api/shared/{share_link_id}", s.handleSharedWorkspace)

	s.route(mux, "GET /api/dashboard/stats", s.handleDashboardStats)
	s.route(mux, "POST /api/demo/reset", s.handleDemoReset)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", s.metrics.handler())

	return s
}

// route registers a handler wrapped with the standard middleware chain.
// The pattern doubles as the metrics route label.
func (s *Server) route(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	mux.HandleFunc(pattern, s.withMiddleware(pattern, handler))
}

// withMiddleware adds security headers, rate limiting on writes, request
// IDs, request logging and metrics.
func (s *Server) withMiddleware(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		if detectSuspiciousRequest(r, &s.secMetrics) {
			slog.WarnContext(ctx, "Suspicious request",
				"request_id", requestID,
				"method", r.Method,
				"url", r.URL.Path,
				"client_ip", clientIP)
		}

		if isWrite(r.Method) && !s.rateLimiter.allow(clientIP, &s.secMetrics) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				"client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			s.metrics.observe(r.Method, route, http.StatusTooManyRequests, time.Since(start))
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		s.metrics.inFlight.Inc()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)
		s.metrics.inFlight.Dec()

		elapsed := time.Since(start)
		s.metrics.observe(r.Method, route, rw.statusCode, elapsed)

		level := slog.LevelInfo
		if rw.statusCode >= 500 {
			level = slog.LevelError
		} else if rw.statusCode >= 400 {
			level = slog.LevelWarn
		}
		slog.Log(ctx, level, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", elapsed.Milliseconds(),
			"client_ip", clientIP)
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := s.backend.ListVendors(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "store not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) invalidateStats() {
	s.statsCache.Delete(statsCacheKey)
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.cacheManager != nil {
			s.cacheManager.Stop()
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
