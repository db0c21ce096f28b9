package http

import (
	"log/slog"
	"net/http"

	"bridezilla/internal/core"
)

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	if stats, ok := s.statsCache.Get(statsCacheKey); ok {
		respondData(w, http.StatusOK, stats)
		return
	}

	vendors, err := s.backend.ListVendors(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard stats failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	stats := core.CalcVendorStats(vendors)
	s.statsCache.Set(statsCacheKey, stats)
	respondData(w, http.StatusOK, stats)
}

// handleDemoReset restores the seed dataset. Only the demo backend wires a
// controller; against sqlite the endpoint does not exist.
func (s *Server) handleDemoReset(w http.ResponseWriter, r *http.Request) {
	if s.demo == nil {
		respondError(w, http.StatusNotFound, "demo reset is not available on this backend")
		return
	}

	s.demo.ResetDemo()
	s.invalidateStats()
	slog.InfoContext(r.Context(), "Demo data reset")
	respondData(w, http.StatusOK, map[string]bool{"reset": true})
}
