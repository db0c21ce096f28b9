package http

import (
	"log/slog"
	"net/http"

	"bridezilla/internal/core"
	"bridezilla/internal/services"
)

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.backend.ListVendors(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List vendors failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load vendors")
		return
	}
	if vendors == nil {
		vendors = []core.Vendor{}
	}
	respondData(w, http.StatusOK, vendors)
}

func (s *Server) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	vendor, err := s.backend.GetVendor(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Get vendor failed", "error", err, "id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to load vendor")
		return
	}
	if vendor == nil {
		respondError(w, http.StatusNotFound, "vendor not found")
		return
	}
	respondData(w, http.StatusOK, vendor)
}

func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var vendor core.Vendor
	if !decodeBody(w, r, &vendor) {
		return
	}
	assignPaymentIDs(vendor.Payments)

	created, err := s.vendors.CreateVendor(r.Context(), vendor)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Create vendor failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save vendor")
		return
	}

	s.invalidateStats()
	respondData(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if !decodeBody(w, r, &patch) {
		return
	}
	patch = filterPatch(patch, vendorPatchColumns)
	if len(patch) == 0 {
		respondError(w, http.StatusBadRequest, "no updatable fields in body")
		return
	}
	assignPaymentIDsInPatch(patch)

	updated, err := s.vendors.UpdateVendor(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		slog.ErrorContext(r.Context(), "Update vendor failed", "error", err, "id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to update vendor")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "vendor not found")
		return
	}

	s.invalidateStats()
	respondData(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := s.vendors.DeleteVendor(r.Context(), r.PathValue("id")); err != nil {
		slog.ErrorContext(r.Context(), "Delete vendor failed", "error", err, "id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to delete vendor")
		return
	}
	s.invalidateStats()
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleExportVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.backend.ListVendors(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export vendors failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to export vendors")
		return
	}
	respondCSV(w, "wedding-vendors.csv", core.ExportVendorsCSV(vendors))
}

func (s *Server) handleVendorActivity(w http.ResponseWriter, r *http.Request) {
	events, err := s.backend.ListVendorActivity(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.ErrorContext(r.Context(), "List vendor activity failed", "error", err, "id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to load activity")
		return
	}
	if events == nil {
		events = []core.ActivityEvent{}
	}
	respondData(w, http.StatusOK, events)
}

func (s *Server) handleUpcomingPayments(w http.ResponseWriter, r *http.Request) {
	upcoming, err := s.scanner.Scan(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Upcoming payments scan failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to scan payments")
		return
	}
	if upcoming == nil {
		upcoming = []services.UpcomingPayment{}
	}
	respondData(w, http.StatusOK, upcoming)
}
