package http

import (
	"log/slog"
	"net/http"

	"bridezilla/internal/core"
)

func (s *Server) handleListCouples(w http.ResponseWriter, r *http.Request) {
	couples, err := s.backend.ListCouples(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List couples failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load couples")
		return
	}
	if couples == nil {
		couples = []core.PlannerCouple{}
	}
	respondData(w, http.StatusOK, couples)
}

func (s *Server) handleGetCouple(w http.ResponseWriter, r *http.Request) {
	couple, err := s.backend.GetCouple(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Get couple failed", "error", err, "id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to load couple")
		return
	}
	if couple == nil {
		respondError(w, http.StatusNotFound, "couple not found")
		return
	}
	respondData(w, http.StatusOK, couple)
}

// handleCreateCouple adds a couple to the planner roster and mints their
// share link.
func (s *Server) handleCreateCouple(w http.ResponseWriter, r *http.Request) {
	var couple core.PlannerCouple
	if !decodeBody(w, r, &couple) {
		return
	}

	couple.CoupleNames = core.SanitizeText(couple.CoupleNames)
	couple.Notes = core.SanitizeText(couple.Notes)
	couple.IsActive = true
	if couple.ShareLinkID == "" {
		couple.ShareLinkID = core.ShareSlug(couple.CoupleNames)
	}

	if err := couple.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.backend.CreateCouple(r.Context(), couple)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create couple failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save couple")
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCouple(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if !decodeBody(w, r, &patch) {
		return
	}
	patch = filterPatch(patch, couplePatchColumns)
	if len(patch) == 0 {
		respondError(w, http.StatusBadRequest, "no updatable fields in body")
		return
	}

	updated, err := s.backend.UpdateCouple(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		slog.ErrorContext(r.Context(), "Update couple failed", "error", err, "id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to update couple")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "couple not found")
		return
	}
	respondData(w, http.StatusOK, updated)
}

// handleDeactivateCouple soft-deletes: the roster entry disappears and the
// share link stops resolving, but the records stay.
func (s *Server) handleDeactivateCouple(w http.ResponseWriter, r *http.Request) {
	couple, err := s.backend.GetCouple(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Get couple failed", "error", err, "id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to load couple")
		return
	}
	if couple == nil {
		respondError(w, http.StatusNotFound, "couple not found")
		return
	}

	if err := s.backend.DeactivateCouple(r.Context(), couple.ID); err != nil {
		slog.ErrorContext(r.Context(), "Deactivate couple failed", "error", err, "id", couple.ID)
		respondError(w, http.StatusInternalServerError, "failed to deactivate couple")
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deactivated": true})
}

func (s *Server) handleListSharedVendors(w http.ResponseWriter, r *http.Request) {
	shared, err := s.backend.ListSharedVendors(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.ErrorContext(r.Context(), "List shared vendors failed", "error", err, "couple_id", r.PathValue("id"))
		respondError(w, http.StatusInternalServerError, "failed to load shared vendors")
		return
	}
	if shared == nil {
		shared = []core.SharedVendor{}
	}
	respondData(w, http.StatusOK, shared)
}

func (s *Server) handleAddSharedVendor(w http.ResponseWriter, r *http.Request) {
	var sv core.SharedVendor
	if !decodeBody(w, r, &sv) {
		return
	}
	sv.PlannerCoupleID = r.PathValue("id")
	sv.VendorName = core.SanitizeText(sv.VendorName)
	sv.PlannerNote = core.SanitizeText(sv.PlannerNote)
	sv.Tags = core.NormalizeTags(sv.Tags)

	if err := sv.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.backend.AddSharedVendor(r.Context(), sv)
	if err != nil {
		slog.ErrorContext(r.Context(), "Add shared vendor failed", "error", err, "couple_id", sv.PlannerCoupleID)
		respondError(w, http.StatusInternalServerError, "failed to save shared vendor")
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateSharedVendor(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if !decodeBody(w, r, &patch) {
		return
	}
	patch = filterPatch(patch, sharedVendorPatchColumns)
	if len(patch) == 0 {
		respondError(w, http.StatusBadRequest, "no updatable fields in body")
		return
	}

	updated, err := s.backend.UpdateSharedVendor(r.Context(), r.PathValue("vendor_id"), patch)
	if err != nil {
		slog.ErrorContext(r.Context(), "Update shared vendor failed", "error", err, "id", r.PathValue("vendor_id"))
		respondError(w, http.StatusInternalServerError, "failed to update shared vendor")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "shared vendor not found")
		return
	}
	respondData(w, http.StatusOK, updated)
}

func (s *Server) handleRemoveSharedVendor(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.RemoveSharedVendor(r.Context(), r.PathValue("vendor_id")); err != nil {
		slog.ErrorContext(r.Context(), "Remove shared vendor failed", "error", err, "id", r.PathValue("vendor_id"))
		respondError(w, http.StatusInternalServerError, "failed to remove shared vendor")
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"deleted": true})
}
