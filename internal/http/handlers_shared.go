package http

import (
	"log/slog"
	"net/http"

	"bridezilla/internal/core"
)

// sharedWorkspace is the login-free view a couple sees through their share
// link. Vendor contact details are masked until the couple reaches out
// through the planner.
type sharedWorkspace struct {
	Couple  workspaceCouple     `json:"couple"`
	Vendors []core.SharedVendor `json:"vendors"`
}

// workspaceCouple exposes only what the shared page needs; planner notes
// and the couple's contact email stay private.
type workspaceCouple struct {
	CoupleNames     string `json:"couple_names"`
	WeddingDate     string `json:"wedding_date,omitempty"`
	WeddingLocation string `json:"wedding_location,omitempty"`
}

func (s *Server) handleSharedWorkspace(w http.ResponseWriter, r *http.Request) {
	shareLinkID := r.PathValue("share_link_id")

	couple, err := s.backend.GetCoupleByShareLink(r.Context(), shareLinkID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Share link lookup failed", "error", err, "share_link_id", shareLinkID)
		respondError(w, http.StatusInternalServerError, "failed to load shared workspace")
		return
	}
	if couple == nil {
		// Inactive couples resolve the same as unknown links.
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := s.backend.TouchCoupleActivity(r.Context(), couple.ID); err != nil {
		slog.WarnContext(r.Context(), "Activity touch failed", "error", err, "couple_id", couple.ID)
	}

	vendors, err := s.backend.ListSharedVendors(r.Context(), couple.ID)
	if err != nil {
		slog.ErrorContext(r.Context(), "List shared vendors failed", "error", err, "couple_id", couple.ID)
		respondError(w, http.StatusInternalServerError, "failed to load shared workspace")
		return
	}
	if vendors == nil {
		vendors = []core.SharedVendor{}
	}
	for i := range vendors {
		vendors[i].Email = core.MaskEmail(vendors[i].Email)
		vendors[i].Phone = core.MaskPhone(vendors[i].Phone)
	}

	respondData(w, http.StatusOK, sharedWorkspace{
		Couple: workspaceCouple{
			CoupleNames:     couple.CoupleNames,
			WeddingDate:     couple.WeddingDate,
			WeddingLocation: couple.WeddingLocation,
		},
		Vendors: vendors,
	})
}
