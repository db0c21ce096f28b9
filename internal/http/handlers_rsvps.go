package http

import (
	"log/slog"
	"net/http"

	"bridezilla/internal/core"
)

func (s *Server) handleListRSVPs(w http.ResponseWriter, r *http.Request) {
	rsvps, err := s.backend.ListRSVPs(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List rsvps failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load rsvps")
		return
	}
	if rsvps == nil {
		rsvps = []core.RSVP{}
	}
	respondData(w, http.StatusOK, rsvps)
}

// handleCreateRSVP records a guest submission. Resubmissions always create
// a new record; the list keeps the full history.
func (s *Server) handleCreateRSVP(w http.ResponseWriter, r *http.Request) {
	var rsvp core.RSVP
	if !decodeBody(w, r, &rsvp) {
		return
	}

	rsvp.Name = core.SanitizeText(rsvp.Name)
	for i := range rsvp.Guests {
		rsvp.Guests[i].Name = core.SanitizeText(rsvp.Guests[i].Name)
	}
	if !rsvp.Attending {
		// Declines carry no party size; normalize for validation.
		if rsvp.NumberOfGuests < 1 {
			rsvp.NumberOfGuests = 1
		}
		rsvp.Guests = nil
	}

	if errs := core.ValidateRSVP(rsvp); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	created, err := s.backend.CreateRSVP(r.Context(), rsvp)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create rsvp failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save rsvp")
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (s *Server) handleExportRSVPs(w http.ResponseWriter, r *http.Request) {
	rsvps, err := s.backend.ListRSVPs(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export rsvps failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to export rsvps")
		return
	}
	respondCSV(w, "wedding-rsvps.csv", core.ExportRSVPsCSV(rsvps))
}
