package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/utils"
	"github.com/complyra/claimshield/models"
)

// saveClaim persists one claim for the authenticated session and returns
// the saved row with server-assigned fields.
func (h *Handler) saveClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var claim models.Claim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	savedClaim, err := h.services.ClaimService.Save(ctx, identityFromContext(ctx), claim)
	if err != nil {
		log.Err(err).Msg("claim saving failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, savedClaim, http.StatusCreated)
}

// claimHistory lists saved claims newest first. Optional "limit" and
// "offset" query parameters page the result; both default to zero, which
// returns the full history.
func (h *Handler) claimHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination parameters")
		http.Error(w, "invalid pagination parameters", http.StatusBadRequest)
		return
	}

	claims, err := h.services.ClaimService.History(ctx, identityFromContext(ctx), filter)
	if err != nil {
		log.Err(err).Msg("claim history query failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, claims, http.StatusOK)
}

// exportLetter renders the appeal letter from the request body as a PDF
// attachment.
func (h *Handler) exportLetter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var claim models.Claim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	document, err := h.services.ExportService.LetterPDF(claim.AppealLetter)
	if err != nil {
		log.Err(err).Msg("letter export failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="appeal_letter.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// identityFromContext rebuilds the session identity placed into the request
// context by the auth middleware.
func identityFromContext(ctx context.Context) models.Identity {
	userID, _ := utils.GetUserIDFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)

	return models.Identity{UserID: userID, Role: role}
}

// filterFromQuery parses the optional "limit" and "offset" query parameters.
func filterFromQuery(r *http.Request) (models.ClaimFilter, error) {
	var filter models.ClaimFilter

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.ClaimFilter{}, err
		}
		filter.Limit = limit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.ClaimFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
