package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/utils"
	"github.com/complyra/claimshield/models"
)

// analytics returns the global claim aggregate: total claim count, total
// disputed amount, and the per-company breakdown.
func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	summary, err := h.services.ClaimService.Summary(ctx, identityFromContext(ctx))
	if err != nil {
		log.Err(err).Msg("claim summary failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

// analyticsExport renders the analytics aggregate plus the full claim list
// as an XLSX attachment.
func (h *Handler) analyticsExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity := identityFromContext(ctx)

	summary, err := h.services.ClaimService.Summary(ctx, identity)
	if err != nil {
		log.Err(err).Msg("claim summary failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	claims, err := h.services.ClaimService.History(ctx, identity, models.ClaimFilter{})
	if err != nil {
		log.Err(err).Msg("claim history query failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	document, err := h.services.ExportService.SummaryXLSX(summary, claims)
	if err != nil {
		log.Err(err).Msg("analytics export failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"claims_%s.xlsx\"",
		time.Now().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}
