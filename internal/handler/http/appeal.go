package http

import (
	"io"
	"net/http"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/utils"
)

// maxUploadSize caps the accepted bill image at 10 MiB, matching the OCR
// provider's own file size limit.
const maxUploadSize = 10 << 20

// analyze accepts a multipart form with a "file" part holding the bill
// image, runs the OCR + drafting pipeline, and returns the extracted text
// together with the drafted appeal letter.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing `file` form part")
		http.Error(w, "missing `file` form part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading uploaded file failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	result, err := h.services.AppealService.Analyze(ctx, header.Filename, image)
	if err != nil {
		log.Err(err).Str("filename", header.Filename).Msg("bill analysis failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
