package http

import (
	"errors"
	"net/http"

	"github.com/complyra/claimshield/internal/adapter"
	"github.com/complyra/claimshield/internal/service"
	"github.com/complyra/claimshield/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidClaim:            http.StatusBadRequest,
	service.ErrNothingToExport:         http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,

	adapter.ErrNoTextRecognized: http.StatusUnprocessableEntity,
	adapter.ErrOCRFailed:        http.StatusBadGateway,
	adapter.ErrLLMFailed:        http.StatusBadGateway,
	adapter.ErrEmptyCompletion:  http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrClaimNotSaved:      http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
