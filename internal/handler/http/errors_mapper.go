package http

import (
	"errors"
	"net/http"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/service"
	"github.com/fairshare/fairshare/internal/store"
	"github.com/fairshare/fairshare/internal/utils"
	"github.com/fairshare/fairshare/internal/validators"
	"github.com/fairshare/fairshare/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrUsernameTaken:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrHouseholdNotFound:     http.StatusNotFound,
	store.ErrChoreNotFound:         http.StatusNotFound,
	store.ErrForeignKeyViolation:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     msgInvalidData,
	service.ErrInvalidCredentials:      msgIncorrectCredentials,
	service.ErrUsernameTaken:           msgUsernameTaken,
	service.ErrTokenIsExpiredOrInvalid: msgUnauthorized,

	store.ErrUsernameAlreadyExists: msgUsernameTaken,
	store.ErrUserNotFound:          msgUserNotFound,
	store.ErrHouseholdNotFound:     msgHouseholdNotFound,
	store.ErrChoreNotFound:         msgChoreNotFound,
	store.ErrForeignKeyViolation:   msgUnknownReference,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) (string, bool) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message, true
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message, true
		}
	}
	return "", false
}

// writeError maps err to its HTTP status and public message and writes the
// uniform error body. Errors without a mapped message are treated as server
// faults: the detail is logged, and leaks into the response only outside
// production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message, known := messageFromError(err)
	if !known {
		log.Err(err).Msg("request failed")
		message = msgServerError
		if !h.production {
			message = err.Error()
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
