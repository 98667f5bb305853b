package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/pagination"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/models"
)

type errorStatus struct {
	status int
	code   string
}

// errorStatusTable is checked in order, so an error wrapping several
// sentinels gets the status of the first one listed.
var errorStatusTable = []struct {
	target error
	errorStatus
}{
	{service.ErrStorageNotReady, errorStatus{http.StatusServiceUnavailable, codeNotReady}},
	{service.ErrForbidden, errorStatus{http.StatusForbidden, codeForbidden}},
	{service.ErrUserNoLongerExists, errorStatus{http.StatusUnauthorized, codeUnauthorized}},
	{service.ErrInvalidToken, errorStatus{http.StatusUnauthorized, codeUnauthorized}},
	{ErrNoIdentity, errorStatus{http.StatusUnauthorized, codeUnauthorized}},
	{service.ErrInvalidCredentials, errorStatus{http.StatusUnauthorized, codeInvalidCredentials}},
	{service.ErrUsernameTaken, errorStatus{http.StatusConflict, codeUsernameTaken}},

	{pagination.ErrInvalidCursor, errorStatus{http.StatusBadRequest, codeInvalidCursor}},
	{ErrInvalidJSON, errorStatus{http.StatusBadRequest, codeInvalidRequest}},
	{ErrInvalidUserID, errorStatus{http.StatusBadRequest, codeInvalidRequest}},
}

// statusFromError maps err to its HTTP status and stable code. Field-level
// validation failures take precedence; anything unknown is a 500.
func statusFromError(err error) errorStatus {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return errorStatus{http.StatusBadRequest, codeValidation}
	}

	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.errorStatus
		}
	}
	return errorStatus{http.StatusInternalServerError, codeInternal}
}

// writeError writes the JSON body for err. 5xx responses never carry the
// error text; 4xx ones carry a short message and, for validation failures,
// the offending field.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapped := statusFromError(err)

	body := models.ErrorResponse{Error: mapped.code}
	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", mapped.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", mapped.status).Msg("request rejected")
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		body.Field = fieldErr.Field
		body.Message = fieldErr.Err.Error()
	}

	if _, wErr := utils.WriteJSON(w, body, mapped.status); wErr != nil {
		log.Err(wErr).Msg("writing error response failed")
	}
}

// writeErrorCode writes a bare {"error": code} body.
func writeErrorCode(w http.ResponseWriter, r *http.Request, status int, code string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: code}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing error response failed")
	}
}
