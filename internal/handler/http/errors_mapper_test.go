package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-feed/internal/pagination"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"field error", validators.NewFieldError(validators.FieldContent, validators.ErrEmptyContent), http.StatusBadRequest, codeValidation},
		{"wrapped field error", fmt.Errorf("post validation failed: %w", validators.NewFieldError(validators.FieldPassword, validators.ErrInvalidPassword)), http.StatusBadRequest, codeValidation},
		{"invalid cursor", fmt.Errorf("%w: bad id", pagination.ErrInvalidCursor), http.StatusBadRequest, codeInvalidCursor},
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest, codeInvalidRequest},
		{"user gone", service.ErrUserNoLongerExists, http.StatusUnauthorized, codeUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, codeInvalidCredentials},
		{"username taken", service.ErrUsernameTaken, http.StatusConflict, codeUsernameTaken},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, codeForbidden},
		{"storage not ready", service.ErrStorageNotReady, http.StatusServiceUnavailable, codeNotReady},
		{"storage query", fmt.Errorf("listing posts failed: %w", store.ErrExecutingQuery), http.StatusInternalServerError, codeInternal},
		{"unknown", errors.New("something odd"), http.StatusInternalServerError, codeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, got.status)
			assert.Equal(t, tt.wantCode, got.code)
		})
	}
}

func TestStatusFromError_SeveralSentinelsStable(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"forbidden over cursor", errors.Join(pagination.ErrInvalidCursor, service.ErrForbidden), http.StatusForbidden},
		{"not ready over token", errors.Join(service.ErrInvalidToken, service.ErrStorageNotReady), http.StatusServiceUnavailable},
		{"user gone over bad json", fmt.Errorf("%w: %w", ErrInvalidJSON, service.ErrUserNoLongerExists), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// порядок обхода не должен влиять на результат
			for i := 0; i < 50; i++ {
				assert.Equal(t, tt.wantStatus, statusFromError(tt.err).status)
			}
		})
	}
}

func TestErrorStatusTable_NoDuplicateTargets(t *testing.T) {
	seen := make(map[error]bool, len(errorStatusTable))
	for _, entry := range errorStatusTable {
		assert.False(t, seen[entry.target], "duplicate entry for %v", entry.target)
		seen[entry.target] = true
	}
}
