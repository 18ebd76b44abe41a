package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "unique violation becomes conflict",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "registrations_account_event_key"},
			wantCode:   "CONFLICT",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "wrapped unique violation",
			err:        fmt.Errorf("insert registration: %w", &pgconn.PgError{Code: "23505"}),
			wantCode:   "CONFLICT",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "no rows becomes not found",
			err:        pgx.ErrNoRows,
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "other pg error stays internal",
			err:        &pgconn.PgError{Code: "23503"},
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "plain error stays internal",
			err:        errors.New("boom"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			de := ToDomainError(tc.err)
			require.NotNil(t, de)
			assert.Equal(t, tc.wantCode, de.Code)
			assert.Equal(t, tc.wantStatus, de.HTTPStatus)
		})
	}
}

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	original := NewConflict("already registered", map[string]any{"event_id": "ev-1"})

	de := ToDomainError(original)
	assert.Same(t, original, de)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestDomainErrorUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	wrapped := NewInternalError(inner)

	assert.True(t, errors.Is(wrapped, inner))
}
