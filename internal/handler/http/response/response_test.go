package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evidencija/attendance-backend-go/internal/domain/attendance"
	"github.com/evidencija/attendance-backend-go/internal/domain/auth"
	"github.com/evidencija/attendance-backend-go/internal/domain/holiday"
	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/domain/wfh"
	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMessage(rec, "ok", map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
	assert.Nil(t, resp.Error)
}

func TestCreatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "created", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
}

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"inactive account", auth.ErrAccountInactive, http.StatusForbidden, "FORBIDDEN"},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"email exists", user.ErrUserEmailExists, http.StatusConflict, "CONFLICT"},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN"},
		{"scope forbidden", user.ErrForbiddenScope, http.StatusForbidden, "FORBIDDEN"},
		{"double check-in", attendance.ErrAlreadyCheckedIn, http.StatusConflict, "CONFLICT"},
		{"no check-in", attendance.ErrNotCheckedIn, http.StatusConflict, "CONFLICT"},
		{"wfh already decided", wfh.ErrAlreadyDecided, http.StatusConflict, "CONFLICT"},
		{"weather fine", wfh.ErrWeatherConditionsFine, http.StatusBadRequest, "BAD_REQUEST"},
		{"weather missing", weather.ErrNoData, http.StatusNotFound, "NOT_FOUND"},
		{"weather upstream down", weather.ErrSyncFailed, http.StatusBadGateway, "BAD_GATEWAY"},
		{"holiday upstream down", holiday.ErrUpstreamUnavailable, http.StatusBadGateway, "BAD_GATEWAY"},
		{"unknown error", assert.AnError, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
