package response

import (
	"errors"
	"net/http"

	"github.com/evidencija/attendance-backend-go/internal/domain/activity"
	"github.com/evidencija/attendance-backend-go/internal/domain/attendance"
	"github.com/evidencija/attendance-backend-go/internal/domain/auth"
	"github.com/evidencija/attendance-backend-go/internal/domain/holiday"
	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/domain/wfh"
	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		NotFound(w, "No account registered for this email")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token cookie not found")
	case errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token cookie is empty")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrForbiddenScope):
		Forbidden(w, "Cannot access another user's records")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this day")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded for this day")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for this day")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Activity domain errors
	case errors.Is(err, activity.ErrActivityNotFound):
		NotFound(w, "Activity not found")
	case errors.Is(err, activity.ErrEndBeforeStart):
		BadRequest(w, "end_time must be after start_time", nil)
	case errors.Is(err, activity.ErrTargetUserInactive):
		BadRequest(w, "Target user not found or inactive", nil)

	// Work-from-home domain errors
	case errors.Is(err, wfh.ErrRequestNotFound):
		NotFound(w, "Work-from-home request not found")
	case errors.Is(err, wfh.ErrAlreadyDecided):
		Conflict(w, "Request has already been decided")
	case errors.Is(err, wfh.ErrWeatherConditionsFine):
		BadRequest(w, "Weather conditions do not qualify for work-from-home", nil)
	case errors.Is(err, wfh.ErrInvalidDecision):
		BadRequest(w, "Decision must be APPROVED or REJECTED", nil)

	// Weather domain errors
	case errors.Is(err, weather.ErrNoData):
		NotFound(w, "No weather data synced for this date")
	case errors.Is(err, weather.ErrSyncFailed):
		BadGateway(w, "Weather provider is unavailable")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrUpstreamUnavailable):
		BadGateway(w, "Holiday provider is unavailable")
	case errors.Is(err, holiday.ErrInvalidYear):
		BadRequest(w, "Year must be a four digit year", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
