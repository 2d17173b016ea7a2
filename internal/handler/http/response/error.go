package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/auth"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/notification"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		BadRequest(w, "Invalid OAuth state", nil)
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrOAuthProviderIDExists):
		Conflict(w, "Google account already linked to another user")
	case errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrOfficeAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrCannotDeleteSelf),
		errors.Is(err, user.ErrCannotRemoveOwnOffice):
		BadRequest(w, err.Error(), nil)

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyProcessed),
		errors.Is(err, request.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, request.ErrRequestAlreadyStarted):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, request.ErrNotRequestOwner),
		errors.Is(err, request.ErrNotRequestManager):
		Forbidden(w, err.Error())
	case errors.Is(err, request.ErrNoManagerAvailable):
		Conflict(w, err.Error())
	case errors.Is(err, request.ErrInvalidManager),
		errors.Is(err, request.ErrEndDateBeforeStartDate):
		BadRequest(w, err.Error(), nil)

	// Workday domain errors
	case errors.Is(err, workday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, workday.ErrHolidayExists):
		Conflict(w, err.Error())
	case errors.Is(err, workday.ErrInvalidDateRange),
		errors.Is(err, workday.ErrDateRangeTooLong):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth),
		errors.Is(err, report.ErrInvalidYear),
		errors.Is(err, report.ErrInvalidVacationFilter),
		errors.Is(err, report.ErrInvalidMonthMembership),
		errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrReportGenerationFailed):
		slog.Error("Report generation failed", "error", err)
		InternalServerError(w, "Failed to generate report")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, err.Error())
	case errors.Is(err, notification.ErrInvalidNotificationType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, notification.ErrQueueFull):
		ServiceUnavailable(w, "Notification queue is full")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
