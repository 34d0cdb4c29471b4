package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/auth"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/holiday"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/notification"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/org"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Validation errors that carry numbers put them in the details map so
	// the frontend can render a precise message.
	var noticeErr *leave.InsufficientNoticeError
	if errors.As(err, &noticeErr) {
		BadRequest(w, "Insufficient notice before leave start", map[string]string{
			"required_days": strconv.Itoa(noticeErr.RequiredDays),
			"actual_days":   strconv.Itoa(noticeErr.ActualDays),
		})
		return
	}
	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequest(w, "Insufficient leave balance", map[string]string{
			"requested_days": strconv.Itoa(balanceErr.RequestedDays),
			"remaining_days": strconv.Itoa(balanceErr.RemainingDays),
		})
		return
	}
	var durationErr *leave.ExceedsMaxDurationError
	if errors.As(err, &durationErr) {
		BadRequest(w, "Request exceeds the maximum duration for this leave type", map[string]string{
			"requested_days": strconv.Itoa(durationErr.RequestedDays),
			"max_days":       strconv.Itoa(durationErr.MaxDays),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Org domain errors
	case errors.Is(err, org.ErrDirectionNotFound):
		NotFound(w, "Direction not found")
	case errors.Is(err, org.ErrServiceNotFound):
		NotFound(w, "Service not found")
	case errors.Is(err, org.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeInactive):
		BadRequest(w, "Leave type is no longer available", nil)
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange), errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "End date must not precede start date", nil)
	case errors.Is(err, leave.ErrMissingJustification):
		BadRequest(w, "A justification attachment is required for this leave type", nil)
	case errors.Is(err, leave.ErrInsufficientNotice):
		BadRequest(w, "Insufficient notice before leave start", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrExceedsMaxDuration):
		BadRequest(w, "Request exceeds the maximum duration for this leave type", nil)
	case errors.Is(err, leave.ErrMissingRejectionReason):
		BadRequest(w, "A rejection reason is required", nil)
	case errors.Is(err, leave.ErrStaleState):
		Conflict(w, "Request was already decided")
	case errors.Is(err, leave.ErrNotRequester):
		Forbidden(w, "Only the requester may cancel this request")
	case errors.Is(err, leave.ErrNotEligibleApprover):
		Forbidden(w, "You are not an eligible approver for this request")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
