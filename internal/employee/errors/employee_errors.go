package employeeerrors

import (
	"net/http"

	"github.com/sohan418/leave-management-backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee profile not found",
		http.StatusNotFound,
	)
	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee profile already exists for this user",
		http.StatusConflict,
	)
	ErrEmployeeCodeTaken = apperror.New(
		apperror.CodeConflict,
		"employee with this employee code already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"user with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrUserRequired = apperror.New(
		apperror.CodeInvalidInput,
		"user_id is required",
		http.StatusBadRequest,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be one of annual, sick, personal",
		http.StatusBadRequest,
	)
	ErrFractionalDays = apperror.New(
		apperror.CodeInvalidInput,
		"days must be a whole number",
		http.StatusBadRequest,
	)
)
