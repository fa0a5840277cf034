package autherrors

import (
	"net/http"

	"github.com/sohan418/leave-management-backend/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"incorrect email or password",
		http.StatusUnauthorized,
	)

	ErrInactiveUser = apperror.New(
		apperror.CodeInvalidInput,
		"inactive user",
		http.StatusBadRequest,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"could not validate credentials",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token has expired",
		http.StatusUnauthorized,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email already registered",
		http.StatusConflict,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)

	ErrIncorrectPassword = apperror.New(
		apperror.CodeInvalidInput,
		"current password is incorrect",
		http.StatusBadRequest,
	)
)
