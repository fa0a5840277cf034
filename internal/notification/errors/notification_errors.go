package notificationerrors

import (
	"net/http"

	"github.com/sohan418/leave-management-backend/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)

	ErrNotificationExists = apperror.New(
		apperror.CodeConflict,
		"notification already recorded for this decision",
		http.StatusConflict,
	)
)
