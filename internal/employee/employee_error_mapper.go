package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/sohan418/leave-management-backend/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates unique-constraint violations into domain
// errors so racy inserts that slip past the pre-checks still surface a 409.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_user":
				return employeeerrors.ErrProfileAlreadyExists
			case "uq_employee_code":
				return employeeerrors.ErrEmployeeCodeTaken
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_employee_user") {
			return employeeerrors.ErrProfileAlreadyExists
		}
		if strings.Contains(errMsg, "uq_employee_code") {
			return employeeerrors.ErrEmployeeCodeTaken
		}
	}

	return err
}
