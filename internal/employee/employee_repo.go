package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id uint) (*Employee, error)
	FindByUserID(ctx context.Context, userID uint) (*Employee, error)
	FindByCode(ctx context.Context, code string) (*Employee, error)
	FindActive(ctx context.Context, department string, offset, limit int) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	SumLeaveDays(ctx context.Context, employeeID uint, status string) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements run on tx, so writes commit
// and roll back with the caller's transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uint) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&e, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&e, "employee_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindActive(ctx context.Context, department string, offset, limit int) ([]Employee, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("is_active = ?", true)
	if department != "" {
		q = q.Where("department = ?", department)
	}

	var employees []Employee
	err := q.Order("employee_code ASC").
		Offset(offset).
		Limit(limit).
		Find(&employees).Error
	return employees, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// SumLeaveDays totals days_requested over the employee's leaves in the given
// status. Queried through the leaves table directly to keep the dependency
// direction leave -> employee.
func (r *repository) SumLeaveDays(ctx context.Context, employeeID uint, status string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("COALESCE(SUM(days_requested), 0)").
		Where("employee_id = ?", employeeID).
		Where("status = ?", status).
		Scan(&total).Error
	return total, err
}
