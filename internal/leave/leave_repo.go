package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Filter narrows leave queries. Zero values mean "no constraint".
type Filter struct {
	EmployeeID *uint
	Status     string
	LeaveType  string
	Department string
	StartDate  *time.Time
	EndDate    *time.Time
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uint) (*LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	Delete(ctx context.Context, id uint) error
	FindPage(ctx context.Context, f Filter, offset, limit int) ([]LeaveRequest, int64, error)
	FindAll(ctx context.Context, employeeID *uint) ([]LeaveRequest, error)
	FindOverlapping(ctx context.Context, start, end time.Time, employeeID *uint) ([]LeaveRequest, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		Preload("Approver").
		Preload("Approver.User").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&LeaveRequest{}, "id = ?", id).Error
}

func (r *repository) applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.EmployeeID != nil {
		q = q.Where("leave_requests.employee_id = ?", *f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("leave_requests.status = ?", f.Status)
	}
	if f.LeaveType != "" {
		q = q.Where("leave_requests.leave_type = ?", f.LeaveType)
	}
	if f.Department != "" {
		q = q.Joins("JOIN employees ON employees.id = leave_requests.employee_id").
			Where("employees.department = ?", f.Department)
	}
	if f.StartDate != nil {
		q = q.Where("leave_requests.start_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("leave_requests.end_date <= ?", *f.EndDate)
	}
	return q
}

// FindPage returns one page ordered by applied date, newest first, plus the
// unpaged total for the same filter.
func (r *repository) FindPage(ctx context.Context, f Filter, offset, limit int) ([]LeaveRequest, int64, error) {
	base := r.applyFilter(r.db.WithContext(ctx).Model(&LeaveRequest{}), f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []LeaveRequest
	err := r.applyFilter(r.db.WithContext(ctx), f).
		Preload("Employee").
		Preload("Employee.User").
		Order("applied_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&leaves).Error
	if err != nil {
		return nil, 0, err
	}
	return leaves, total, nil
}

func (r *repository) FindAll(ctx context.Context, employeeID *uint) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx)
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var leaves []LeaveRequest
	err := q.Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindOverlapping(ctx context.Context, start, end time.Time, employeeID *uint) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.User").
		Where("start_date <= ?", end).
		Where("end_date >= ?", start)
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var leaves []LeaveRequest
	err := q.Find(&leaves).Error
	return leaves, err
}
