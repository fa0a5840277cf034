package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sohan418/leave-management-backend/internal/authz"
	employeeerrors "github.com/sohan418/leave-management-backend/internal/employee/errors"
	"github.com/sohan418/leave-management-backend/internal/shared/contextutil"
	"github.com/sohan418/leave-management-backend/internal/shared/counter"
	"github.com/sohan418/leave-management-backend/internal/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Setup(ctx context.Context, actor authz.Actor, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetMe(ctx context.Context, actor authz.Actor) (EmployeeResponse, error)
	UpdateMe(ctx context.Context, actor authz.Actor, req UpdateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, department string, page, limit int) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	CreateWithUser(ctx context.Context, req CreateEmployeeWithUserRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateWithUser(ctx context.Context, id uint, req UpdateEmployeeWithUserRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id uint) error
	GetLeaveBalance(ctx context.Context, employeeID uint) (LeaveBalanceResponse, error)
	AdjustBalance(ctx context.Context, employeeID uint, req AdjustBalanceRequest) (LeaveBalanceResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	users   user.Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		users:   users,
		counter: counterRepo,
		logger:  l,
	}
}

// Setup creates the caller's own employee profile. One profile per user
// account; a second attempt conflicts.
func (s *service) Setup(ctx context.Context, actor authz.Actor, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("employee profile setup requested",
		zap.String("request_id", rid),
		zap.Uint("user_id", actor.UserID),
	)

	if _, err := s.repo.FindByUserID(ctx, actor.UserID); err == nil {
		s.logger.Warn("employee profile setup duplicate", zap.Uint("user_id", actor.UserID))
		return EmployeeResponse{}, employeeerrors.ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("employee profile setup lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	req.UserID = &actor.UserID
	return s.create(ctx, req)
}

func (s *service) GetMe(ctx context.Context, actor authz.Actor) (EmployeeResponse, error) {
	empl, err := s.repo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrProfileNotFound
		}
		s.logger.Error("get own employee profile failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

// UpdateMe lets an employee change their own contact details. Employment
// fields, balances, and activation status stay admin-only.
func (s *service) UpdateMe(ctx context.Context, actor authz.Actor, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	empl, err := s.repo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrProfileNotFound
		}
		s.logger.Error("update own employee profile fetch failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := applyPersonalFields(empl, req); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update own employee profile persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update own employee profile success", zap.Uint("employee_id", empl.ID))
	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, department string, page, limit int) ([]EmployeeResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	employees, err := s.repo.FindActive(ctx, department, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(employees), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested", zap.String("request_id", rid))

	if req.UserID == nil {
		return EmployeeResponse{}, employeeerrors.ErrUserRequired
	}
	if _, err := s.users.FindByID(ctx, *req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrUserRequired
		}
		s.logger.Error("create employee user lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if _, err := s.repo.FindByUserID(ctx, *req.UserID); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee profile lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	return s.create(ctx, req)
}

func (s *service) create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire_date",
			zap.String("hire_date", req.HireDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	if req.EmployeeCode == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeCode = fmt.Sprintf("EMP-%04d", nextVal)
	} else if _, err := s.repo.FindByCode(ctx, req.EmployeeCode); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee code lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	dob, err := parseDatePtr(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	empl := &Employee{
		UserID:                *req.UserID,
		EmployeeCode:          req.EmployeeCode,
		Phone:                 req.Phone,
		Address:               req.Address,
		DateOfBirth:           dob,
		Gender:                req.Gender,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Designation:           req.Designation,
		Department:            req.Department,
		ManagerID:             req.ManagerID,
		HireDate:              hireDate,
		EmploymentType:        req.EmploymentType,
		Salary:                req.Salary,
		AnnualLeaveBalance:    21,
		SickLeaveBalance:      10,
		PersonalLeaveBalance:  5,
		IsActive:              true,
	}
	if empl.EmploymentType == "" {
		empl.EmploymentType = "Full-time"
	}
	if req.AnnualLeaveBalance != nil {
		empl.AnnualLeaveBalance = *req.AnnualLeaveBalance
	}
	if req.SickLeaveBalance != nil {
		empl.SickLeaveBalance = *req.SickLeaveBalance
	}
	if req.PersonalLeaveBalance != nil {
		empl.PersonalLeaveBalance = *req.PersonalLeaveBalance
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	created, err := s.repo.FindByID(ctx, empl.ID)
	if err == nil {
		empl = created
	}

	s.logger.Info("create employee success",
		zap.Uint("employee_id", empl.ID),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return mapToResponse(*empl), nil
}

// CreateWithUser provisions the user account and the employee profile in a
// single transaction; a failure on either side leaves nothing behind.
func (s *service) CreateWithUser(ctx context.Context, req CreateEmployeeWithUserRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee with user requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee with user email lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if req.EmployeeCode != "" {
		if _, err := s.repo.FindByCode(ctx, req.EmployeeCode); err == nil {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("create employee with user code lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}
	dob, err := parseDatePtr(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee with user hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	username, err := s.users.NextUsername(ctx, req.Email)
	if err != nil {
		s.logger.Error("create employee with user derive username failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	code := req.EmployeeCode
	if code == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
		if err != nil {
			s.logger.Error("create employee with user generate code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		code = fmt.Sprintf("EMP-%04d", nextVal)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee with user begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	role := req.Role
	if role == "" {
		role = authz.RoleUser
	}
	acct := &user.User{
		Email:          req.Email,
		Username:       username,
		HashedPassword: string(hashed),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		IsActive:       true,
		Role:           role,
	}
	if err := s.users.WithTx(tx).Create(ctx, acct); err != nil {
		s.logger.Error("create employee with user account persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl := &Employee{
		UserID:                acct.ID,
		EmployeeCode:          code,
		Phone:                 req.Phone,
		Address:               req.Address,
		DateOfBirth:           dob,
		Gender:                req.Gender,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Designation:           req.Designation,
		Department:            req.Department,
		ManagerID:             req.ManagerID,
		HireDate:              hireDate,
		EmploymentType:        req.EmploymentType,
		Salary:                req.Salary,
		AnnualLeaveBalance:    21,
		SickLeaveBalance:      10,
		PersonalLeaveBalance:  5,
		IsActive:              true,
	}
	if empl.EmploymentType == "" {
		empl.EmploymentType = "Full-time"
	}
	if req.AnnualLeaveBalance != nil {
		empl.AnnualLeaveBalance = *req.AnnualLeaveBalance
	}
	if req.SickLeaveBalance != nil {
		empl.SickLeaveBalance = *req.SickLeaveBalance
	}
	if req.PersonalLeaveBalance != nil {
		empl.PersonalLeaveBalance = *req.PersonalLeaveBalance
	}

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("create employee with user profile persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee with user commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl.User = acct
	s.logger.Info("create employee with user success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
		zap.String("username", username),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("update employee fetch failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := applyPersonalFields(empl, req); err != nil {
		return EmployeeResponse{}, err
	}
	applyEmploymentFields(empl, req)

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.Uint("employee_id", id))
	return mapToResponse(*empl), nil
}

// UpdateWithUser updates the profile and its user account together; both
// writes share a transaction.
func (s *service) UpdateWithUser(ctx context.Context, id uint, req UpdateEmployeeWithUserRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("update employee with user fetch failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	acct, err := s.users.FindByID(ctx, empl.UserID)
	if err != nil {
		s.logger.Error("update employee with user account fetch failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != acct.Email {
		if _, err := s.users.FindByEmail(ctx, *req.Email); err == nil {
			return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("update employee with user email lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		acct.Email = *req.Email
	}
	if req.FirstName != nil {
		acct.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		acct.LastName = *req.LastName
	}

	if err := applyPersonalFields(empl, req.UpdateEmployeeRequest); err != nil {
		return EmployeeResponse{}, err
	}
	applyEmploymentFields(empl, req.UpdateEmployeeRequest)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee with user begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.users.WithTx(tx).Update(ctx, acct); err != nil {
		s.logger.Error("update employee with user account persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := s.repo.WithTx(tx).Update(ctx, empl); err != nil {
		s.logger.Error("update employee with user profile persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee with user commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl.User = acct
	s.logger.Info("update employee with user success", zap.Uint("employee_id", id))
	return mapToResponse(*empl), nil
}

// Deactivate soft-deletes: the profile row stays so leave history keeps its
// foreign keys.
func (s *service) Deactivate(ctx context.Context, id uint) error {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("deactivate employee fetch failed", zap.Error(err))
		return err
	}

	now := time.Now()
	empl.IsActive = false
	empl.TerminationDate = &now

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("deactivate employee persist failed", zap.Error(err))
		return err
	}

	s.logger.Info("deactivate employee success", zap.Uint("employee_id", id))
	return nil
}

func (s *service) GetLeaveBalance(ctx context.Context, employeeID uint) (LeaveBalanceResponse, error) {
	empl, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveBalanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get leave balance fetch failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	taken, err := s.repo.SumLeaveDays(ctx, employeeID, "Approved")
	if err != nil {
		s.logger.Error("get leave balance sum approved failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}
	pending, err := s.repo.SumLeaveDays(ctx, employeeID, "Pending")
	if err != nil {
		s.logger.Error("get leave balance sum pending failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	return LeaveBalanceResponse{
		AnnualLeaveBalance:   empl.AnnualLeaveBalance,
		SickLeaveBalance:     empl.SickLeaveBalance,
		PersonalLeaveBalance: empl.PersonalLeaveBalance,
		TotalLeavesTaken:     taken,
		LeavesPending:        pending,
	}, nil
}

// AdjustBalance debits or credits one of the stored balance counters.
// Approval never calls this; balance movement is an explicit admin action.
func (s *service) AdjustBalance(ctx context.Context, employeeID uint, req AdjustBalanceRequest) (LeaveBalanceResponse, error) {
	empl, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveBalanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("adjust balance fetch failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	// Counters are whole days; a fractional adjustment would truncate to a no-op.
	if req.Days != math.Trunc(req.Days) {
		return LeaveBalanceResponse{}, employeeerrors.ErrFractionalDays
	}
	delta := int(req.Days)
	if req.Direction == "debit" {
		delta = -delta
	}

	switch strings.ToLower(req.LeaveType) {
	case "annual":
		empl.AnnualLeaveBalance += delta
	case "sick":
		empl.SickLeaveBalance += delta
	case "personal":
		empl.PersonalLeaveBalance += delta
	default:
		return LeaveBalanceResponse{}, employeeerrors.ErrUnknownLeaveType
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("adjust balance persist failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	s.logger.Info("adjust balance success",
		zap.Uint("employee_id", employeeID),
		zap.String("leave_type", strings.ToLower(req.LeaveType)),
		zap.String("direction", req.Direction),
		zap.Float64("days", req.Days),
	)
	return s.GetLeaveBalance(ctx, employeeID)
}

func applyPersonalFields(empl *Employee, req UpdateEmployeeRequest) error {
	if req.Phone != nil {
		empl.Phone = req.Phone
	}
	if req.Address != nil {
		empl.Address = req.Address
	}
	if req.DateOfBirth != nil {
		dob, err := parseDatePtr(req.DateOfBirth)
		if err != nil {
			return employeeerrors.ErrInvalidDateFormat
		}
		empl.DateOfBirth = dob
	}
	if req.Gender != nil {
		empl.Gender = req.Gender
	}
	if req.EmergencyContactName != nil {
		empl.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		empl.EmergencyContactPhone = req.EmergencyContactPhone
	}
	return nil
}

func applyEmploymentFields(empl *Employee, req UpdateEmployeeRequest) {
	if req.Designation != nil {
		empl.Designation = *req.Designation
	}
	if req.Department != nil {
		empl.Department = *req.Department
	}
	if req.ManagerID != nil {
		empl.ManagerID = req.ManagerID
	}
	if req.EmploymentType != nil {
		empl.EmploymentType = *req.EmploymentType
	}
	if req.Salary != nil {
		empl.Salary = req.Salary
	}
	if req.AnnualLeaveBalance != nil {
		empl.AnnualLeaveBalance = *req.AnnualLeaveBalance
	}
	if req.SickLeaveBalance != nil {
		empl.SickLeaveBalance = *req.SickLeaveBalance
	}
	if req.PersonalLeaveBalance != nil {
		empl.PersonalLeaveBalance = *req.PersonalLeaveBalance
	}
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
	}
}

func parseDatePtr(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                    empl.ID,
		EmployeeCode:          empl.EmployeeCode,
		Phone:                 empl.Phone,
		Address:               empl.Address,
		Gender:                empl.Gender,
		EmergencyContactName:  empl.EmergencyContactName,
		EmergencyContactPhone: empl.EmergencyContactPhone,
		Designation:           empl.Designation,
		Department:            empl.Department,
		ManagerID:             empl.ManagerID,
		HireDate:              empl.HireDate.Format(dateLayout),
		EmploymentType:        empl.EmploymentType,
		Salary:                empl.Salary,
		AnnualLeaveBalance:    empl.AnnualLeaveBalance,
		SickLeaveBalance:      empl.SickLeaveBalance,
		PersonalLeaveBalance:  empl.PersonalLeaveBalance,
		IsActive:              empl.IsActive,
		CreatedAt:             empl.CreatedAt.Format(time.RFC3339),
	}
	if empl.User != nil {
		resp.FirstName = empl.User.FirstName
		resp.LastName = empl.User.LastName
		resp.Email = empl.User.Email
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
