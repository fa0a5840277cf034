package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/sohan418/leave-management-backend/internal/authz"
	"github.com/sohan418/leave-management-backend/internal/employee"
	employeeerrors "github.com/sohan418/leave-management-backend/internal/employee/errors"
	"github.com/sohan418/leave-management-backend/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn       func(tx *sql.Tx) employee.Repository
	createFn       func(ctx context.Context, e *employee.Employee) error
	findByIDFn     func(ctx context.Context, id uint) (*employee.Employee, error)
	findByUserIDFn func(ctx context.Context, userID uint) (*employee.Employee, error)
	findByCodeFn   func(ctx context.Context, code string) (*employee.Employee, error)
	findActiveFn   func(ctx context.Context, department string, offset, limit int) ([]employee.Employee, error)
	updateFn       func(ctx context.Context, e *employee.Employee) error
	sumLeaveDaysFn func(ctx context.Context, employeeID uint, status string) (float64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return f.createFn(ctx, e)
}
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByUserID(ctx context.Context, userID uint) (*employee.Employee, error) {
	return f.findByUserIDFn(ctx, userID)
}
func (f *fakeRepo) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	return f.findByCodeFn(ctx, code)
}
func (f *fakeRepo) FindActive(ctx context.Context, department string, offset, limit int) ([]employee.Employee, error) {
	return f.findActiveFn(ctx, department, offset, limit)
}
func (f *fakeRepo) Update(ctx context.Context, e *employee.Employee) error {
	return f.updateFn(ctx, e)
}
func (f *fakeRepo) SumLeaveDays(ctx context.Context, employeeID uint, status string) (float64, error) {
	return f.sumLeaveDaysFn(ctx, employeeID, status)
}

type fakeUserRepo struct {
	withTxFn         func(tx *sql.Tx) user.Repository
	createFn         func(ctx context.Context, u *user.User) error
	findByEmailFn    func(ctx context.Context, email string) (*user.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*user.User, error)
	findByIDFn       func(ctx context.Context, id uint) (*user.User, error)
	updateFn         func(ctx context.Context, u *user.User) error
	nextUsernameFn   func(ctx context.Context, email string) (string, error)
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) user.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return f.createFn(ctx, u) }
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.findByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return f.updateFn(ctx, u) }
func (f *fakeUserRepo) NextUsername(ctx context.Context, email string) (string, error) {
	return f.nextUsernameFn(ctx, email)
}

type fakeCounter struct {
	nextFn func(ctx context.Context, counterType string) (int64, error)
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	return f.nextFn(ctx, counterType)
}

func notFoundEmployee(ctx context.Context, id uint) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestEmployeeService_Setup(t *testing.T) {
	ctx := context.Background()
	db, _, _ := sqlmock.New()
	defer db.Close()

	actor := authz.Actor{UserID: 7, Email: "bob@example.com", Role: authz.RoleUser, IsActive: true}

	t.Run("success with auto generated code", func(t *testing.T) {
		repo := &fakeRepo{
			findByUserIDFn: func(ctx context.Context, userID uint) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, uint(7), e.UserID)
				assert.Equal(t, "EMP-0042", e.EmployeeCode)
				assert.Equal(t, 21, e.AnnualLeaveBalance)
				assert.True(t, e.IsActive)
				e.ID = 11
				return nil
			},
			findByIDFn: notFoundEmployee,
		}
		counterRepo := &fakeCounter{nextFn: func(ctx context.Context, counterType string) (int64, error) {
			assert.Equal(t, "employee_code", counterType)
			return 42, nil
		}}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, counterRepo)

		resp, err := svc.Setup(ctx, actor, employee.CreateEmployeeRequest{
			Designation: "Engineer",
			Department:  "Platform",
			HireDate:    "2025-02-03",
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-0042", resp.EmployeeCode)
		assert.Equal(t, "Full-time", resp.EmploymentType)
	})

	t.Run("negative duplicate profile", func(t *testing.T) {
		repo := &fakeRepo{
			findByUserIDFn: func(ctx context.Context, userID uint) (*employee.Employee, error) {
				return &employee.Employee{ID: 5, UserID: userID}, nil
			},
		}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, &fakeCounter{})

		_, err := svc.Setup(ctx, actor, employee.CreateEmployeeRequest{
			Designation: "Engineer",
			Department:  "Platform",
			HireDate:    "2025-02-03",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrProfileAlreadyExists)
	})

	t.Run("negative bad hire date", func(t *testing.T) {
		repo := &fakeRepo{
			findByUserIDFn: func(ctx context.Context, userID uint) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, &fakeCounter{})

		_, err := svc.Setup(ctx, actor, employee.CreateEmployeeRequest{
			Designation: "Engineer",
			Department:  "Platform",
			HireDate:    "03-02-2025",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateFormat)
	})
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	db, _, _ := sqlmock.New()
	defer db.Close()

	userID := uint(3)

	t.Run("negative user id missing", func(t *testing.T) {
		svc := employee.NewService(db, &fakeRepo{}, &fakeUserRepo{}, &fakeCounter{})

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Designation: "Engineer",
			Department:  "Platform",
			HireDate:    "2025-02-03",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrUserRequired)
	})

	t.Run("negative explicit code already taken", func(t *testing.T) {
		users := &fakeUserRepo{
			findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				return &user.User{ID: id}, nil
			},
		}
		repo := &fakeRepo{
			findByUserIDFn: func(ctx context.Context, uid uint) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
			findByCodeFn: func(ctx context.Context, code string) (*employee.Employee, error) {
				return &employee.Employee{ID: 9, EmployeeCode: code}, nil
			},
		}
		svc := employee.NewService(db, repo, users, &fakeCounter{})

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			UserID:       &userID,
			EmployeeCode: "EMP-0001",
			Designation:  "Engineer",
			Department:   "Platform",
			HireDate:     "2025-02-03",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeTaken)
	})
}

func TestEmployeeService_CreateWithUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success commits user and profile together", func(t *testing.T) {
		db, dbMock, _ := sqlmock.New()
		defer db.Close()
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		var createdUser *user.User
		users := &fakeUserRepo{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
			nextUsernameFn: func(ctx context.Context, email string) (string, error) {
				return "bob", nil
			},
			createFn: func(ctx context.Context, u *user.User) error {
				u.ID = 12
				createdUser = u
				return nil
			},
		}
		repo := &fakeRepo{
			createFn: func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, uint(12), e.UserID)
				e.ID = 4
				return nil
			},
		}
		counterRepo := &fakeCounter{nextFn: func(ctx context.Context, counterType string) (int64, error) {
			return 7, nil
		}}
		svc := employee.NewService(db, repo, users, counterRepo)

		resp, err := svc.CreateWithUser(ctx, employee.CreateEmployeeWithUserRequest{
			Email:     "bob@example.com",
			FirstName: "Bob",
			LastName:  "Stone",
			Password:  "s3cretpass",
			CreateEmployeeRequest: employee.CreateEmployeeRequest{
				Designation: "Analyst",
				Department:  "Finance",
				HireDate:    "2025-06-01",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-0007", resp.EmployeeCode)
		assert.Equal(t, "Bob", resp.FirstName)
		assert.Equal(t, "bob", createdUser.Username)
		assert.Equal(t, authz.RoleUser, createdUser.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.HashedPassword), []byte("s3cretpass")))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate email leaves nothing behind", func(t *testing.T) {
		db, dbMock, _ := sqlmock.New()
		defer db.Close()

		users := &fakeUserRepo{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{ID: 1, Email: email}, nil
			},
			createFn: func(ctx context.Context, u *user.User) error {
				t.Fatal("user must not be created")
				return nil
			},
		}
		svc := employee.NewService(db, &fakeRepo{}, users, &fakeCounter{})

		_, err := svc.CreateWithUser(ctx, employee.CreateEmployeeWithUserRequest{
			Email:     "bob@example.com",
			FirstName: "Bob",
			LastName:  "Stone",
			Password:  "s3cretpass",
			CreateEmployeeRequest: employee.CreateEmployeeRequest{
				Designation: "Analyst",
				Department:  "Finance",
				HireDate:    "2025-06-01",
			},
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyRegistered)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("negative profile insert failure rolls back the account", func(t *testing.T) {
		db, dbMock, _ := sqlmock.New()
		defer db.Close()
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		users := &fakeUserRepo{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
			nextUsernameFn: func(ctx context.Context, email string) (string, error) {
				return "bob", nil
			},
			createFn: func(ctx context.Context, u *user.User) error {
				u.ID = 12
				return nil
			},
		}
		repo := &fakeRepo{
			createFn: func(ctx context.Context, e *employee.Employee) error {
				return errors.New("db error")
			},
		}
		counterRepo := &fakeCounter{nextFn: func(ctx context.Context, counterType string) (int64, error) {
			return 8, nil
		}}
		svc := employee.NewService(db, repo, users, counterRepo)

		_, err := svc.CreateWithUser(ctx, employee.CreateEmployeeWithUserRequest{
			Email:     "bob@example.com",
			FirstName: "Bob",
			LastName:  "Stone",
			Password:  "s3cretpass",
			CreateEmployeeRequest: employee.CreateEmployeeRequest{
				Designation: "Analyst",
				Department:  "Finance",
				HireDate:    "2025-06-01",
			},
		})

		assert.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetLeaveBalance(t *testing.T) {
	ctx := context.Background()
	db, _, _ := sqlmock.New()
	defer db.Close()

	t.Run("success sums taken and pending", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*employee.Employee, error) {
				return &employee.Employee{
					ID:                   id,
					AnnualLeaveBalance:   21,
					SickLeaveBalance:     10,
					PersonalLeaveBalance: 5,
				}, nil
			},
			sumLeaveDaysFn: func(ctx context.Context, employeeID uint, status string) (float64, error) {
				switch status {
				case "Approved":
					return 6.5, nil
				case "Pending":
					return 2, nil
				}
				return 0, nil
			},
		}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, &fakeCounter{})

		resp, err := svc.GetLeaveBalance(ctx, 4)

		assert.NoError(t, err)
		assert.Equal(t, 21, resp.AnnualLeaveBalance)
		assert.Equal(t, 6.5, resp.TotalLeavesTaken)
		assert.Equal(t, 2.0, resp.LeavesPending)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		repo := &fakeRepo{findByIDFn: notFoundEmployee}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, &fakeCounter{})

		_, err := svc.GetLeaveBalance(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_AdjustBalance(t *testing.T) {
	ctx := context.Background()
	db, _, _ := sqlmock.New()
	defer db.Close()

	newRepo := func(empl *employee.Employee) *fakeRepo {
		return &fakeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*employee.Employee, error) {
				return empl, nil
			},
			updateFn: func(ctx context.Context, e *employee.Employee) error { return nil },
			sumLeaveDaysFn: func(ctx context.Context, employeeID uint, status string) (float64, error) {
				return 0, nil
			},
		}
	}

	t.Run("debit annual", func(t *testing.T) {
		empl := &employee.Employee{ID: 4, AnnualLeaveBalance: 21}
		svc := employee.NewService(db, newRepo(empl), &fakeUserRepo{}, &fakeCounter{})

		resp, err := svc.AdjustBalance(ctx, 4, employee.AdjustBalanceRequest{
			LeaveType: "Annual", Days: 3, Direction: "debit",
		})

		assert.NoError(t, err)
		assert.Equal(t, 18, resp.AnnualLeaveBalance)
	})

	t.Run("credit sick", func(t *testing.T) {
		empl := &employee.Employee{ID: 4, SickLeaveBalance: 10}
		svc := employee.NewService(db, newRepo(empl), &fakeUserRepo{}, &fakeCounter{})

		resp, err := svc.AdjustBalance(ctx, 4, employee.AdjustBalanceRequest{
			LeaveType: "sick", Days: 2, Direction: "credit",
		})

		assert.NoError(t, err)
		assert.Equal(t, 12, resp.SickLeaveBalance)
	})

	t.Run("negative unknown leave type", func(t *testing.T) {
		empl := &employee.Employee{ID: 4}
		svc := employee.NewService(db, newRepo(empl), &fakeUserRepo{}, &fakeCounter{})

		_, err := svc.AdjustBalance(ctx, 4, employee.AdjustBalanceRequest{
			LeaveType: "sabbatical", Days: 1, Direction: "debit",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrUnknownLeaveType)
	})

	t.Run("negative fractional days rejected instead of truncated", func(t *testing.T) {
		empl := &employee.Employee{ID: 4, AnnualLeaveBalance: 21}
		repo := newRepo(empl)
		repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			t.Fatal("update must not be called")
			return nil
		}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, &fakeCounter{})

		_, err := svc.AdjustBalance(ctx, 4, employee.AdjustBalanceRequest{
			LeaveType: "annual", Days: 0.5, Direction: "debit",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrFractionalDays)
		assert.Equal(t, 21, empl.AnnualLeaveBalance)
	})
}

func TestEmployeeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	db, _, _ := sqlmock.New()
	defer db.Close()

	t.Run("success keeps the row", func(t *testing.T) {
		empl := &employee.Employee{ID: 4, IsActive: true}
		var saved *employee.Employee
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*employee.Employee, error) {
				return empl, nil
			},
			updateFn: func(ctx context.Context, e *employee.Employee) error {
				saved = e
				return nil
			},
		}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, &fakeCounter{})

		err := svc.Deactivate(ctx, 4)

		assert.NoError(t, err)
		assert.False(t, saved.IsActive)
		assert.NotNil(t, saved.TerminationDate)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		repo := &fakeRepo{findByIDFn: notFoundEmployee}
		svc := employee.NewService(db, repo, &fakeUserRepo{}, &fakeCounter{})

		err := svc.Deactivate(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

// Runs the real gorm repositories on a single mocked connection so the
// transaction boundary itself is under test, not a fake.
func TestEmployeeService_CreateWithUser_RollbackDiscardsUserRow(t *testing.T) {
	ctx := context.Background()

	conn, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer conn.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	// Pre-checks run on the pool before the transaction opens.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "employees" WHERE employee_code = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Both inserts join the transaction; the failed profile insert takes the
	// user row down with it.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employees"`)).
		WillReturnError(errors.New("profile insert failed"))
	mock.ExpectRollback()

	svc := employee.NewService(conn, employee.NewRepository(gdb), user.NewRepository(gdb), &fakeCounter{})

	_, err = svc.CreateWithUser(ctx, employee.CreateEmployeeWithUserRequest{
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Stone",
		Password:  "s3cretpass",
		CreateEmployeeRequest: employee.CreateEmployeeRequest{
			EmployeeCode: "EMP-9001",
			Designation:  "Analyst",
			Department:   "Finance",
			HireDate:     "2025-06-01",
		},
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
