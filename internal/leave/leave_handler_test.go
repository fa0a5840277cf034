package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sohan418/leave-management-backend/internal/authz"
	"github.com/sohan418/leave-management-backend/internal/leave"
	leaveerrors "github.com/sohan418/leave-management-backend/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	applyFn      func(ctx context.Context, actor authz.Actor, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error)
	getByIDFn    func(ctx context.Context, actor authz.Actor, id uint) (leave.LeaveResponse, error)
	listFn       func(ctx context.Context, actor authz.Actor, q leave.ListQuery) (leave.LeaveListResponse, error)
	updateFn     func(ctx context.Context, actor authz.Actor, id uint, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error)
	decideFn     func(ctx context.Context, actor authz.Actor, id uint, req leave.DecideLeaveRequest) (leave.LeaveResponse, error)
	deleteFn     func(ctx context.Context, actor authz.Actor, id uint) error
	statisticsFn func(ctx context.Context, actor authz.Actor) (leave.LeaveStatistics, error)
	calendarFn   func(ctx context.Context, actor authz.Actor, year, month int) ([]leave.CalendarEvent, error)
}

func (f *fakeService) Apply(ctx context.Context, actor authz.Actor, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	return f.applyFn(ctx, actor, req)
}
func (f *fakeService) GetByID(ctx context.Context, actor authz.Actor, id uint) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, actor, id)
}
func (f *fakeService) List(ctx context.Context, actor authz.Actor, q leave.ListQuery) (leave.LeaveListResponse, error) {
	return f.listFn(ctx, actor, q)
}
func (f *fakeService) Update(ctx context.Context, actor authz.Actor, id uint, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	return f.updateFn(ctx, actor, id, req)
}
func (f *fakeService) Decide(ctx context.Context, actor authz.Actor, id uint, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, actor, id, req)
}
func (f *fakeService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	return f.deleteFn(ctx, actor, id)
}
func (f *fakeService) Statistics(ctx context.Context, actor authz.Actor) (leave.LeaveStatistics, error) {
	return f.statisticsFn(ctx, actor)
}
func (f *fakeService) CalendarEvents(ctx context.Context, actor authz.Actor, year, month int) ([]leave.CalendarEvent, error) {
	return f.calendarFn(ctx, actor, year, month)
}

func testContext(t *testing.T, actor authz.Actor, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("actor", actor)
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
		c.Request = httptest.NewRequest(method, target, reader)
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c, w
}

func TestHandler_Apply(t *testing.T) {
	actor := employeeActor(4)

	t.Run("success returns created", func(t *testing.T) {
		svc := &fakeService{
			applyFn: func(ctx context.Context, a authz.Actor, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, actor.Email, a.Email)
				assert.Equal(t, "Annual", req.LeaveType)
				return leave.LeaveResponse{ID: 10, LeaveType: req.LeaveType, DaysRequested: 3}, nil
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, actor, http.MethodPost, "/leaves",
			`{"leave_type":"Annual","start_date":"2025-01-06","end_date":"2025-01-08","reason":"family trip"}`)
		h.Apply(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"days_requested":3`)
	})

	t.Run("negative missing required fields", func(t *testing.T) {
		svc := &fakeService{
			applyFn: func(ctx context.Context, a authz.Actor, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
				t.Fatal("service must not be called")
				return leave.LeaveResponse{}, nil
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, actor, http.MethodPost, "/leaves", `{"leave_type":"Annual"}`)
		h.Apply(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative service error maps to its status", func(t *testing.T) {
		svc := &fakeService{
			applyFn: func(ctx context.Context, a authz.Actor, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveTypeInactive
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, actor, http.MethodPost, "/leaves",
			`{"leave_type":"Annual","start_date":"2025-01-06","end_date":"2025-01-08","reason":"family trip"}`)
		h.Apply(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_List(t *testing.T) {
	t.Run("query params are passed through", func(t *testing.T) {
		svc := &fakeService{
			listFn: func(ctx context.Context, a authz.Actor, q leave.ListQuery) (leave.LeaveListResponse, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 5, q.PerPage)
				assert.Equal(t, leave.StatusApproved, q.Status)
				assert.Equal(t, "Engineering", q.Department)
				if assert.NotNil(t, q.EmployeeID) {
					assert.Equal(t, uint(7), *q.EmployeeID)
				}
				return leave.LeaveListResponse{Items: []leave.LeaveResponse{}, Page: 2, PerPage: 5, TotalPages: 1}, nil
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, adminActor(), http.MethodGet,
			"/leaves?page=2&per_page=5&status=Approved&department=Engineering&employee_id=7", "")
		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative malformed employee_id", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{}, nil)

		c, w := testContext(t, adminActor(), http.MethodGet, "/leaves?employee_id=bob", "")
		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListMine(t *testing.T) {
	actor := employeeActor(4)

	svc := &fakeService{
		listFn: func(ctx context.Context, a authz.Actor, q leave.ListQuery) (leave.LeaveListResponse, error) {
			if assert.NotNil(t, q.EmployeeID) {
				assert.Equal(t, uint(4), *q.EmployeeID)
			}
			assert.Empty(t, q.Department)
			return leave.LeaveListResponse{Items: []leave.LeaveResponse{{ID: 1}}}, nil
		},
	}
	h := leave.NewHandler(svc, nil)

	// department is a scope-widening filter and must not reach the service.
	c, w := testContext(t, actor, http.MethodGet, "/leaves/me?department=Engineering", "")
	h.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Decide(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			decideFn: func(ctx context.Context, a authz.Actor, id uint, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, uint(7), id)
				assert.Equal(t, leave.StatusRejected, req.Status)
				if assert.NotNil(t, req.RejectionReason) {
					assert.Equal(t, "short staffed", *req.RejectionReason)
				}
				return leave.LeaveResponse{ID: id, Status: req.Status}, nil
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, adminActor(), http.MethodPost, "/leaves/7/approve",
			`{"status":"Rejected","rejection_reason":"short staffed"}`)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		h.Decide(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative unknown status rejected by binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{}, nil)

		c, w := testContext(t, adminActor(), http.MethodPost, "/leaves/7/approve", `{"status":"Maybe"}`)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative malformed id", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{}, nil)

		c, w := testContext(t, adminActor(), http.MethodPost, "/leaves/abc/approve", `{"status":"Approved"}`)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			deleteFn: func(ctx context.Context, a authz.Actor, id uint) error {
				assert.Equal(t, uint(3), id)
				return nil
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, employeeActor(4), http.MethodDelete, "/leaves/3", "")
		c.Params = gin.Params{{Key: "id", Value: "3"}}
		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("negative not found maps to 404", func(t *testing.T) {
		svc := &fakeService{
			deleteFn: func(ctx context.Context, a authz.Actor, id uint) error {
				return leaveerrors.ErrLeaveNotFound
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, employeeActor(4), http.MethodDelete, "/leaves/99", "")
		c.Params = gin.Params{{Key: "id", Value: "99"}}
		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Statistics(t *testing.T) {
	svc := &fakeService{
		statisticsFn: func(ctx context.Context, a authz.Actor) (leave.LeaveStatistics, error) {
			return leave.LeaveStatistics{TotalLeaves: 3, PendingLeaves: 1, ApprovedLeaves: 2}, nil
		},
	}
	h := leave.NewHandler(svc, nil)

	c, w := testContext(t, employeeActor(4), http.MethodGet, "/leaves/statistics", "")
	h.Statistics(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_leaves":3`)
}

func TestHandler_Calendar(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			calendarFn: func(ctx context.Context, a authz.Actor, year, month int) ([]leave.CalendarEvent, error) {
				assert.Equal(t, 2025, year)
				assert.Equal(t, 2, month)
				return []leave.CalendarEvent{{ID: 1, Type: "holiday", Title: "Founders Day"}}, nil
			},
		}
		h := leave.NewHandler(svc, nil)

		c, w := testContext(t, employeeActor(4), http.MethodGet, "/leaves/calendar?year=2025&month=2", "")
		h.Calendar(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Founders Day")
	})

	t.Run("negative month out of range", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{}, nil)

		c, w := testContext(t, employeeActor(4), http.MethodGet, "/leaves/calendar?year=2025&month=13", "")
		h.Calendar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative missing year", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{}, nil)

		c, w := testContext(t, employeeActor(4), http.MethodGet, "/leaves/calendar?month=2", "")
		h.Calendar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
