package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/sohan418/leave-management-backend/internal/authz"
	employeeerrors "github.com/sohan418/leave-management-backend/internal/employee/errors"
	"github.com/sohan418/leave-management-backend/internal/events"
	leaveerrors "github.com/sohan418/leave-management-backend/internal/leave/errors"
	"github.com/sohan418/leave-management-backend/internal/messaging/kafka"
	"github.com/sohan418/leave-management-backend/internal/shared/apperror"
	"github.com/sohan418/leave-management-backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ListQuery is the HTTP-facing filter for leave listings.
type ListQuery struct {
	Page       int
	PerPage    int
	Status     string
	LeaveType  string
	Department string
	EmployeeID *uint
	StartDate  string
	EndDate    string
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, actor authz.Actor, req ApplyLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, actor authz.Actor, id uint) (LeaveResponse, error)
	List(ctx context.Context, actor authz.Actor, q ListQuery) (LeaveListResponse, error)
	Update(ctx context.Context, actor authz.Actor, id uint, req UpdateLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, actor authz.Actor, id uint, req DecideLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
	Statistics(ctx context.Context, actor authz.Actor) (LeaveStatistics, error)
	CalendarEvents(ctx context.Context, actor authz.Actor, year, month int) ([]CalendarEvent, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	types    LeaveTypeRepository
	holidays HolidayRepository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	types LeaveTypeRepository,
	holidays HolidayRepository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, types, holidays, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	types LeaveTypeRepository,
	holidays HolidayRepository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		types:    types,
		holidays: holidays,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Apply(ctx context.Context, actor authz.Actor, req ApplyLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply leave requested",
		zap.String("request_id", rid),
		zap.Uint("user_id", actor.UserID),
		zap.String("leave_type", req.LeaveType),
	)

	if !actor.HasEmployeeProfile() {
		return LeaveResponse{}, employeeerrors.ErrProfileNotFound
	}
	employeeID := *actor.EmployeeID

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	// Unknown names are allowed so ad-hoc leave kinds keep working; only a
	// catalogued-but-disabled type is rejected.
	if lt, err := s.types.FindByName(ctx, req.LeaveType); err == nil {
		if !lt.IsActive {
			return LeaveResponse{}, leaveerrors.ErrLeaveTypeInactive
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("apply leave type lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	days := float64(BusinessDays(start, end))
	if req.IsHalfDay {
		days = 0.5
	}

	l := &LeaveRequest{
		EmployeeID:    employeeID,
		LeaveType:     req.LeaveType,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: days,
		Reason:        req.Reason,
		Status:        StatusPending,
		AppliedDate:   today(),
		IsHalfDay:     req.IsHalfDay,
		HalfDayPeriod: req.HalfDayPeriod,
		Documents:     req.Documents,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveAppliedEvent{
			EventType:     "leave_applied",
			RequestID:     rid,
			LeaveID:       l.ID,
			EmployeeID:    employeeID,
			LeaveType:     l.LeaveType,
			StartDate:     l.StartDate.Format(dateLayout),
			EndDate:       l.EndDate.Format(dateLayout),
			DaysRequested: l.DaysRequested,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.queueEvent(ctx, tx, rid, l, events.LeaveAppliedTopic, event.EventType, event); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", l.ID),
		zap.Float64("days_requested", l.DaysRequested),
	)

	if full, err := s.repo.FindByID(ctx, l.ID); err == nil {
		l = full
	}
	return mapToResponse(*l), nil
}

func (s *service) GetByID(ctx context.Context, actor authz.Actor, id uint) (LeaveResponse, error) {
	l, err := s.findLeave(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if !authz.CanReadLeave(actor, l.EmployeeID) {
		return LeaveResponse{}, apperror.ErrForbidden
	}
	return mapToResponse(*l), nil
}

func (s *service) List(ctx context.Context, actor authz.Actor, q ListQuery) (LeaveListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 || q.PerPage > 100 {
		q.PerPage = 10
	}

	f := Filter{
		Status:    q.Status,
		LeaveType: q.LeaveType,
	}
	if authz.CanViewGlobalScope(actor) {
		f.EmployeeID = q.EmployeeID
		f.Department = q.Department
	} else {
		if !actor.HasEmployeeProfile() {
			return LeaveListResponse{}, employeeerrors.ErrProfileNotFound
		}
		f.EmployeeID = actor.EmployeeID
	}

	var err error
	if f.StartDate, err = parseOptionalDate(q.StartDate); err != nil {
		return LeaveListResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if f.EndDate, err = parseOptionalDate(q.EndDate); err != nil {
		return LeaveListResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	leaves, total, err := s.repo.FindPage(ctx, f, (q.Page-1)*q.PerPage, q.PerPage)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return LeaveListResponse{}, err
	}

	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	}

	items := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		items[i] = mapToResponse(l)
	}

	return LeaveListResponse{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *service) Update(ctx context.Context, actor authz.Actor, id uint, req UpdateLeaveRequest) (LeaveResponse, error) {
	l, err := s.findLeave(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if !authz.CanMutateLeave(actor, l.EmployeeID, l.IsPending()) {
		if !actor.OwnsEmployee(l.EmployeeID) {
			return LeaveResponse{}, apperror.ErrForbidden
		}
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	if req.LeaveType != nil {
		l.LeaveType = *req.LeaveType
	}
	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
		}
		l.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
		}
		l.EndDate = end
	}
	if l.EndDate.Before(l.StartDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if req.Reason != nil {
		l.Reason = *req.Reason
	}
	if req.IsHalfDay != nil {
		l.IsHalfDay = *req.IsHalfDay
	}
	if req.HalfDayPeriod != nil {
		l.HalfDayPeriod = req.HalfDayPeriod
	}
	if req.Documents != nil {
		l.Documents = req.Documents
	}

	// DaysRequested keeps its value from submission time even when the
	// dates move.
	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("update leave success", zap.Uint("leave_id", id))
	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, actor authz.Actor, id uint, req DecideLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !authz.CanDecideLeave(actor) {
		return LeaveResponse{}, apperror.ErrForbidden
	}

	l, err := s.findLeave(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	// A later decision overwrites an earlier one; there is no terminal state.
	l.Status = req.Status
	l.ApprovedBy = actor.EmployeeID
	decided := today()
	l.ApprovedDate = &decided
	if req.RejectionReason != nil {
		l.RejectionReason = req.RejectionReason
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveDecidedEvent{
			EventType:       "leave_decided",
			RequestID:       rid,
			LeaveID:         l.ID,
			EmployeeID:      l.EmployeeID,
			LeaveType:       l.LeaveType,
			Status:          l.Status,
			DecidedBy:       l.ApprovedBy,
			RejectionReason: l.RejectionReason,
			OccurredAt:      time.Now().UTC(),
		}
		if err := s.queueEvent(ctx, tx, rid, l, events.LeaveDecidedTopic, event.EventType, event); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", id),
		zap.String("status", l.Status),
	)

	if full, err := s.repo.FindByID(ctx, id); err == nil {
		l = full
	}
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	l, err := s.findLeave(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanMutateLeave(actor, l.EmployeeID, l.IsPending()) {
		if !actor.OwnsEmployee(l.EmployeeID) {
			return apperror.ErrForbidden
		}
		return leaveerrors.ErrLeaveNotPending
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete leave failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete leave success", zap.Uint("leave_id", id))
	return nil
}

// Statistics is computed in memory over the caller's full scope; the data set
// per employee is small and this keeps every count consistent with the same
// snapshot.
func (s *service) Statistics(ctx context.Context, actor authz.Actor) (LeaveStatistics, error) {
	var scope *uint
	if !authz.CanViewGlobalScope(actor) {
		if !actor.HasEmployeeProfile() {
			return LeaveStatistics{}, employeeerrors.ErrProfileNotFound
		}
		scope = actor.EmployeeID
	}

	leaves, err := s.repo.FindAll(ctx, scope)
	if err != nil {
		s.logger.Error("leave statistics query failed", zap.Error(err))
		return LeaveStatistics{}, err
	}

	now := time.Now()
	todayDate := today()

	stats := LeaveStatistics{TotalLeaves: len(leaves)}
	for _, l := range leaves {
		switch l.Status {
		case StatusPending:
			stats.PendingLeaves++
		case StatusApproved:
			stats.ApprovedLeaves++
		case StatusRejected:
			stats.RejectedLeaves++
		}

		if l.AppliedDate.Year() == now.Year() {
			stats.LeavesThisYear++
			if l.AppliedDate.Month() == now.Month() {
				stats.LeavesThisMonth++
			}
		}

		if l.Status == StatusApproved &&
			!todayDate.Before(l.StartDate) && !todayDate.After(l.EndDate) {
			stats.OnLeaveToday++
		}
	}

	return stats, nil
}

func (s *service) CalendarEvents(ctx context.Context, actor authz.Actor, year, month int) ([]CalendarEvent, error) {
	var scope *uint
	if !authz.CanViewGlobalScope(actor) {
		if !actor.HasEmployeeProfile() {
			return nil, employeeerrors.ErrProfileNotFound
		}
		scope = actor.EmployeeID
	}

	windowStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 1, -1)

	leaves, err := s.repo.FindOverlapping(ctx, windowStart, windowEnd, scope)
	if err != nil {
		s.logger.Error("calendar leave query failed", zap.Error(err))
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(leaves))
	for _, l := range leaves {
		name := ""
		if l.Employee != nil && l.Employee.User != nil {
			name = l.Employee.User.FullName()
		}
		status := l.Status
		events = append(events, CalendarEvent{
			ID:           l.ID,
			Title:        name + " - " + l.LeaveType,
			StartDate:    l.StartDate.Format(dateLayout),
			EndDate:      l.EndDate.Format(dateLayout),
			Type:         "leave",
			Status:       &status,
			EmployeeName: &name,
		})
	}

	holidays, err := s.holidays.FindBetween(ctx, windowStart, windowEnd)
	if err != nil {
		s.logger.Error("calendar holiday query failed", zap.Error(err))
		return nil, err
	}
	for _, h := range holidays {
		d := h.Date.Format(dateLayout)
		events = append(events, CalendarEvent{
			ID:        h.ID,
			Title:     h.Name,
			StartDate: d,
			EndDate:   d,
			Type:      "holiday",
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate < events[j].StartDate
	})
	return events, nil
}

func (s *service) findLeave(ctx context.Context, id uint) (*LeaveRequest, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("find leave failed", zap.Error(err))
		return nil, err
	}
	return l, nil
}

func (s *service) queueEvent(
	ctx context.Context,
	tx *sql.Tx,
	rid string,
	l *LeaveRequest,
	topic, eventType string,
	payload any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   formatID(l.ID),
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("queue outbox event failed",
			zap.Uint("leave_id", l.ID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
	return err
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format(dateLayout),
		EndDate:         l.EndDate.Format(dateLayout),
		DaysRequested:   l.DaysRequested,
		Reason:          l.Reason,
		Status:          l.Status,
		AppliedDate:     l.AppliedDate.Format(dateLayout),
		ApprovedBy:      l.ApprovedBy,
		RejectionReason: l.RejectionReason,
		IsHalfDay:       l.IsHalfDay,
		HalfDayPeriod:   l.HalfDayPeriod,
		Documents:       l.Documents,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}
	if l.ApprovedDate != nil {
		d := l.ApprovedDate.Format(dateLayout)
		resp.ApprovedDate = &d
	}
	if l.Employee != nil && l.Employee.User != nil {
		resp.EmployeeName = l.Employee.User.FullName()
	}
	return resp
}
