package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sohan418/leave-management-backend/internal/authz"
	employeeerrors "github.com/sohan418/leave-management-backend/internal/employee/errors"
	"github.com/sohan418/leave-management-backend/internal/events"
	notificationerrors "github.com/sohan418/leave-management-backend/internal/notification/errors"
	"github.com/sohan418/leave-management-backend/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	CreateFromDecision(ctx context.Context, event events.LeaveDecidedEvent) error
	List(ctx context.Context, actor authz.Actor, unreadOnly bool) (NotificationListResponse, error)
	MarkRead(ctx context.Context, actor authz.Actor, id uint) (NotificationResponse, error)
	MarkAllRead(ctx context.Context, actor authz.Actor) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

// CreateFromDecision turns a leave decision event into an in-app message for
// the requesting employee. Redelivered events hit the unique constraint and
// come back as ErrNotificationExists.
func (s *service) CreateFromDecision(ctx context.Context, event events.LeaveDecidedEvent) error {
	kind := KindLeaveApproved
	message := fmt.Sprintf("Your %s leave request has been approved.", event.LeaveType)
	if event.Status == "Rejected" {
		kind = KindLeaveRejected
		message = fmt.Sprintf("Your %s leave request has been rejected.", event.LeaveType)
		if event.RejectionReason != nil && *event.RejectionReason != "" {
			message = fmt.Sprintf("%s Reason: %s", message, *event.RejectionReason)
		}
	}

	leaveID := event.LeaveID
	n := &Notification{
		EmployeeID: event.EmployeeID,
		LeaveID:    &leaveID,
		Kind:       kind,
		Message:    message,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		if isDuplicateNotification(err) {
			return notificationerrors.ErrNotificationExists
		}
		s.logger.Error("persist notification failed",
			zap.Uint("leave_id", event.LeaveID),
			zap.Uint("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("notification created",
		zap.Uint("notification_id", n.ID),
		zap.Uint("employee_id", event.EmployeeID),
		zap.String("kind", kind),
	)
	return nil
}

func (s *service) List(ctx context.Context, actor authz.Actor, unreadOnly bool) (NotificationListResponse, error) {
	if !actor.HasEmployeeProfile() {
		return NotificationListResponse{}, employeeerrors.ErrProfileNotFound
	}
	employeeID := *actor.EmployeeID

	items, err := s.repo.FindByEmployee(ctx, employeeID, unreadOnly, 100)
	if err != nil {
		s.logger.Error("list notifications failed", zap.Error(err))
		return NotificationListResponse{}, err
	}

	unread, err := s.repo.CountUnread(ctx, employeeID)
	if err != nil {
		s.logger.Error("count unread notifications failed", zap.Error(err))
		return NotificationListResponse{}, err
	}

	resp := NotificationListResponse{
		Items:       make([]NotificationResponse, len(items)),
		UnreadCount: unread,
	}
	for i, n := range items {
		resp.Items[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, actor authz.Actor, id uint) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		}
		return NotificationResponse{}, err
	}

	if !actor.OwnsEmployee(n.EmployeeID) {
		return NotificationResponse{}, apperror.ErrForbidden
	}

	if !n.IsRead {
		n.IsRead = true
		if err := s.repo.Update(ctx, n); err != nil {
			s.logger.Error("mark notification read failed", zap.Uint("notification_id", id), zap.Error(err))
			return NotificationResponse{}, err
		}
	}
	return mapToResponse(*n), nil
}

func (s *service) MarkAllRead(ctx context.Context, actor authz.Actor) error {
	if !actor.HasEmployeeProfile() {
		return employeeerrors.ErrProfileNotFound
	}
	return s.repo.MarkAllRead(ctx, *actor.EmployeeID)
}

func isDuplicateNotification(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_notification_leave_kind"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_notification_leave_kind")
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		LeaveID:   n.LeaveID,
		Kind:      n.Kind,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
