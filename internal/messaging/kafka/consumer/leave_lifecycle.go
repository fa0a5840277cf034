package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sohan418/leave-management-backend/internal/events"
	"github.com/sohan418/leave-management-backend/internal/notification"
	notificationerrors "github.com/sohan418/leave-management-backend/internal/notification/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveLifecycle reads leave decision events and materializes a
// notification per decision. The decode failure path commits the message;
// a broken payload never gets better on retry.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.CreateFromDecision(ctx, event); err != nil {
			if errors.Is(err, notificationerrors.ErrNotificationExists) {
				log.Warn("notification already recorded for event, skipping",
					zap.Uint("leave_id", event.LeaveID),
					zap.Uint("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create notification from decision failed",
				zap.Uint("leave_id", event.LeaveID),
				zap.Uint("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("notification created from leave_decided event",
			zap.Uint("leave_id", event.LeaveID),
			zap.Uint("employee_id", event.EmployeeID),
			zap.String("status", event.Status),
		)
	}
}
