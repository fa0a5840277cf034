package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sohan418/leave-management-backend/internal/config"
	"github.com/sohan418/leave-management-backend/internal/events"
	"github.com/sohan418/leave-management-backend/internal/messaging/kafka/consumer"
	"github.com/sohan418/leave-management-backend/internal/notification"
	"github.com/sohan418/leave-management-backend/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer turns leave decision events into notifications until it gets a
// shutdown signal.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	notificationRepo := notification.NewRepository(gormDB)
	notificationService := notification.NewService(notificationRepo, logger)

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, events.LeaveDecidedTopic, cfg.Kafka.ConsumerGroup)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLeaveLifecycle(ctx, reader, notificationService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
