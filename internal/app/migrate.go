package app

import (
	"github.com/sohan418/leave-management-backend/internal/employee"
	"github.com/sohan418/leave-management-backend/internal/leave"
	"github.com/sohan418/leave-management-backend/internal/notification"
	"github.com/sohan418/leave-management-backend/internal/user"

	"gorm.io/gorm"
)

// The outbox and counter tables are addressed with raw SQL so they get raw
// DDL here instead of AutoMigrate.
const counterTableDDL = `
CREATE TABLE IF NOT EXISTS code_counters (
    counter_type VARCHAR(50) PRIMARY KEY,
    last_value   BIGINT NOT NULL DEFAULT 0,
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
    id             UUID PRIMARY KEY,
    request_id     VARCHAR(64) NOT NULL DEFAULT '',
    aggregate_type VARCHAR(50) NOT NULL,
    aggregate_id   VARCHAR(64) NOT NULL,
    event_type     VARCHAR(50) NOT NULL,
    topic          VARCHAR(100) NOT NULL,
    payload        JSONB NOT NULL,
    status         VARCHAR(20) NOT NULL DEFAULT 'pending',
    retry_count    INT NOT NULL DEFAULT 0,
    next_retry_at  TIMESTAMPTZ,
    processed_at   TIMESTAMPTZ,
    error_message  VARCHAR(500),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&employee.Employee{},
		&leave.LeaveRequest{},
		&leave.LeaveType{},
		&leave.Holiday{},
		&notification.Notification{},
	); err != nil {
		return err
	}

	if err := db.Exec(counterTableDDL).Error; err != nil {
		return err
	}
	return db.Exec(outboxTableDDL).Error
}
