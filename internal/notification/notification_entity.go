package notification

import "time"

const (
	KindLeaveApproved = "leave_approved"
	KindLeaveRejected = "leave_rejected"
	KindLeaveApplied  = "leave_applied"
)

// Notification is an in-app message for one employee. LeaveID plus Kind is
// unique so a redelivered event cannot produce a second row.
type Notification struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"index;not null"`
	LeaveID    *uint  `gorm:"uniqueIndex:uq_notification_leave_kind"`
	Kind       string `gorm:"type:varchar(50);not null;uniqueIndex:uq_notification_leave_kind"`
	Message    string `gorm:"type:varchar(500);not null"`
	IsRead     bool   `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
