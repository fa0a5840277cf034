package events

import "time"

const LeaveDecidedTopic = "leave.decided"

type LeaveDecidedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id"`
	LeaveID         uint      `json:"leave_id"`
	EmployeeID      uint      `json:"employee_id"`
	LeaveType       string    `json:"leave_type"`
	Status          string    `json:"status"`
	DecidedBy       *uint     `json:"decided_by"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
