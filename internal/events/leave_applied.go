package events

import "time"

const LeaveAppliedTopic = "leave.applied"

type LeaveAppliedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	LeaveID       uint      `json:"leave_id"`
	EmployeeID    uint      `json:"employee_id"`
	LeaveType     string    `json:"leave_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DaysRequested float64   `json:"days_requested"`
	OccurredAt    time.Time `json:"occurred_at"`
}
