package leave

type ApplyLeaveRequest struct {
	LeaveType     string  `json:"leave_type" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
	Reason        string  `json:"reason" binding:"required"`
	IsHalfDay     bool    `json:"is_half_day"`
	HalfDayPeriod *string `json:"half_day_period" binding:"omitempty,oneof=Morning Afternoon"`
	Documents     *string `json:"documents"`
}

// UpdateLeaveRequest merges pointer fields into a pending request. Dates may
// change; the recorded day count does not.
type UpdateLeaveRequest struct {
	LeaveType     *string `json:"leave_type"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Reason        *string `json:"reason"`
	IsHalfDay     *bool   `json:"is_half_day"`
	HalfDayPeriod *string `json:"half_day_period" binding:"omitempty,oneof=Morning Afternoon"`
	Documents     *string `json:"documents"`
}

type DecideLeaveRequest struct {
	Status          string  `json:"status" binding:"required,oneof=Approved Rejected"`
	RejectionReason *string `json:"rejection_reason"`
}

type LeaveResponse struct {
	ID            uint    `json:"id"`
	EmployeeID    uint    `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysRequested float64 `json:"days_requested"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`

	AppliedDate     string  `json:"applied_date"`
	ApprovedBy      *uint   `json:"approved_by"`
	ApprovedDate    *string `json:"approved_date"`
	RejectionReason *string `json:"rejection_reason"`

	IsHalfDay     bool    `json:"is_half_day"`
	HalfDayPeriod *string `json:"half_day_period"`
	Documents     *string `json:"documents"`

	CreatedAt string `json:"created_at"`
}

type LeaveListResponse struct {
	Items      []LeaveResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

type LeaveStatistics struct {
	TotalLeaves     int `json:"total_leaves"`
	PendingLeaves   int `json:"pending_leaves"`
	ApprovedLeaves  int `json:"approved_leaves"`
	RejectedLeaves  int `json:"rejected_leaves"`
	LeavesThisMonth int `json:"leaves_this_month"`
	LeavesThisYear  int `json:"leaves_this_year"`
	OnLeaveToday    int `json:"on_leave_today"`
}

type CalendarEvent struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Type         string  `json:"type"`
	Status       *string `json:"status,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

type CreateLeaveTypeRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        *string `json:"description"`
	DefaultDays        int     `json:"default_days" binding:"gte=0"`
	RequiresApproval   *bool   `json:"requires_approval"`
	RequiresDocument   bool    `json:"requires_document"`
	MaxConsecutiveDays *int    `json:"max_consecutive_days"`
}

type UpdateLeaveTypeRequest struct {
	Description        *string `json:"description"`
	DefaultDays        *int    `json:"default_days" binding:"omitempty,gte=0"`
	RequiresApproval   *bool   `json:"requires_approval"`
	RequiresDocument   *bool   `json:"requires_document"`
	MaxConsecutiveDays *int    `json:"max_consecutive_days"`
	IsActive           *bool   `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	DefaultDays        int     `json:"default_days"`
	RequiresApproval   bool    `json:"requires_approval"`
	RequiresDocument   bool    `json:"requires_document"`
	MaxConsecutiveDays *int    `json:"max_consecutive_days"`
	IsActive           bool    `json:"is_active"`
}

type CreateHolidayRequest struct {
	Name        string  `json:"name" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description *string `json:"description"`
	IsOptional  bool    `json:"is_optional"`
}

type HolidayResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
	IsOptional  bool    `json:"is_optional"`
}
