package leave

import (
	"time"

	"github.com/sohan418/leave-management-backend/internal/employee"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

const (
	HalfDayMorning   = "Morning"
	HalfDayAfternoon = "Afternoon"
)

type LeaveRequest struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"not null;index"`
	LeaveType  string `gorm:"type:varchar(50);not null"`

	StartDate     time.Time `gorm:"type:date;not null;index"`
	EndDate       time.Time `gorm:"type:date;not null"`
	DaysRequested float64   `gorm:"not null"`

	Reason string `gorm:"type:text;not null"`
	Status string `gorm:"type:varchar(20);not null;default:'Pending';index"`

	AppliedDate     time.Time `gorm:"type:date;not null"`
	ApprovedBy      *uint
	ApprovedDate    *time.Time `gorm:"type:date"`
	RejectionReason *string    `gorm:"type:text"`

	IsHalfDay     bool    `gorm:"default:false"`
	HalfDayPeriod *string `gorm:"type:varchar(20)"`

	// JSON array of attachment URLs, stored opaque.
	Documents *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
	Approver *employee.Employee `gorm:"foreignKey:ApprovedBy"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

// IsPending reports whether the request can still be edited by its owner.
func (l LeaveRequest) IsPending() bool { return l.Status == StatusPending }

type LeaveType struct {
	ID                 uint    `gorm:"primaryKey"`
	Name               string  `gorm:"type:varchar(50);uniqueIndex:uq_leave_type_name;not null"`
	Description        *string `gorm:"type:text"`
	DefaultDays        int     `gorm:"default:0"`
	RequiresApproval   bool    `gorm:"default:true"`
	RequiresDocument   bool    `gorm:"default:false"`
	MaxConsecutiveDays *int
	IsActive           bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Holiday struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Date        time.Time `gorm:"type:date;uniqueIndex:uq_holiday_date;not null"`
	Description *string   `gorm:"type:text"`
	IsOptional  bool      `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
