package employee

import (
	"time"

	"github.com/sohan418/leave-management-backend/internal/user"
)

type Employee struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex:uq_employee_user;not null"`
	EmployeeCode string `gorm:"type:varchar(50);uniqueIndex:uq_employee_code;not null"`

	// Personal information
	Phone                 *string    `gorm:"type:varchar(20)"`
	Address               *string    `gorm:"type:text"`
	DateOfBirth           *time.Time `gorm:"type:date"`
	Gender                *string    `gorm:"type:varchar(10)"`
	EmergencyContactName  *string    `gorm:"type:varchar(100)"`
	EmergencyContactPhone *string    `gorm:"type:varchar(20)"`

	// Employment information
	Designation    string `gorm:"type:varchar(100);not null"`
	Department     string `gorm:"type:varchar(100);not null;index"`
	ManagerID      *uint
	HireDate       time.Time `gorm:"type:date;not null"`
	EmploymentType string    `gorm:"type:varchar(50);not null;default:'Full-time'"`
	Salary         *float64  `gorm:"type:decimal(10,2)"`

	// Leave balances, in days
	AnnualLeaveBalance   int `gorm:"default:21"`
	SickLeaveBalance     int `gorm:"default:10"`
	PersonalLeaveBalance int `gorm:"default:5"`

	IsActive        bool `gorm:"default:true"`
	TerminationDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Managers form a forest; cycle prevention is the caller's concern.
	User    *user.User `gorm:"foreignKey:UserID"`
	Manager *Employee  `gorm:"foreignKey:ManagerID"`
}
