package employee

type CreateEmployeeRequest struct {
	UserID       *uint  `json:"user_id"`
	EmployeeCode string `json:"employee_code"`

	Phone                 *string `json:"phone"`
	Address               *string `json:"address"`
	DateOfBirth           *string `json:"date_of_birth"`
	Gender                *string `json:"gender"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	Designation    string   `json:"designation" binding:"required"`
	Department     string   `json:"department" binding:"required"`
	ManagerID      *uint    `json:"manager_id"`
	HireDate       string   `json:"hire_date" binding:"required"`
	EmploymentType string   `json:"employment_type" binding:"omitempty,oneof=Full-time Part-time Contract"`
	Salary         *float64 `json:"salary"`

	AnnualLeaveBalance   *int `json:"annual_leave_balance"`
	SickLeaveBalance     *int `json:"sick_leave_balance"`
	PersonalLeaveBalance *int `json:"personal_leave_balance"`
}

type UpdateEmployeeRequest struct {
	Phone                 *string `json:"phone"`
	Address               *string `json:"address"`
	DateOfBirth           *string `json:"date_of_birth"`
	Gender                *string `json:"gender"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	Designation    *string  `json:"designation"`
	Department     *string  `json:"department"`
	ManagerID      *uint    `json:"manager_id"`
	EmploymentType *string  `json:"employment_type" binding:"omitempty,oneof=Full-time Part-time Contract"`
	Salary         *float64 `json:"salary"`

	AnnualLeaveBalance   *int  `json:"annual_leave_balance"`
	SickLeaveBalance     *int  `json:"sick_leave_balance"`
	PersonalLeaveBalance *int  `json:"personal_leave_balance"`
	IsActive             *bool `json:"is_active"`
}

// CreateEmployeeWithUserRequest creates the user account and the employee
// profile in a single transaction.
type CreateEmployeeWithUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=user admin"`

	CreateEmployeeRequest
}

type UpdateEmployeeWithUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`

	UpdateEmployeeRequest
}

type AdjustBalanceRequest struct {
	LeaveType string  `json:"leave_type" binding:"required"`
	Days      float64 `json:"days" binding:"required,gt=0"`
	Direction string  `json:"direction" binding:"required,oneof=debit credit"`
}

type EmployeeResponse struct {
	ID           uint   `json:"id"`
	EmployeeCode string `json:"employee_code"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	Phone                 *string `json:"phone,omitempty"`
	Address               *string `json:"address,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`

	Designation    string   `json:"designation"`
	Department     string   `json:"department"`
	ManagerID      *uint    `json:"manager_id,omitempty"`
	HireDate       string   `json:"hire_date"`
	EmploymentType string   `json:"employment_type"`
	Salary         *float64 `json:"salary,omitempty"`

	AnnualLeaveBalance   int `json:"annual_leave_balance"`
	SickLeaveBalance     int `json:"sick_leave_balance"`
	PersonalLeaveBalance int `json:"personal_leave_balance"`

	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type LeaveBalanceResponse struct {
	AnnualLeaveBalance   int     `json:"annual_leave_balance"`
	SickLeaveBalance     int     `json:"sick_leave_balance"`
	PersonalLeaveBalance int     `json:"personal_leave_balance"`
	TotalLeavesTaken     float64 `json:"total_leaves_taken"`
	LeavesPending        float64 `json:"leaves_pending"`
}
