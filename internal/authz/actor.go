package authz

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Actor is the authenticated identity every permission decision runs against.
// EmployeeID is nil for accounts without an employee profile (typically admins).
type Actor struct {
	UserID      uint
	Email       string
	Role        string
	IsSuperuser bool
	IsActive    bool
	EmployeeID  *uint
}

// IsPrivileged collapses the role=admin / legacy is_superuser duality into a
// single capability check. The two flags must never be consulted separately.
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleAdmin || a.IsSuperuser
}

// EffectiveRole is the role fed to the route-level enforcer.
func (a Actor) EffectiveRole() string {
	if a.IsPrivileged() {
		return RoleAdmin
	}
	return RoleUser
}

func (a Actor) HasEmployeeProfile() bool {
	return a.EmployeeID != nil
}

// OwnsEmployee reports whether the actor's employee profile is employeeID.
func (a Actor) OwnsEmployee(employeeID uint) bool {
	return a.EmployeeID != nil && *a.EmployeeID == employeeID
}
