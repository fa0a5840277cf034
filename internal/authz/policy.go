package authz

// Entity-level decisions. Pure functions, no side effects: callers resolve
// the resource first (existence is checked before permission, so NotFound
// can precede Forbidden) and then ask.

// CanReadLeave allows the owning employee and privileged actors.
func CanReadLeave(actor Actor, ownerEmployeeID uint) bool {
	return actor.IsPrivileged() || actor.OwnsEmployee(ownerEmployeeID)
}

// CanMutateLeave covers update and delete: privileged actors at any status,
// the owner only while the request is still pending.
func CanMutateLeave(actor Actor, ownerEmployeeID uint, leavePending bool) bool {
	if actor.IsPrivileged() {
		return true
	}
	return actor.OwnsEmployee(ownerEmployeeID) && leavePending
}

// CanDecideLeave gates approve/reject.
func CanDecideLeave(actor Actor) bool {
	return actor.IsPrivileged()
}

// CanViewGlobalScope gates list-all, global statistics and the global calendar.
func CanViewGlobalScope(actor Actor) bool {
	return actor.IsPrivileged()
}
