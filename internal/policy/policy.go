package policy

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
	RoleAdmin    = "ADMIN"
)

// Principal is the authenticated caller as seen by authorization checks.
// It is fully materialized from the token claims; predicates never do I/O.
type Principal struct {
	UserID     string
	EmployeeID string
	Role       string
}

func (p Principal) IsElevated() bool {
	return p.Role == RoleManager || p.Role == RoleAdmin
}

// CanViewLeave reports whether p may read a leave requested by the
// given employee. Managers and admins see everything, employees only
// their own requests.
func CanViewLeave(p Principal, requesterEmployeeID string) bool {
	if p.IsElevated() {
		return true
	}
	return p.EmployeeID != "" && p.EmployeeID == requesterEmployeeID
}

// CanResolveLeave reports whether p may approve, reject or cancel a
// pending leave request.
func CanResolveLeave(p Principal) bool {
	return p.IsElevated()
}

// CanManageCatalog gates mutation of reference data (leave types,
// departments, positions) and employee records.
func CanManageCatalog(p Principal) bool {
	return p.IsElevated()
}

// CanAssignRoles gates promoting or demoting accounts. Admin only;
// managers must not be able to mint other managers.
func CanAssignRoles(p Principal) bool {
	return p.Role == RoleAdmin
}
