package domain

import "time"

// User represents a back-office user.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	BranchID  string    `json:"branchId"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Role represents a user's access level.
type Role string

const (
	// RoleHeadOffice has full visibility across all branches.
	RoleHeadOffice Role = "HO"

	// RoleBranch is scoped to the user's own branch.
	RoleBranch Role = "BR"
)

var validRoles = map[Role]bool{
	RoleHeadOffice: true,
	RoleBranch:     true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// Capabilities is the declarative access model resolved once per session
// from a user's role and branch affiliation. Handlers consult it instead
// of re-checking the role ad hoc.
type Capabilities struct {
	ViewAllBranches bool
	ViewDashboard   bool
	SubmitOperation bool
	BranchID        string
}

// ResolveCapabilities maps a role and branch affiliation to capabilities.
func ResolveCapabilities(role Role, branchID string) Capabilities {
	switch role {
	case RoleHeadOffice:
		return Capabilities{
			ViewAllBranches: true,
			ViewDashboard:   true,
			SubmitOperation: false,
		}
	case RoleBranch:
		return Capabilities{
			ViewAllBranches: false,
			ViewDashboard:   false,
			SubmitOperation: true,
			BranchID:        branchID,
		}
	default:
		return Capabilities{}
	}
}

// CanViewBranch checks whether the holder may read records for branchID.
func (c Capabilities) CanViewBranch(branchID string) bool {
	if c.ViewAllBranches {
		return true
	}
	return c.BranchID != "" && c.BranchID == branchID
}
