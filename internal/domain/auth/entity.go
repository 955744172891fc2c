package auth

import "time"

// Role classifications carried in credentials and JWT claims. The wire values
// are the legacy numeric codes the frontend already speaks.
type Role string

const (
	RoleHR      Role = "1" // org-wide viewer
	RoleStaff   Role = "2" // individual contributor
	RoleManager Role = "3" // mid-level manager
)

var RoleValues = []string{
	string(RoleHR),
	string(RoleStaff),
	string(RoleManager),
}

func IsValidRole(r Role) bool {
	switch r {
	case RoleHR, RoleStaff, RoleManager:
		return true
	}
	return false
}

// Credential entity
type Credential struct {
	StaffID      int
	PasswordHash string
	Role         Role
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the decoded JWT payload attached to every authenticated
// request. Downstream services trust it verbatim.
type Identity struct {
	StaffID    int
	FirstName  string
	LastName   string
	Email      string
	Department string
	Position   string
	Role       Role
}
