package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access, manages users
	RoleManager  Role = "MANAGER"  // Can view all records and decide WFH requests
	RoleEmployee Role = "EMPLOYEE" // Regular employee, sees only own records
)

// ValidRoles lists every role accepted on create/update.
var ValidRoles = []Role{RoleEmployee, RoleManager, RoleAdmin}

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash *string
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanDecideRequests checks if user can approve or reject WFH requests.
func (u *User) CanDecideRequests() bool {
	return u.IsManager()
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
