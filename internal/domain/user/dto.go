package user

import (
	"strings"

	"github.com/evidencija/attendance-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be EMPLOYEE, MANAGER or ADMIN"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID        string  `json:"-"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Role      *string `json:"role,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if r.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &normalized
		if !validator.IsValidEmail(normalized) {
			errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
		}
	}
	if r.Role != nil {
		normalized := strings.ToUpper(strings.TrimSpace(*r.Role))
		r.Role = &normalized
		if !validator.IsInSlice(normalized, []string{string(RoleEmployee), string(RoleManager), string(RoleAdmin)}) {
			errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be EMPLOYEE, MANAGER or ADMIN"})
		}
	}
	if r.FirstName == nil && r.LastName == nil && r.Email == nil && r.Role == nil && r.IsActive == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "no fields provided for update"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResetPasswordRequest struct {
	ID          string `json:"-"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}
	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListUsersFilter struct {
	Mode            string // dropdown | admin
	Query           string
	IncludeInactive bool
}

type UserResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"is_active"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// UserSummary is the lightweight shape used for dropdown listings.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
