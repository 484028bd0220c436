package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrUserInactive            = errors.New("user is inactive")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidRole             = errors.New("role must be EMPLOYEE, MANAGER or ADMIN")
	ErrInvalidPasswordLength   = errors.New("password must be at least 6 characters")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrForbiddenScope          = errors.New("not allowed to access other users' records")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
