package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string) error

	// List retrieves users matching the filter, ordered by role then name.
	List(ctx context.Context, filter ListUsersFilter) ([]User, error)
}

// UserService defines admin-facing user management operations.
type UserService interface {
	ListUsers(ctx context.Context, filter ListUsersFilter) ([]UserResponse, error)
	ListUserSummaries(ctx context.Context, query string) ([]UserSummary, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	DeactivateUser(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
