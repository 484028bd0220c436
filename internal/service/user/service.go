package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/evidencija/attendance-backend-go/internal/domain/admin"
	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
	"github.com/evidencija/attendance-backend-go/internal/pkg/jwt"
	"github.com/evidencija/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	actionRepo admin.ActionRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository, actionRepo admin.ActionRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
		actionRepo:     actionRepo,
	}
}

func toUserResponse(u user.User) user.UserResponse {
	resp := user.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if u.LastLoginAt != nil {
		formatted := u.LastLoginAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		resp.LastLoginAt = &formatted
	}
	return resp
}

func requireAdmin(ctx context.Context) (jwt.Caller, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return jwt.Caller{}, err
	}
	if caller.Role != user.RoleAdmin {
		return jwt.Caller{}, user.ErrAdminPrivilegeRequired
	}
	return caller, nil
}

// record writes an audit row; the detail payload is marshalled JSON.
func (s *UserServiceImpl) record(ctx context.Context, actorID, action string, targetUser *string, detail any) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit detail: %w", err)
	}
	return s.actionRepo.Record(ctx, admin.Action{
		ActorID:    actorID,
		Action:     action,
		TargetUser: targetUser,
		Detail:     payload,
	})
}

// ListUsers implements user.UserService. Admin listing shows inactive accounts
// too; the dropdown mode never does.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	filter.IncludeInactive = true
	users, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

func requireManager(ctx context.Context) (jwt.Caller, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return jwt.Caller{}, err
	}
	if caller.Role != user.RoleManager && caller.Role != user.RoleAdmin {
		return jwt.Caller{}, user.ErrManagerAccessRequired
	}
	return caller, nil
}

// ListUserSummaries implements user.UserService. The dropdown shape is for
// managers and admins picking a target user; it exposes no account state.
func (s *UserServiceImpl) ListUserSummaries(ctx context.Context, query string) ([]user.UserSummary, error) {
	if _, err := requireManager(ctx); err != nil {
		return nil, err
	}

	users, err := s.UserRepository.List(ctx, user.ListUsersFilter{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]user.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, user.UserSummary{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
		})
	}
	return summaries, nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	_, err = s.UserRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return user.UserResponse{}, user.ErrUserEmailExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return user.UserResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.UserRepository.Create(txCtx, user.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: &hashed,
			Role:         user.Role(req.Role),
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		return s.record(txCtx, caller.UserID, admin.ActionUserCreate, &created.ID, map[string]string{
			"email": created.Email,
			"role":  string(created.Role),
		})
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Email != nil && *req.Email != existing.Email {
		_, err = s.UserRepository.GetByEmail(ctx, *req.Email)
		if err == nil {
			return user.UserResponse{}, user.ErrUserEmailExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, fmt.Errorf("failed to check existing email: %w", err)
		}
		existing.Email = *req.Email
	}
	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.Update(txCtx, existing); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return s.record(txCtx, caller.UserID, admin.ActionUserUpdate, &existing.ID, req)
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(existing), nil
}

// DeactivateUser implements user.UserService. Deactivation is the delete
// operation; rows are never removed so history stays intact.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, id string) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	existing, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !existing.IsActive {
		return nil
	}
	existing.IsActive = false

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.Update(txCtx, existing); err != nil {
			return fmt.Errorf("failed to deactivate user: %w", err)
		}
		return s.record(txCtx, caller.UserID, admin.ActionUserDeactivate, &existing.ID, map[string]string{
			"email": existing.Email,
		})
	})
}

// ResetPassword implements user.UserService.
func (s *UserServiceImpl) ResetPassword(ctx context.Context, req user.ResetPasswordRequest) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.UpdatePasswordHash(txCtx, existing.ID, string(hash)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return s.record(txCtx, caller.UserID, admin.ActionPasswordReset, &existing.ID, map[string]string{
			"email": existing.Email,
		})
	})
}
