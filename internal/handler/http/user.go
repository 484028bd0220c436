package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

// List implements UserHandler. With mode=dropdown it returns lightweight
// summaries for managers and admins; the full admin listing is admin only.
// Both role checks live in the service.
func (u *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	query := r.URL.Query().Get("q")

	if mode == "" || mode == "dropdown" {
		summaries, err := u.userService.ListUserSummaries(r.Context(), query)
		if err != nil {
			slog.Error("List user summaries service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Users retrieved successfully", summaries)
		return
	}

	if mode != "admin" {
		response.BadRequest(w, "mode must be dropdown or admin", nil)
		return
	}

	filter := user.ListUsersFilter{
		Mode:            mode,
		Query:           query,
		IncludeInactive: true,
	}
	users, err := u.userService.ListUsers(r.Context(), filter)
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Users retrieved successfully", users)
}

// Create implements UserHandler.
func (u *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := u.userService.CreateUser(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User created successfully", "user_id", created.ID)
	response.Created(w, "User created successfully", created)
}

// Update implements UserHandler.
func (u *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := u.userService.UpdateUser(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User updated successfully", "user_id", updated.ID)
	response.SuccessWithMessage(w, "User updated successfully", updated)
}

// Deactivate implements UserHandler.
func (u *UserHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := u.userService.DeactivateUser(r.Context(), id)
	if err != nil {
		slog.Error("Deactivate user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User deactivated successfully", "user_id", id)
	response.Success(w, "User deactivated successfully")
}

// ResetPassword implements UserHandler.
func (u *UserHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var resetReq user.ResetPasswordRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		slog.Error("Reset password decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	resetReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := resetReq.Validate(); err != nil {
		slog.Error("Reset password validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	err := u.userService.ResetPassword(r.Context(), resetReq)
	if err != nil {
		slog.Error("Reset password service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Password reset successfully", "user_id", resetReq.ID)
	response.Success(w, "Password has been reset successfully")
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}
