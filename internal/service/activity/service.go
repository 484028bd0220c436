package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/activity"
	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/pkg/daterange"
	"github.com/evidencija/attendance-backend-go/internal/pkg/ics"
	"github.com/evidencija/attendance-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
)

const calendarProdID = "-//Evidencija//Calendar Export//SR"

type ActivityServiceImpl struct {
	repo     activity.ActivityRepository
	userRepo user.UserRepository
	now      func() time.Time
}

func NewActivityService(repo activity.ActivityRepository, userRepo user.UserRepository) activity.ActivityService {
	return &ActivityServiceImpl{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func toResponse(act activity.Activity) activity.ActivityResponse {
	resp := activity.ActivityResponse{
		ID:          act.ID,
		Name:        act.Name,
		Description: act.Description,
		Date:        daterange.FormatDay(act.Date),
		StartTime:   act.StartTime.UTC().Format(time.RFC3339),
		EndTime:     act.EndTime.UTC().Format(time.RFC3339),
		Category:    string(act.Category),
		CreatedAt:   act.CreatedAt.UTC().Format(time.RFC3339),
	}
	if act.UserEmail != nil {
		resp.User = &activity.ActivityUser{
			ID:        act.UserID,
			Email:     *act.UserEmail,
			FirstName: derefOr(act.UserFirstName, ""),
			LastName:  derefOr(act.UserLastName, ""),
		}
	}
	return resp
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// resolveOwner decides whose activity the caller is creating or reassigning,
// and verifies that a cross-user target exists and is active.
func (s *ActivityServiceImpl) resolveOwner(ctx context.Context, caller jwt.Caller, requested string) (string, error) {
	targetID, err := user.ResolveAccessScope(caller.UserID, caller.Role, requested)
	if err != nil {
		return "", err
	}
	if targetID != caller.UserID {
		target, err := s.userRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", activity.ErrTargetUserInactive
			}
			return "", fmt.Errorf("failed to get target user: %w", err)
		}
		if !target.IsActive {
			return "", activity.ErrTargetUserInactive
		}
	}
	return targetID, nil
}

// List implements activity.ActivityService.
func (s *ActivityServiceImpl) List(ctx context.Context, filter activity.ListFilter) ([]activity.ActivityResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rng, err := daterange.Parse(filter.From, filter.To)
	if err != nil {
		return nil, err
	}

	// Employees see only their own calendar; managers and admins may browse
	// any single user or everyone at once.
	targetID := filter.UserID
	if caller.Role == user.RoleEmployee {
		if filter.UserID != "" && filter.UserID != caller.UserID {
			return nil, user.ErrForbiddenScope
		}
		targetID = caller.UserID
	}

	items, err := s.repo.ListRange(ctx, targetID, rng.From, rng.ToExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	responses := make([]activity.ActivityResponse, 0, len(items))
	for _, act := range items {
		responses = append(responses, toResponse(act))
	}
	return responses, nil
}

// Create implements activity.ActivityService.
func (s *ActivityServiceImpl) Create(ctx context.Context, req activity.CreateActivityRequest) (activity.ActivityResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return activity.ActivityResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return activity.ActivityResponse{}, err
	}

	ownerID, err := s.resolveOwner(ctx, caller, req.UserID)
	if err != nil {
		return activity.ActivityResponse{}, err
	}

	created, err := s.repo.Create(ctx, activity.Activity{
		UserID:      ownerID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.ParsedDate,
		StartTime:   req.ParsedStart,
		EndTime:     req.ParsedEnd,
		Category:    activity.Category(req.Category),
	})
	if err != nil {
		return activity.ActivityResponse{}, fmt.Errorf("failed to create activity: %w", err)
	}

	// Re-read to populate the owner join fields.
	withUser, err := s.repo.GetByID(ctx, created.ID)
	if err != nil {
		return toResponse(created), nil
	}
	return toResponse(withUser), nil
}

// Update implements activity.ActivityService.
func (s *ActivityServiceImpl) Update(ctx context.Context, req activity.UpdateActivityRequest) (activity.ActivityResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return activity.ActivityResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return activity.ActivityResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.ActivityResponse{}, activity.ErrActivityNotFound
		}
		return activity.ActivityResponse{}, fmt.Errorf("failed to get activity: %w", err)
	}

	if caller.Role == user.RoleEmployee && existing.UserID != caller.UserID {
		return activity.ActivityResponse{}, user.ErrForbiddenScope
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.ParsedDate != nil {
		existing.Date = *req.ParsedDate
	}
	if req.ParsedStart != nil {
		existing.StartTime = *req.ParsedStart
	}
	if req.ParsedEnd != nil {
		existing.EndTime = *req.ParsedEnd
	}
	if req.UserID != nil && *req.UserID != existing.UserID {
		ownerID, err := s.resolveOwner(ctx, caller, *req.UserID)
		if err != nil {
			return activity.ActivityResponse{}, err
		}
		existing.UserID = ownerID
	}

	// Partial updates can cross the fields; recheck the pair.
	if !existing.EndTime.After(existing.StartTime) {
		return activity.ActivityResponse{}, activity.ErrEndBeforeStart
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return activity.ActivityResponse{}, fmt.Errorf("failed to update activity: %w", err)
	}

	withUser, err := s.repo.GetByID(ctx, existing.ID)
	if err != nil {
		return toResponse(existing), nil
	}
	return toResponse(withUser), nil
}

// Delete implements activity.ActivityService.
func (s *ActivityServiceImpl) Delete(ctx context.Context, id string) error {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.ErrActivityNotFound
		}
		return fmt.Errorf("failed to get activity: %w", err)
	}

	if caller.Role == user.RoleEmployee && existing.UserID != caller.UserID {
		return user.ErrForbiddenScope
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.ErrActivityNotFound
		}
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// ExportICS implements activity.ActivityService.
func (s *ActivityServiceImpl) ExportICS(ctx context.Context, filter activity.ListFilter) (string, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return "", err
	}
	if err := filter.Validate(); err != nil {
		return "", err
	}

	rng, err := daterange.Parse(filter.From, filter.To)
	if err != nil {
		return "", err
	}

	targetID, err := user.ResolveAccessScope(caller.UserID, caller.Role, filter.UserID)
	if err != nil {
		return "", err
	}

	items, err := s.repo.ListRange(ctx, targetID, rng.From, rng.ToExclusive)
	if err != nil {
		return "", fmt.Errorf("failed to list activities: %w", err)
	}

	cal := ics.Calendar{
		Name:   "Evidencija",
		ProdID: calendarProdID,
	}
	for _, act := range items {
		ev := ics.Event{
			UID:     fmt.Sprintf("activity-%s@evidencija", act.ID),
			Start:   act.StartTime,
			End:     act.EndTime,
			Summary: act.Name,
		}
		if act.Description != nil {
			ev.Description = *act.Description
		}
		cal.Events = append(cal.Events, ev)
	}

	return cal.Render(s.now()), nil
}
