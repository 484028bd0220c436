package wfh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/domain/weather"
	"github.com/evidencija/attendance-backend-go/internal/domain/wfh"
	"github.com/evidencija/attendance-backend-go/internal/pkg/daterange"
	"github.com/evidencija/attendance-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
)

type WfhServiceImpl struct {
	repo       wfh.WfhRepository
	weatherSvc weather.WeatherService
	now        func() time.Time
}

func NewWfhService(repo wfh.WfhRepository, weatherSvc weather.WeatherService) wfh.WfhService {
	return &WfhServiceImpl{
		repo:       repo,
		weatherSvc: weatherSvc,
		now:        time.Now,
	}
}

func toResponse(req wfh.Request) wfh.RequestResponse {
	resp := wfh.RequestResponse{
		ID:     req.ID,
		Date:   daterange.FormatDay(req.Date),
		Status: string(req.Status),
		Reason: req.Reason,
		Weather: wfh.WeatherSnapshot{
			TempMin:     req.TempMin,
			PrecipSum:   req.PrecipSum,
			WindMax:     req.WindMax,
			WeatherCode: req.WeatherCode,
		},
		User:      wfh.RequestUser{ID: req.UserID},
		CreatedAt: req.CreatedAt.UTC().Format(time.RFC3339),
	}
	if req.UserEmail != nil {
		resp.User.Email = *req.UserEmail
	}
	if req.UserFirstName != nil {
		resp.User.FirstName = *req.UserFirstName
	}
	if req.UserLastName != nil {
		resp.User.LastName = *req.UserLastName
	}
	if req.DecidedBy != nil {
		decider := &wfh.RequestUser{ID: *req.DecidedBy}
		if req.DeciderEmail != nil {
			decider.Email = *req.DeciderEmail
		}
		if req.DeciderFirstName != nil {
			decider.FirstName = *req.DeciderFirstName
		}
		if req.DeciderLastName != nil {
			decider.LastName = *req.DeciderLastName
		}
		resp.DecidedBy = decider
	}
	if req.DecidedAt != nil {
		formatted := req.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &formatted
	}
	return resp
}

// Create implements wfh.WfhService. A request only goes through when the
// day's synced weather qualifies as bad. Re-filing the same day refreshes a
// pending request and leaves a decided one untouched.
func (s *WfhServiceImpl) Create(ctx context.Context, req wfh.CreateRequest) (wfh.CreateResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return wfh.CreateResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return wfh.CreateResponse{}, err
	}

	day := daterange.Truncate(s.now())
	if req.Date != "" {
		day, err = daterange.ParseDay(req.Date)
		if err != nil {
			return wfh.CreateResponse{}, err
		}
	}

	snapshot, err := s.weatherSvc.SnapshotFor(ctx, day)
	if err != nil {
		return wfh.CreateResponse{}, err
	}
	if !weather.IsBadWeather(snapshot) {
		return wfh.CreateResponse{}, wfh.ErrWeatherConditionsFine
	}

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}

	existing, err := s.repo.GetByUserAndDate(ctx, caller.UserID, day)
	if err != nil {
		return wfh.CreateResponse{}, fmt.Errorf("failed to check existing request: %w", err)
	}

	if existing != nil {
		if existing.Decided() {
			// Terminal rows keep their content; the caller just gets it back.
			full, err := s.repo.GetByID(ctx, existing.ID)
			if err != nil {
				return wfh.CreateResponse{}, fmt.Errorf("failed to get request: %w", err)
			}
			return wfh.CreateResponse{
				Outcome: string(wfh.OutcomeUnchangedDecided),
				Request: toResponse(full),
			}, nil
		}

		existing.Reason = reason
		existing.TempMin = snapshot.TempMin
		existing.PrecipSum = snapshot.PrecipSum
		existing.WindMax = snapshot.WindMax
		existing.WeatherCode = snapshot.WeatherCode
		if err := s.repo.UpdatePending(ctx, *existing); err != nil {
			return wfh.CreateResponse{}, fmt.Errorf("failed to refresh request: %w", err)
		}

		full, err := s.repo.GetByID(ctx, existing.ID)
		if err != nil {
			return wfh.CreateResponse{}, fmt.Errorf("failed to get request: %w", err)
		}
		return wfh.CreateResponse{
			Outcome: string(wfh.OutcomeRefreshed),
			Request: toResponse(full),
		}, nil
	}

	created, err := s.repo.Create(ctx, wfh.Request{
		UserID:      caller.UserID,
		Date:        day,
		Status:      wfh.StatusPending,
		Reason:      reason,
		TempMin:     snapshot.TempMin,
		PrecipSum:   snapshot.PrecipSum,
		WindMax:     snapshot.WindMax,
		WeatherCode: snapshot.WeatherCode,
	})
	if err != nil {
		return wfh.CreateResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	full, err := s.repo.GetByID(ctx, created.ID)
	if err != nil {
		full = created
	}
	return wfh.CreateResponse{
		Outcome: string(wfh.OutcomeCreated),
		Request: toResponse(full),
	}, nil
}

// Decide implements wfh.WfhService.
func (s *WfhServiceImpl) Decide(ctx context.Context, id string, req wfh.DecideRequest) (wfh.RequestResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return wfh.RequestResponse{}, err
	}
	if caller.Role != user.RoleManager && caller.Role != user.RoleAdmin {
		return wfh.RequestResponse{}, user.ErrManagerAccessRequired
	}
	if err := req.Validate(); err != nil {
		return wfh.RequestResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wfh.RequestResponse{}, wfh.ErrRequestNotFound
		}
		return wfh.RequestResponse{}, fmt.Errorf("failed to get request: %w", err)
	}
	if existing.Decided() {
		return wfh.RequestResponse{}, wfh.ErrAlreadyDecided
	}

	decidedAt := s.now().UTC()
	err = s.repo.Decide(ctx, id, wfh.Status(req.Status), caller.UserID, decidedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race: someone else decided between the read and the update.
			return wfh.RequestResponse{}, wfh.ErrAlreadyDecided
		}
		return wfh.RequestResponse{}, fmt.Errorf("failed to decide request: %w", err)
	}

	decided, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return wfh.RequestResponse{}, fmt.Errorf("failed to get request: %w", err)
	}
	return toResponse(decided), nil
}

// List implements wfh.WfhService.
func (s *WfhServiceImpl) List(ctx context.Context, filter wfh.ListFilter) ([]wfh.RequestResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	targetID := filter.UserID
	if targetID == "ALL" {
		if caller.Role != user.RoleManager && caller.Role != user.RoleAdmin {
			return nil, user.ErrManagerAccessRequired
		}
		targetID = ""
	} else {
		targetID, err = user.ResolveAccessScope(caller.UserID, caller.Role, targetID)
		if err != nil {
			return nil, err
		}
	}

	var from, toExclusive *time.Time
	if filter.From != "" && filter.To != "" {
		rng, err := daterange.Parse(filter.From, filter.To)
		if err != nil {
			return nil, err
		}
		from, toExclusive = &rng.From, &rng.ToExclusive
	}

	items, err := s.repo.List(ctx, targetID, filter.Status, from, toExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	responses := make([]wfh.RequestResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toResponse(item))
	}
	return responses, nil
}
