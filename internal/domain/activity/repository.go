package activity

import (
	"context"
	"time"
)

// ActivityRepository defines data access methods for activities.
type ActivityRepository interface {
	Create(ctx context.Context, act Activity) (Activity, error)
	GetByID(ctx context.Context, id string) (Activity, error)
	Update(ctx context.Context, act Activity) error
	Delete(ctx context.Context, id string) error

	// ListRange retrieves activities for [from, toExclusive), ascending by
	// date then start time. Empty userID means all users.
	ListRange(ctx context.Context, userID string, from, toExclusive time.Time) ([]Activity, error)
}

// ActivityService defines business logic for activity operations.
type ActivityService interface {
	List(ctx context.Context, filter ListFilter) ([]ActivityResponse, error)
	Create(ctx context.Context, req CreateActivityRequest) (ActivityResponse, error)
	Update(ctx context.Context, req UpdateActivityRequest) (ActivityResponse, error)
	Delete(ctx context.Context, id string) error

	// ExportICS renders a user's activities in a range as an iCalendar document.
	ExportICS(ctx context.Context, filter ListFilter) (string, error)
}
