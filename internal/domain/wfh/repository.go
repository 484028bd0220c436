package wfh

import (
	"context"
	"time"
)

// WfhRepository defines data access for work-from-home requests. The
// (user_id, date) pair is unique in storage.
type WfhRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	// GetByUserAndDate returns nil (not an error) when no row exists for the day.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	// UpdatePending refreshes the reason and weather snapshot of a row that is
	// still PENDING.
	UpdatePending(ctx context.Context, req Request) error

	// Decide moves a PENDING row to a terminal status, recording the decider.
	Decide(ctx context.Context, id string, status Status, deciderID string, decidedAt time.Time) error

	// List retrieves rows with user and decider join fields, newest date first.
	// Empty userID means all users.
	List(ctx context.Context, userID, status string, from, toExclusive *time.Time) ([]Request, error)
}

// WfhService defines business logic for the work-from-home workflow.
type WfhService interface {
	// Create files or refreshes a request for a day, gated on that day's synced
	// weather being bad enough to qualify.
	Create(ctx context.Context, req CreateRequest) (CreateResponse, error)

	// Decide approves or rejects a pending request.
	Decide(ctx context.Context, id string, req DecideRequest) (RequestResponse, error)

	// List returns requests visible to the caller.
	List(ctx context.Context, filter ListFilter) ([]RequestResponse, error)
}
