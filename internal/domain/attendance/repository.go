package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance rows.
// The (user_id, date) pair is unique in storage; concurrent check-ins for the
// same day resolve through that constraint, not application locking.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate returns nil (not an error) when no row exists for the day.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error

	// ListRange retrieves stored rows for [from, toExclusive), ascending by date.
	ListRange(ctx context.Context, userID string, from, toExclusive time.Time) ([]Attendance, error)

	// ListRangeAll retrieves stored rows for every user in [from, toExclusive).
	ListRangeAll(ctx context.Context, from, toExclusive time.Time) ([]Attendance, error)
}

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records the day's first check-in, classifying PRESENT vs LATE
	// from the configured local wall clock.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the day's open check-in and stores the rounded work duration.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetRange returns a gap-filled day sequence for the target user.
	GetRange(ctx context.Context, filter RangeFilter) (RangeResponse, error)

	// GetStats aggregates stored rows by status and month.
	GetStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
}
