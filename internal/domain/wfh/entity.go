package wfh

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Request is one work-from-home request per (user, date). The status moves
// PENDING -> APPROVED or PENDING -> REJECTED exactly once; both are terminal.
type Request struct {
	ID          string
	UserID      string
	Date        time.Time // UTC midnight
	Status      Status
	Reason      *string
	TempMin     *float64
	PrecipSum   *float64
	WindMax     *float64
	WeatherCode *int
	DecidedBy   *string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	UserEmail        *string
	UserFirstName    *string
	UserLastName     *string
	DeciderEmail     *string
	DeciderFirstName *string
	DeciderLastName  *string
}

// Decided reports whether the request has reached a terminal status.
func (r *Request) Decided() bool {
	return r.Status != StatusPending
}

// UpsertOutcome tags what CreateRequest actually did, so callers can tell the
// cases a bare upsert conflates apart.
type UpsertOutcome string

const (
	OutcomeCreated          UpsertOutcome = "CREATED"
	OutcomeRefreshed        UpsertOutcome = "REFRESHED"
	OutcomeUnchangedDecided UpsertOutcome = "UNCHANGED_DECIDED"
)
