package activity

import "time"

type Category string

const (
	CategoryWork    Category = "WORK"
	CategoryMeeting Category = "MEETING"
	CategoryPTO     Category = "PTO"
)

// Activity is a scheduled event owned by a user. The invariant EndTime > StartTime
// is validated on every create and update.
type Activity struct {
	ID          string
	UserID      string
	Name        string
	Description *string
	Date        time.Time // UTC midnight, day granularity
	StartTime   time.Time
	EndTime     time.Time
	Category    Category
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	UserEmail     *string
	UserFirstName *string
	UserLastName  *string
}
