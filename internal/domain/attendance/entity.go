package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
)

// Attendance is one stored row per (user, UTC calendar day). Days without a row
// are not absences in storage; they are synthesized as ABSENT at read time only.
type Attendance struct {
	ID               string
	UserID           string
	Date             time.Time // UTC midnight, day granularity
	StartTime        *time.Time
	EndTime          *time.Time
	TotalWorkMinutes *int
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
