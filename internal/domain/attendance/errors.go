package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out conflicts
	ErrAlreadyCheckedIn  = errors.New("already checked in for this day")
	ErrNotCheckedIn      = errors.New("no check-in recorded for this day")
	ErrAlreadyCheckedOut = errors.New("already checked out for this day")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
