package activity

import "errors"

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrEndBeforeStart     = errors.New("end_time must be after start_time")
	ErrTargetUserInactive = errors.New("target user not found or inactive")
)
