package wfh

import "errors"

var (
	ErrRequestNotFound       = errors.New("work-from-home request not found")
	ErrAlreadyDecided        = errors.New("work-from-home request has already been decided")
	ErrWeatherConditionsFine = errors.New("weather conditions do not qualify for work-from-home")
	ErrInvalidDecision       = errors.New("decision must be APPROVED or REJECTED")
)
