package admin

import "time"

// Action is one audit row recording an administrative mutation: who did what
// to whom. Detail is a free-form JSON blob describing the change.
type Action struct {
	ID         string
	ActorID    string
	Action     string
	TargetUser *string
	Detail     []byte
	CreatedAt  time.Time
}

const (
	ActionUserCreate     = "USER_CREATE"
	ActionUserUpdate     = "USER_UPDATE"
	ActionUserDeactivate = "USER_DEACTIVATE"
	ActionPasswordReset  = "PASSWORD_RESET"
	ActionWfhDecide      = "WFH_DECIDE"
	ActionHolidaySync    = "HOLIDAY_SYNC"
)
