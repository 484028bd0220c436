package user

// ResolveAccessScope decides which user's records a caller may read or target.
// EMPLOYEE callers are always pinned to their own records; a non-empty requested
// id that differs from their own is a scope violation. MANAGER and ADMIN may
// target any user, defaulting to themselves when no id is requested.
func ResolveAccessScope(callerID string, role Role, requestedUserID string) (string, error) {
	switch role {
	case RoleAdmin, RoleManager:
		if requestedUserID != "" {
			return requestedUserID, nil
		}
		return callerID, nil
	case RoleEmployee:
		if requestedUserID != "" && requestedUserID != callerID {
			return "", ErrForbiddenScope
		}
		return callerID, nil
	default:
		return "", ErrInsufficientPermissions
	}
}
