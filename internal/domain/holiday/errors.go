package holiday

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("holiday provider is unavailable")
	ErrInvalidYear         = errors.New("year must be a four digit year")
)
