package admin

import "context"

// ActionRepository records audit rows. Recording is best effort inside the
// mutating transaction; callers never read these rows on hot paths.
type ActionRepository interface {
	Record(ctx context.Context, action Action) error
}
