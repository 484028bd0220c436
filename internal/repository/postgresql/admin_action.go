package postgresql

import (
	"context"

	"github.com/evidencija/attendance-backend-go/internal/domain/admin"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
)

type adminActionRepositoryImpl struct {
	db *database.DB
}

func NewAdminActionRepository(db *database.DB) admin.ActionRepository {
	return &adminActionRepositoryImpl{db: db}
}

// Record implements admin.ActionRepository.
func (r *adminActionRepositoryImpl) Record(ctx context.Context, action admin.Action) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admin_actions (id, actor_id, action, target_user, detail)
		VALUES ($1, $2, $3, $4, $5)
	`

	if action.ID == "" {
		action.ID = newID()
	}

	_, err := q.Exec(ctx, query,
		action.ID, action.ActorID, action.Action, action.TargetUser, action.Detail,
	)
	return err
}
