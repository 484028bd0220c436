package postgresql

import (
	"context"
	"time"

	"github.com/evidencija/attendance-backend-go/internal/domain/activity"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

const activityColumns = `a.id, a.user_id, a.name, a.description, a.date, a.start_time, a.end_time, a.category, a.created_at, a.updated_at`

func scanActivity(row interface{ Scan(dest ...any) error }, withUser bool) (activity.Activity, error) {
	var act activity.Activity
	dest := []any{
		&act.ID,
		&act.UserID,
		&act.Name,
		&act.Description,
		&act.Date,
		&act.StartTime,
		&act.EndTime,
		&act.Category,
		&act.CreatedAt,
		&act.UpdatedAt,
	}
	if withUser {
		dest = append(dest, &act.UserEmail, &act.UserFirstName, &act.UserLastName)
	}
	err := row.Scan(dest...)
	return act, err
}

// Create implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Create(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activities AS a (id, user_id, name, description, date, start_time, end_time, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + activityColumns

	if act.ID == "" {
		act.ID = newID()
	}

	return scanActivity(q.QueryRow(ctx, query,
		act.ID,
		act.UserID,
		act.Name,
		act.Description,
		act.Date,
		act.StartTime,
		act.EndTime,
		act.Category,
	), false)
}

// GetByID implements activity.ActivityRepository.
func (r *activityRepositoryImpl) GetByID(ctx context.Context, id string) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + activityColumns + `, u.email, u.first_name, u.last_name
		FROM activities a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	return scanActivity(q.QueryRow(ctx, query, id), true)
}

// Update implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Update(ctx context.Context, act activity.Activity) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE activities
		SET user_id = $1, name = $2, description = $3, date = $4,
		    start_time = $5, end_time = $6, category = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := q.Exec(ctx, query,
		act.UserID, act.Name, act.Description, act.Date,
		act.StartTime, act.EndTime, act.Category, act.ID,
	)
	return err
}

// Delete implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListRange implements activity.ActivityRepository.
func (r *activityRepositoryImpl) ListRange(ctx context.Context, userID string, from, toExclusive time.Time) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + activityColumns + `, u.email, u.first_name, u.last_name
		FROM activities a
		JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1 AND a.date < $2
	`
	args := []interface{}{from, toExclusive}
	if userID != "" {
		query += ` AND a.user_id = $3`
		args = append(args, userID)
	}
	query += ` ORDER BY a.date, a.start_time`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []activity.Activity
	for rows.Next() {
		act, err := scanActivity(rows, true)
		if err != nil {
			return nil, err
		}
		items = append(items, act)
	}
	return items, rows.Err()
}
