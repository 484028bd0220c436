package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// newID generates a time-ordered UUIDv7 string for new rows.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

const userColumns = `id, first_name, last_name, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	if newUser.ID == "" {
		newUser.ID = newID()
	}

	return scanUser(q.QueryRow(ctx, query,
		newUser.ID,
		newUser.FirstName,
		newUser.LastName,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.IsActive,
	))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUser(q.QueryRow(ctx, query, email))
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, role = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := q.Exec(ctx, query, u.FirstName, u.LastName, u.Email, u.Role, u.IsActive, u.ID)
	return err
}

// UpdatePasswordHash implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := q.Exec(ctx, query, passwordHash, id)
	return err
}

// TouchLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) TouchLastLogin(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET last_login_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	_, err := q.Exec(ctx, query, id)
	return err
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + userColumns + ` FROM users WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if !filter.IncludeInactive {
		sb.WriteString(` AND is_active = TRUE`)
	}
	if filter.Query != "" {
		sb.WriteString(fmt.Sprintf(
			` AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)`,
			argPos, argPos, argPos,
		))
		args = append(args, "%"+filter.Query+"%")
		argPos++
	}

	sb.WriteString(` ORDER BY role, last_name, first_name`)

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
