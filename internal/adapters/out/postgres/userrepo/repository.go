// Package userrepo reads users and their permission documents.
package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

type userRow struct {
	Email       string `db:"email"`
	Name        string `db:"name"`
	Role        string `db:"role"`
	Permissions string `db:"permissions"`
	IsAdmin     string `db:"is_admin"`
}

// SqlxUserRepository implements ports.UserRepository.
type SqlxUserRepository struct {
	db *sqlx.DB
}

func NewSqlxUserRepository(db *sqlx.DB) *SqlxUserRepository {
	return &SqlxUserRepository{db: db}
}

// GetByEmail matches the email case-insensitively.
func (r *SqlxUserRepository) GetByEmail(ctx context.Context, email string) (access.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		SELECT email, name, role, permissions, is_admin
		FROM users
		WHERE LOWER(email) = LOWER($1)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return access.User{}, errs.NewObjectNotFoundError("user", email)
	}
	if err != nil {
		return access.User{}, err
	}

	return access.NewUser(row.Email, row.Name, row.Role, []byte(row.Permissions), row.IsAdmin)
}
