package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	out, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapWriteErr(err)
	}
	return out, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id int64, p domain.UserPatch, now time.Time) (domain.User, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET name          = COALESCE($1, name),
		    email         = COALESCE($2, email),
		    password_hash = COALESCE($3, password_hash),
		    updated_at    = $4
		WHERE id = $5
		RETURNING `+userColumns,
		p.Name, p.Email, p.PasswordHash, now, id,
	)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapWriteErr(err)
	}
	return u, nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	return mapRowsAffected(r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id))
}
