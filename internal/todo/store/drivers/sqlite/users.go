package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	row, err := r.q.CreateUser(ctx, gen.CreateUserParams{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    toMillis(u.CreatedAt),
		UpdatedAt:    toMillis(u.UpdatedAt),
	})
	if err != nil {
		return domain.User{}, mapWriteErr(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, id int64, p domain.UserPatch, now time.Time) (domain.User, error) {
	row, err := r.q.UpdateUser(ctx, gen.UpdateUserParams{
		Name:         mapOptionalString(p.Name),
		Email:        mapOptionalString(p.Email),
		PasswordHash: mapOptionalString(p.PasswordHash),
		UpdatedAt:    toMillis(now),
		ID:           id,
	})
	if err != nil {
		return domain.User{}, mapWriteErr(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	return mapRowsAffected(r.q.DeleteUser(ctx, id))
}
