package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
)

const (
	msgUserNotFound    = "User not found"
	msgEmailTaken      = "User with this email already exists"
	msgUserCreateFail  = "Failed to create user"
	msgUserUpdateFail  = "Failed to update user"
	msgUserDeleteFail  = "Failed to delete user"
	msgUserHashFailure = "Failed to hash password"
)

type UserService struct {
	Store  store.Store
	Hasher cryptox.Hasher
}

// CreateUser hashes the password and inserts the user. A taken email is
// reported by the store's unique constraint as AlreadyExists.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (domain.User, error) {
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.Internal(domain.EntityUser, msgUserHashFailure, err)
	}

	ts := now()
	u, err := s.Store.Users().CreateUser(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	})
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, domain.AlreadyExists(domain.EntityUser, msgEmailTaken, err)
	default:
		return domain.User{}, domain.Internal(domain.EntityUser, msgUserCreateFail, err)
	}
}

// GetUserByID reports a missing user through the bool, not the error.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (domain.User, bool, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	switch {
	case err == nil:
		return u, true, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, false, nil
	default:
		return domain.User{}, false, err
	}
}

// GetUserByEmail returns the raw record, password hash included. Only
// authentication should call it.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return u, true, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, false, nil
	default:
		return domain.User{}, false, err
	}
}

// UpdateUser applies p, rehashing the password when one is given.
func (s *UserService) UpdateUser(ctx context.Context, id int64, p domain.UserPatch) (domain.User, error) {
	p.PasswordHash = nil
	if p.Password != nil {
		hash, err := s.Hasher.Hash(*p.Password)
		if err != nil {
			return domain.User{}, domain.Internal(domain.EntityUser, msgUserHashFailure, err)
		}
		p.PasswordHash = &hash
		p.Password = nil
	}

	u, err := s.Store.Users().UpdateUser(ctx, id, p, now())
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, domain.NotFound(domain.EntityUser, msgUserNotFound)
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, domain.AlreadyExists(domain.EntityUser, msgEmailTaken, err)
	default:
		return domain.User{}, domain.Internal(domain.EntityUser, msgUserUpdateFail, err)
	}
}

// DeleteUser removes the user and, through the cascade, their todos.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	err := s.Store.Users().DeleteUser(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return domain.NotFound(domain.EntityUser, msgUserNotFound)
	default:
		return domain.Internal(domain.EntityUser, msgUserDeleteFail, err)
	}
}
