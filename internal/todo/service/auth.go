package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgLoginFail          = "Failed to log in"
	msgTokenFail          = "Failed to issue token"
)

type AuthService struct {
	Users  *UserService
	Tokens TokenIssuer
}

// Signup creates the account and issues a token for it.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (domain.User, string, error) {
	u, err := s.Users.CreateUser(ctx, name, email, password)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return domain.User{}, "", domain.Internal(domain.EntityUser, msgTokenFail, err)
	}

	slogx.FromContext(ctx).Info("user signed up", slog.Int64("user_id", u.ID))
	return u, token, nil
}

// Login checks the credentials. An unknown email and a wrong password fail
// with the same Unauthenticated error.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	u, ok, err := s.Users.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", domain.Internal(domain.EntityUser, msgLoginFail, err)
	}
	if !ok {
		l.Info("login failed", slog.String("reason", "unknown_email"))
		return domain.User{}, "", domain.Unauthenticated(msgInvalidCredentials)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Warn("stored password hash unusable", slog.Int64("user_id", u.ID), slog.Any("error", err))
		}
		l.Info("login failed", slog.String("reason", "bad_password"), slog.Int64("user_id", u.ID))
		return domain.User{}, "", domain.Unauthenticated(msgInvalidCredentials)
	}

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return domain.User{}, "", domain.Internal(domain.EntityUser, msgTokenFail, err)
	}

	l.Info("login succeeded", slog.Int64("user_id", u.ID))
	return u, token, nil
}

// Signout acknowledges the request. Tokens are stateless, so there is
// nothing to revoke; a recognised token only adds the user to the log line.
func (s *AuthService) Signout(ctx context.Context, token string) {
	l := slogx.FromContext(ctx)
	if id, ok := s.Tokens.UserID(token); ok {
		l.Info("user signed out", slog.Int64("user_id", id))
		return
	}
	l.Info("user signed out")
}
