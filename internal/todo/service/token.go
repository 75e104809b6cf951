package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
)

// TokenIssuer hands out the token returned by signup and login.
type TokenIssuer interface {
	Issue(u domain.User) (string, error)

	// UserID recovers the user a token was issued to, when the token is one
	// of ours.
	UserID(token string) (int64, bool)
}

// PlaceholderIssuer produces "token_<userID>_<unixMillis>". It proves nothing
// about the caller and nothing in the API checks it.
type PlaceholderIssuer struct {
	Now func() time.Time
}

func (p PlaceholderIssuer) Issue(u domain.User) (string, error) {
	clock := p.Now
	if clock == nil {
		clock = time.Now
	}
	return fmt.Sprintf("token_%d_%d", u.ID, clock().UnixMilli()), nil
}

func (p PlaceholderIssuer) UserID(token string) (int64, bool) {
	rest, ok := strings.CutPrefix(token, "token_")
	if !ok {
		return 0, false
	}
	idPart, _, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// JWTIssuer signs HS256 session tokens.
type JWTIssuer struct {
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTIssuer builds an issuer over secret. A zero ttl means jwtx.DefaultTTL.
func NewJWTIssuer(secret []byte, issuer string, ttl time.Duration) (*JWTIssuer, error) {
	if ttl <= 0 {
		ttl = jwtx.DefaultTTL
	}
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{
		Issuer: issuer,
		Leeway: 30 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return &JWTIssuer{
		signer:   signer,
		verifier: verifier,
		issuer:   issuer,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

func (j *JWTIssuer) Issue(u domain.User) (string, error) {
	claims := jwtx.NewClaims(u.ID, u.Email, j.issuer, nil, j.ttl, j.now().UTC())
	return j.signer.Sign(claims)
}

func (j *JWTIssuer) UserID(token string) (int64, bool) {
	claims, err := j.verifier.Verify(token)
	if err != nil {
		return 0, false
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, false
	}
	return id, true
}
