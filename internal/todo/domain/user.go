package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt or argon2id encoded
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch holds the fields of a partial user update. Nil means unchanged.
// Password is plaintext here; the service hashes it into PasswordHash
// before it reaches the store.
type UserPatch struct {
	Name         *string
	Email        *string
	Password     *string
	PasswordHash *string
}
