package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm names a supported password hashing scheme.
type Algorithm string

const (
	Bcrypt   Algorithm = "bcrypt"
	Argon2id Algorithm = "argon2id"
)

// DefaultBcryptCost matches the work factor existing todo accounts were
// hashed with.
const DefaultBcryptCost = 10

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

var (
	// ErrMismatch is returned when a password does not match its hash.
	ErrMismatch = errors.New("password does not match")
	// ErrUnknownAlgorithm is returned for hashes or configs naming an
	// unsupported scheme.
	ErrUnknownAlgorithm = errors.New("unknown password hash algorithm")
)

// Hasher produces password hashes. The zero value hashes with bcrypt at
// DefaultBcryptCost.
type Hasher struct {
	Algorithm  Algorithm
	BcryptCost int
}

// NewHasher validates the algorithm name and bcrypt cost.
func NewHasher(algorithm string, bcryptCost int) (Hasher, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(algorithm)))
	if alg == "" {
		alg = Bcrypt
	}
	if alg != Bcrypt && alg != Argon2id {
		return Hasher{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return Hasher{}, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return Hasher{Algorithm: alg, BcryptCost: bcryptCost}, nil
}

// Hash returns an encoded hash of password in the configured scheme.
func (h Hasher) Hash(password string) (string, error) {
	switch h.Algorithm {
	case Argon2id:
		return hashArgon2id(password)
	case Bcrypt, "":
		cost := h.BcryptCost
		if cost == 0 {
			cost = DefaultBcryptCost
		}
		out, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, h.Algorithm)
	}
}

// VerifyPassword checks password against a bcrypt or PHC Argon2id hash,
// picking the scheme from the hash prefix. A wrong password yields
// ErrMismatch; malformed hashes yield other errors.
func VerifyPassword(password, encodedHash string) error {
	switch {
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		return verifyArgon2id(password, encodedHash)
	case strings.HasPrefix(encodedHash, "$2a$"),
		strings.HasPrefix(encodedHash, "$2b$"),
		strings.HasPrefix(encodedHash, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	default:
		return ErrUnknownAlgorithm
	}
}

func hashArgon2id(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyArgon2id(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}

	computed := argon2.IDKey(
		[]byte(password),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115
	)
	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrMismatch
}
