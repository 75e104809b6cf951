package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure independently of the transport.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindAlreadyExists
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// Entity names the record an error is about.
type Entity string

const (
	EntityUser Entity = "user"
	EntityTodo Entity = "todo"
)

// Error is a tagged domain failure. Message is safe to show to callers;
// Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Entity  Entity
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind, and on Entity when the target names one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Entity == "" || t.Entity == e.Entity
}

var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrAlreadyExists   = &Error{Kind: KindAlreadyExists}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrInternal        = &Error{Kind: KindInternal}

	ErrUserNotFound = &Error{Kind: KindNotFound, Entity: EntityUser}
	ErrTodoNotFound = &Error{Kind: KindNotFound, Entity: EntityTodo}
)

// KindOf reports the kind of err. Errors that are not a *Error are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the caller safe message of err, or fallback when err
// carries none.
func MessageOf(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) && de.Message != "" && de.Kind != KindInternal {
		return de.Message
	}
	return fallback
}

func InvalidArgument(entity Entity, msg string) error {
	return &Error{Kind: KindInvalidArgument, Entity: entity, Message: msg}
}

func NotFound(entity Entity, msg string) error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: msg}
}

func AlreadyExists(entity Entity, msg string, cause error) error {
	return &Error{Kind: KindAlreadyExists, Entity: entity, Message: msg, Err: cause}
}

func Unauthenticated(msg string) error {
	return &Error{Kind: KindUnauthenticated, Entity: EntityUser, Message: msg}
}

// Internal wraps an unexpected failure. The message stays generic.
func Internal(entity Entity, msg string, cause error) error {
	return &Error{Kind: KindInternal, Entity: entity, Message: msg, Err: cause}
}
