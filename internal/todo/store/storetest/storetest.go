// Package storetest holds the behaviour every store driver must share.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/stretchr/testify/require"
)

// NewStoreFunc returns an empty, migrated store. It owns cleanup.
type NewStoreFunc func(t *testing.T) store.Store

// Run exercises a driver against the store contract.
func Run(t *testing.T, newStore NewStoreFunc) {
	t.Run("Users/CreateAndGet", func(t *testing.T) { testUsersCreateAndGet(t, newStore) })
	t.Run("Users/DuplicateEmail", func(t *testing.T) { testUsersDuplicateEmail(t, newStore) })
	t.Run("Users/UpdatePartial", func(t *testing.T) { testUsersUpdatePartial(t, newStore) })
	t.Run("Users/DeleteCascades", func(t *testing.T) { testUsersDeleteCascades(t, newStore) })
	t.Run("Todos/CRUD", func(t *testing.T) { testTodosCRUD(t, newStore) })
	t.Run("Todos/ListByUser", func(t *testing.T) { testTodosListByUser(t, newStore) })
	t.Run("Todos/UnknownUserViolatesForeignKey", func(t *testing.T) { testTodosUnknownUserViolatesForeignKey(t, newStore) })
	t.Run("WithTx", func(t *testing.T) { testWithTx(t, newStore) })
}

func ptr[T any](v T) *T { return &v }

func createUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	u, err := s.Users().CreateUser(context.Background(), domain.User{
		Name:         "Ana",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return u
}

func createTodo(t *testing.T, s store.Store, userID int64, title string) domain.Todo {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	td, err := s.Todos().CreateTodo(context.Background(), domain.Todo{
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return td
}

func testUsersCreateAndGet(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)
	ctx := context.Background()

	u := createUser(t, s, "ana@x.com")
	require.Positive(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())
	require.Equal(t, u.CreatedAt, u.UpdatedAt)

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u, got)

	got, err = s.Users().GetUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "$2a$10$hash", got.PasswordHash)

	_, err = s.Users().GetUserByID(ctx, 9999)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testUsersDuplicateEmail(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)
	ctx := context.Background()

	first := createUser(t, s, "ana@x.com")

	now := time.Now().UTC().Truncate(time.Millisecond)
	_, err := s.Users().CreateUser(ctx, domain.User{
		Name:         "Other",
		Email:        "ana@x.com",
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := s.Users().GetUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, first, got)
}

func testUsersUpdatePartial(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)
	ctx := context.Background()

	u := createUser(t, s, "ana@x.com")
	later := u.UpdatedAt.Add(time.Minute)

	got, err := s.Users().UpdateUser(ctx, u.ID, domain.UserPatch{Name: ptr("Ana Maria")}, later)
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", got.Name)
	require.Equal(t, "ana@x.com", got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, u.CreatedAt, got.CreatedAt)
	require.Equal(t, later, got.UpdatedAt)

	_, err = s.Users().UpdateUser(ctx, 9999, domain.UserPatch{Name: ptr("x")}, later)
	require.ErrorIs(t, err, store.ErrNotFound)

	other := createUser(t, s, "bob@x.com")
	_, err = s.Users().UpdateUser(ctx, other.ID, domain.UserPatch{Email: ptr("ana@x.com")}, later)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testUsersDeleteCascades(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)
	ctx := context.Background()

	u := createUser(t, s, "ana@x.com")
	td := createTodo(t, s, u.ID, "Buy milk")

	require.NoError(t, s.Users().DeleteUser(ctx, u.ID))

	_, err := s.Todos().GetTodoByID(ctx, td.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Users().DeleteUser(ctx, u.ID), store.ErrNotFound)
}

func testTodosCRUD(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)
	ctx := context.Background()

	u := createUser(t, s, "ana@x.com")
	td := createTodo(t, s, u.ID, "Buy milk")
	require.Positive(t, td.ID)
	require.Nil(t, td.Description)
	require.False(t, td.Completed)

	got, err := s.Todos().GetTodoByID(ctx, td.ID)
	require.NoError(t, err)
	require.Equal(t, td, got)

	later := td.UpdatedAt.Add(time.Second)
	updated, err := s.Todos().UpdateTodo(ctx, td.ID, domain.TodoPatch{
		Description: ptr("2L"),
		Completed:   ptr(true),
	}, later)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", updated.Title)
	require.Equal(t, "2L", *updated.Description)
	require.True(t, updated.Completed)
	require.Equal(t, later, updated.UpdatedAt)

	// Explicit false must be applied, not treated as absent
	updated, err = s.Todos().UpdateTodo(ctx, td.ID, domain.TodoPatch{Completed: ptr(false)}, later)
	require.NoError(t, err)
	require.False(t, updated.Completed)

	require.NoError(t, s.Todos().DeleteTodo(ctx, td.ID))
	require.ErrorIs(t, s.Todos().DeleteTodo(ctx, td.ID), store.ErrNotFound)

	_, err = s.Todos().UpdateTodo(ctx, td.ID, domain.TodoPatch{Title: ptr("x")}, later)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testTodosListByUser(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)
	ctx := context.Background()

	ana := createUser(t, s, "ana@x.com")
	bob := createUser(t, s, "bob@x.com")

	list, err := s.Todos().ListTodosByUser(ctx, ana.ID)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	a1 := createTodo(t, s, ana.ID, "one")
	createTodo(t, s, bob.ID, "bob's")
	a2 := createTodo(t, s, ana.ID, "two")

	list, err = s.Todos().ListTodosByUser(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, a1.ID, list[0].ID)
	require.Equal(t, a2.ID, list[1].ID)

	n, err := s.Todos().DeleteTodosByUser(ctx, ana.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	list, err = s.Todos().ListTodosByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func testTodosUnknownUserViolatesForeignKey(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	_, err := s.Todos().CreateTodo(context.Background(), domain.Todo{
		UserID:    42,
		Title:     "orphan",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrAlreadyExists)
}

func testWithTx(t *testing.T, newStore NewStoreFunc) {
	s := newStore(t)
	ctx := context.Background()
	u := createUser(t, s, "ana@x.com")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		createTodo(t, tx, u.ID, "rolled back")
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Todos().ListTodosByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		createTodo(t, tx, u.ID, "kept")
		return nil
	})
	require.NoError(t, err)

	list, err = s.Todos().ListTodosByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
