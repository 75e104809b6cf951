package idx_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := idx.New()
	b := idx.New()

	_, err := ulid.ParseStrict(a)
	require.NoError(t, err)

	// Same millisecond still sorts in generation order
	require.Less(t, a, b)
}

func TestFromHeader(t *testing.T) {
	t.Run("keeps caller id", func(t *testing.T) {
		require.Equal(t, "abc-123", idx.FromHeader("abc-123"))
	})

	t.Run("generates when empty", func(t *testing.T) {
		got := idx.FromHeader("  ")
		_, err := ulid.ParseStrict(got)
		require.NoError(t, err)
	})

	t.Run("generates when unusable", func(t *testing.T) {
		got := idx.FromHeader(strings.Repeat("x", 200))
		require.Len(t, got, 26)

		got = idx.FromHeader("has space")
		require.Len(t, got, 26)
	})
}
