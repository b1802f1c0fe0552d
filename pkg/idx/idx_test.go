package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidIDs(t *testing.T) {
	seen := make(map[ID]struct{})
	for range 100 {
		id := New()
		require.False(t, id.IsZero())

		_, err := Parse(id.String())
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "IDs must be unique")
		seen[id] = struct{}{}
	}
}

func TestNewIsMonotonicWithinRun(t *testing.T) {
	prev := New()
	for range 50 {
		next := New()
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestParse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := New()
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := Parse("")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Parse("not-a-ulid")
		require.ErrorIs(t, err, ErrInvalid)
	})
}
