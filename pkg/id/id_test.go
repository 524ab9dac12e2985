package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: refs from another timestamp would interleave the sequence.
func TestNew_SortableAndUnique(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		ref := New(now)
		assert.Len(t, ref, 26)
		assert.False(t, seen[ref], "duplicate ref %s", ref)
		assert.Greater(t, ref, prev)
		seen[ref] = true
		prev = ref
	}
}

func TestTime_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 34, 56, 789_000_000, time.UTC)
	got, err := Time(New(now))
	require.NoError(t, err)
	assert.True(t, now.Equal(got.UTC()), "got %s", got)
}

func TestTime_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Time("not-a-ulid")
	assert.Error(t, err)
}

func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Short("short"))
	assert.Equal(t, "01HMX3K5", Short("01HMX3K5Z8Q9R2T4V6W8Y0A1B2"))
}
