package plasm

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	custom_error "github.com/codeodor/plasm/pkg/errors"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected time.Time
	}{
		{
			name:     "time value passes through",
			value:    testTime(2024, time.March, 1, 8, 15),
			expected: testTime(2024, time.March, 1, 8, 15),
		},
		{
			name:     "rfc3339",
			value:    "2024-03-01T08:15:00Z",
			expected: testTime(2024, time.March, 1, 8, 15),
		},
		{
			name:     "date and time",
			value:    "2024-03-01 08:15:00",
			expected: testTime(2024, time.March, 1, 8, 15),
		},
		{
			name:     "bare date",
			value:    "2024-03-01",
			expected: testTime(2024, time.March, 1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseTimestamp(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(parsed), "expected %v, got %v", tt.expected, parsed)
		})
	}
}

func TestParseTimestampFailure(t *testing.T) {
	var parseErr *custom_error.TimestampParseError

	_, err := ParseTimestamp("yesterday-ish")
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "yesterday-ish", parseErr.Value)

	_, err = ParseTimestamp(42)
	assert.True(t, errors.As(err, &parseErr))
}

func TestBeforeIsExclusive(t *testing.T) {
	gdb := newTestDB(t)

	// Rex was created at exactly this instant and must not match.
	ds, err := Before(gdb.From("pets"), "created_at", "2024-02-15 12:30:00")
	require.NoError(t, err)

	assert.Equal(t, []int{1}, petIDs(t, ds))
}

func TestAtOrBeforeIsInclusive(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := AtOrBefore(gdb.From("pets"), "created_at", "2024-02-15 12:30:00")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, petIDs(t, ds))
}

func TestAfterIsExclusive(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := After(gdb.From("pets"), "created_at", testTime(2024, time.March, 1, 8, 15))
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5}, petIDs(t, ds))
}

func TestAtOrAfterIsInclusive(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := AtOrAfter(gdb.From("pets"), "created_at", testTime(2024, time.March, 1, 8, 15))
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 5}, petIDs(t, ds))
}

func TestBetweenIsInclusiveBothEnds(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := Between(gdb.From("pets"), "created_at", "2024-02-15 12:30:00", "2024-03-20 17:45:00")
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4}, petIDs(t, ds))
}

func TestTimeRangeSurfacesParseError(t *testing.T) {
	gdb := newTestDB(t)

	ds, err := Before(gdb.From("pets"), "created_at", "not a timestamp")
	assert.Nil(t, ds)

	var parseErr *custom_error.TimestampParseError
	assert.True(t, errors.As(err, &parseErr))
}
