package timezone

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	full, err := ParseClock("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, 9, full.Hour())
	assert.Equal(t, 30, full.Minute())

	short, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, short.Hour())
	assert.Equal(t, 30, short.Minute())

	_, err = ParseClock("half past nine")
	assert.Error(t, err)
}

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", got)

	got, err = NormalizeClock("17:00:00")
	require.NoError(t, err)
	assert.Equal(t, "17:00:00", got)
}

func TestClock12(t *testing.T) {
	got, err := Clock12("09:00:00", "America/Los_Angeles")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", got)

	got, err = Clock12("17:00:00", "America/Los_Angeles")
	require.NoError(t, err)
	assert.Equal(t, "5:00 PM", got)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location("Not/AZone"))
	assert.Equal(t, time.UTC, Location(""))

	la := Location("America/Los_Angeles")
	assert.Equal(t, "America/Los_Angeles", la.String())
}

func TestAt(t *testing.T) {
	at, err := At("2030-06-15", "09:00:00", "America/New_York")
	require.NoError(t, err)

	assert.Equal(t, 2030, at.Year())
	assert.Equal(t, time.June, at.Month())
	assert.Equal(t, 15, at.Day())
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, "America/New_York", at.Location().String())
}

func TestIsUpcoming(t *testing.T) {
	future := time.Now().AddDate(0, 0, 7).Format(DateLayout)
	past := time.Now().AddDate(0, 0, -7).Format(DateLayout)

	assert.True(t, IsUpcoming(future, "09:00:00", "UTC"))
	assert.False(t, IsUpcoming(past, "09:00:00", "UTC"))

	// unparseable rows are dropped, not surfaced
	assert.False(t, IsUpcoming("not-a-date", "09:00:00", "UTC"))
	assert.False(t, IsUpcoming(future, "not-a-time", "UTC"))
}
