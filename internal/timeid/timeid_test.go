package timeid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUTC_TruncatesAndConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2026, 3, 1, 10, 30, 45, 500_000_000, loc)

	got := FormatUTC(local)

	assert.Equal(t, "2026-03-01T08:30:45Z", got)
}

func TestParseUTC_RoundTrip(t *testing.T) {
	now := NowUTC()
	s := FormatUTC(now)

	parsed, ok := ParseUTC(s)
	require.True(t, ok)
	assert.True(t, parsed.Equal(now))
}

func TestParseUTC_AcceptsOffsetForm(t *testing.T) {
	parsed, ok := ParseUTC("2026-03-01T10:30:45+02:00")
	require.True(t, ok)
	assert.Equal(t, "2026-03-01T08:30:45Z", FormatUTC(parsed))
}

func TestParseUTC_RejectsEmptyAndGarbage(t *testing.T) {
	for _, in := range []string{"", "  ", "not-a-time", "2026-13-99T99:99:99Z"} {
		_, ok := ParseUTC(in)
		assert.False(t, ok, "expected ParseUTC(%q) to fail", in)
	}
}

func TestExpiry_AddsLeaseSeconds(t *testing.T) {
	before := NowUTC()
	got := Expiry(60)
	assert.True(t, got.Sub(before) >= 59*time.Second)
	assert.True(t, got.Sub(before) <= 61*time.Second)
}

func TestNewID_LooksLikeUUIDv4(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, NewID())
}
