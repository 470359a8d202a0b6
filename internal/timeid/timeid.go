// Package timeid provides the UTC clock and identifier primitives shared by
// every coordination record. All timestamps in the state directory are
// ISO-8601 UTC with trailing Z and second precision; this package is the
// only place that formats or parses them.
package timeid

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// layout is the exact wire format: second precision, trailing Z, UTC only.
const layout = "2006-01-02T15:04:05Z"

// NowUTC returns the current instant truncated to whole seconds, in UTC.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatUTC renders t in the wire layout. t is converted to UTC first so
// callers never need to remember to do it themselves.
func FormatUTC(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(layout)
}

// NowUTCString is a convenience for FormatUTC(NowUTC()).
func NowUTCString() string {
	return FormatUTC(NowUTC())
}

// ParseUTC parses an ISO-8601 timestamp, accepting either a trailing Z or an
// explicit numeric offset, and normalizes the result to UTC. The second
// return value is false if the string is empty or unparseable.
func ParseUTC(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(layout, value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// Expiry returns the UTC instant leaseSeconds in the future.
func Expiry(leaseSeconds int) time.Time {
	return NowUTC().Add(time.Duration(leaseSeconds) * time.Second)
}

// NewID mints a UUIDv4 string for use as a request id.
func NewID() string {
	return uuid.New().String()
}
