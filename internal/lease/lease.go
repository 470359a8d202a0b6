// Package lease implements the expiry check and priority ranking shared by
// the request queue, the claim registry, the build lock and the garbage
// collector. Nothing
// in this package touches the filesystem; it operates purely on the fields
// already loaded from a record.
package lease

import (
	"strconv"
	"strings"

	"github.com/agentops/tri-ops/internal/timeid"
)

// tierValues maps the named priority lexicon to its numeric rank. Absent or
// unrecognised values resolve to 0, matching the original tri_ops mapping.
var tierValues = map[string]int{
	"tier0":  100,
	"tier1":  80,
	"tier2":  60,
	"high":   50,
	"normal": 10,
	"medium": 10,
	"task":   5,
	"low":    0,
}

// PriorityValue resolves a dynamically typed priority (integer, float,
// numeric string, or named tier) to its numeric rank. Unrecognised strings
// and nil both evaluate to 0.
func PriorityValue(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		text := strings.ToLower(strings.TrimSpace(t))
		if n, err := strconv.Atoi(text); err == nil {
			return n
		}
		return tierValues[text]
	default:
		return 0
	}
}

// IsExpired reports whether expiresUTC is absent, unparseable, or strictly
// before the current instant. A lease expiring exactly "now" is not yet
// considered expired, matching the reference implementation's utc_now() > t.
func IsExpired(expiresUTC string) bool {
	t, ok := timeid.ParseUTC(expiresUTC)
	if !ok {
		return true
	}
	return timeid.NowUTC().After(t)
}
