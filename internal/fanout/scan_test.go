package fanout

import (
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_Empty(t *testing.T) {
	out := Scan[string](nil, func(p string) (string, bool) { return p, true })
	assert.Nil(t, out)
}

func TestScan_FiltersRejected(t *testing.T) {
	paths := []string{"ok-1", "bad", "ok-2", "bad", "ok-3"}
	out := Scan(paths, func(p string) (string, bool) {
		if p == "bad" {
			return "", false
		}
		return p, true
	})
	require.Len(t, out, 3)
	sort.Strings(out)
	assert.Equal(t, []string{"ok-1", "ok-2", "ok-3"}, out)
}

func TestScan_AllRejected(t *testing.T) {
	out := Scan([]string{"a", "b", "c"}, func(p string) (string, bool) { return "", false })
	assert.Empty(t, out)
}

func TestScan_SingleItem(t *testing.T) {
	out := Scan([]string{"only"}, func(p string) (string, bool) { return "done-" + p, true })
	require.Len(t, out, 1)
	assert.Equal(t, "done-only", out[0])
}

func TestScan_RunsConcurrently(t *testing.T) {
	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("item-%d", i)
	}

	var current, peak int64
	Scan(paths, func(p string) (int, bool) {
		c := atomic.AddInt64(&current, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if c <= old || atomic.CompareAndSwapInt64(&peak, old, c) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&current, -1)
		return 1, true
	})

	assert.GreaterOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}
