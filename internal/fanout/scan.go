// Package fanout parallelizes the one thing the request queue's priority
// scan actually needs: reading and parsing a backlog of JSON files
// concurrently. A claim-next invocation can face hundreds of small request
// files, and each is an independent filesystem read, so there's no reason
// to parse them one at a time.
package fanout

import (
	"runtime"
	"sync"
)

// Scan reads every path concurrently through parse, keeping only the ones
// parse accepts (ok == true). The caller's own candidate type carries
// whatever sort key it needs; Scan makes no ordering promise about the
// returned slice, since queue.ClaimNext sorts it by priority afterward
// regardless of scan order.
func Scan[T any](paths []string, parse func(path string) (value T, ok bool)) []T {
	if len(paths) == 0 {
		return nil
	}

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string, len(paths))
	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	var (
		mu  sync.Mutex
		out = make([]T, 0, len(paths))
		wg  sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				v, ok := parse(p)
				if !ok {
					continue
				}
				mu.Lock()
				out = append(out, v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return out
}
