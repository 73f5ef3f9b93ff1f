package markdown

import (
	"runtime"
	"sync"
)

// parallelThreshold is the batch size above which requests fan out across a
// worker pool. Small batches stay sequential; goroutine dispatch costs more
// than it saves there.
const parallelThreshold = 50

// RenderBatch renders an ordered list of requests and returns results in the
// same order. Each request carries its own complete snapshot, so workers
// share nothing and need no locking: every worker writes only its own slot
// of the pre-sized result slice.
func RenderBatch(requests []RenderRequest) []LineRenderResult {
	results := make([]LineRenderResult, len(requests))

	if len(requests) <= parallelThreshold {
		for i, req := range requests {
			results[i] = RenderLine(req)
		}
		return results
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(requests) {
		workers = len(requests)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = RenderLine(requests[i])
			}
		}()
	}

	for i := range requests {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
