package gravity

import (
	"runtime"
	"sync"
)

// ParallelFor executes a function in parallel over a range [0, n).
// Batches at or below minChunk run inline on the calling goroutine, so
// single-point evaluation pays no scheduling cost. Each invocation of
// fn receives a disjoint [start, end) slice of the range.
func ParallelFor(n, minChunk, maxWorkers int, fn func(start, end int)) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	if n <= minChunk || maxWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := maxWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
