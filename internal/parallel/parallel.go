// Package parallel provides the chunked worker pool behind the
// optimizers' elementwise kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For splits [0, n) into contiguous chunks and runs f over each,
// concurrently when that is worth the overhead. Small or disabled
// workloads run inline as f(0, n).
//
// f must be safe to run concurrently on disjoint ranges. A kernel
// that writes only to its own indices produces identical results
// under every chunking, so parallelism here never changes observable
// output.
func For(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunk := (n + cfg.NumWorkers - 1) / cfg.NumWorkers
	if chunk < cfg.MinChunkSize {
		chunk = cfg.MinChunkSize
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
