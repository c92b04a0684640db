// Package parallel provides the chunked fan-out used to run independent
// derivative passes concurrently.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is spread over goroutines.
type Config struct {
	Enabled      bool // Whether to fan out at all.
	NumWorkers   int  // Upper bound on concurrent goroutines.
	MinPerWorker int  // Minimum items per goroutine before fanning out.
}

// DefaultConfig returns defaults based on CPU count. A single derivative
// pass already costs a full evaluation of the function, so fan-out pays off
// at small item counts; MinPerWorker stays low.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinPerWorker: 2,
	}
}

// Sequential returns a config that keeps all work on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinPerWorker: 1}
}

// For executes f(i) for i in [0, n), fanning out over worker goroutines in
// contiguous chunks when the config allows and n is large enough. f must
// confine itself to state owned by item i; For provides no locking.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinPerWorker {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + cfg.NumWorkers - 1) / cfg.NumWorkers
	if chunk < cfg.MinPerWorker {
		chunk = cfg.MinPerWorker
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
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
