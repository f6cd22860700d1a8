// Package parallel provides chunked parallel loops for exhaustive checks over
// index spaces.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256,
	}
}

// Sequential returns a configuration that runs every loop on the caller's goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1}
}

// chunks splits [0, n) into contiguous ranges, one per goroutine.
func chunks(n int, cfg Config) [][2]int {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return [][2]int{{0, n}}
	}
	size := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	var out [][2]int
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// ForErr executes f(i) for i in [0, n) and returns the first error.
// Remaining work is abandoned once an error occurs or ctx is cancelled; the
// context error is returned in the latter case.
func ForErr(ctx context.Context, n int, f func(i int) error, cfg Config) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range chunks(n, cfg) {
		g.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := f(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
