package hexgrid

import (
	"sync/atomic"

	"github.com/gogpu/hexgrid/internal/parallel"
)

// Default cache configuration constants.
const (
	// DefaultMinLevel is the lowest recursion level that Generate stores.
	// Values below it are cheap to recompute on demand, and skipping them
	// keeps the cache size bounded for large buffers.
	DefaultMinLevel = 2
)

// BlockKey identifies a range block by its byte offset and length.
type BlockKey struct {
	Offset, Length uint64
}

// Cache holds precomputed aggregate values for every range block between
// a minimum recursion level and the buffer's maximum level.
//
// A Cache is an optimization, never a correctness dependency: Get reports
// a miss for any block outside the cached levels and the caller must fall
// back to computing the value directly with the aggregator.
//
// A Cache is immutable once Generate returns and safe for concurrent
// reads. There is no incremental update; when the underlying buffer is
// replaced the owner regenerates from scratch (see Stale).
type Cache[T any] struct {
	values map[BlockKey]T

	// digest fingerprints the aggregator's source buffers at generation
	// time, when the aggregator supports it.
	digest    uint64
	hasDigest bool
}

// NewCache creates an empty cache. Every Get misses until the owner
// replaces it with a generated one; this is the correct initial state
// for aggregations whose inputs are not loaded yet.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{values: make(map[BlockKey]T)}
}

// Get returns the cached aggregate for the range block at offset with the
// given length. A miss is never an error: the caller computes the value
// directly from the aggregator instead.
func (c *Cache[T]) Get(offset, length uint64) (T, bool) {
	v, ok := c.values[BlockKey{Offset: offset, Length: length}]
	return v, ok
}

// Len returns the number of cached entries.
func (c *Cache[T]) Len() int {
	return len(c.values)
}

// Fingerprint returns the content fingerprint of the buffers the cache
// was generated from. ok is false for caches that were never generated
// and for aggregators that do not support fingerprinting.
func (c *Cache[T]) Fingerprint() (digest uint64, ok bool) {
	return c.digest, c.hasDigest
}

// Stale reports whether the cache no longer matches the aggregator's
// source buffers and must be regenerated. Unknown provenance counts as
// stale.
func (c *Cache[T]) Stale(agg Aggregator[T]) bool {
	f, ok := agg.(fingerprinted)
	if !ok || !c.hasDigest {
		return true
	}
	return f.fingerprint() != c.digest
}

// CacheOption configures cache generation.
type CacheOption func(*cacheOptions)

// cacheOptions holds optional configuration for Generate.
type cacheOptions struct {
	minLevel uint32
	workers  int
}

// WithMinLevel sets the lowest recursion level to store. Blocks below it
// are recomputed on demand by callers. The default is DefaultMinLevel,
// sized for a branch factor of 4; larger branch factors may want a lower
// floor since block sizes grow faster.
func WithMinLevel(level uint32) CacheOption {
	return func(o *cacheOptions) {
		o.minLevel = level
	}
}

// WithWorkers fans aggregation within each recursion level out across n
// workers. Levels are still generated strictly in order, since each level
// combines values from the one below. n ≤ 1 keeps generation sequential.
func WithWorkers(n int) CacheOption {
	return func(o *cacheOptions) {
		o.workers = n
	}
}

// Generate precomputes aggregate values for every range block of a
// dataLen-byte buffer from the minimum cached level up to the buffer's
// maximum level, bottom-up: each block at the minimum level is computed
// directly from the data, and each coarser block combines its branch²
// children, falling back to direct computation for any child that is not
// cached.
func Generate[T any](agg Aggregator[T], dataLen, branch uint64, opts ...CacheOption) *Cache[T] {
	o := cacheOptions{minLevel: DefaultMinLevel, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[T]{values: make(map[BlockKey]T)}
	maxLevel := MaxLevel(dataLen, branch)

	Logger().Info("generating aggregate cache",
		"dataLen", dataLen, "branch", branch,
		"maxLevel", maxLevel, "minLevel", o.minLevel, "workers", o.workers)

	var pool *parallel.WorkerPool
	if o.workers > 1 {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}

	for level := o.minLevel; level <= maxLevel; level++ {
		var keys []BlockKey
		for offset, length := range Blocks(0, dataLen, level, level, branch, nil) {
			keys = append(keys, BlockKey{Offset: offset, Length: length})
		}

		results := make([]T, len(keys))
		var misses atomic.Uint64

		compute := func(i int) {
			key := keys[i]
			if level <= o.minLevel {
				misses.Add(1)
				results[i] = agg.Value(key.Offset, key.Length)
				return
			}

			// Gather the children at the next-finer level. During one
			// level pass c.values is read-only, so this is safe from
			// worker goroutines.
			var children []T
			for sub, subLen := range Blocks(key.Offset, key.Offset+key.Length, level-1, level-1, branch, nil) {
				v, ok := c.values[BlockKey{Offset: sub, Length: subLen}]
				if !ok {
					misses.Add(1)
					v = agg.Value(sub, subLen)
				}
				children = append(children, v)
			}
			results[i] = agg.Combine(children)
		}

		if pool != nil {
			for i := range keys {
				pool.Submit(func() { compute(i) })
			}
			pool.Wait()
		} else {
			for i := range keys {
				compute(i)
			}
		}

		for i, key := range keys {
			c.values[key] = results[i]
		}

		Logger().Debug("cache level generated",
			"level", level, "entries", len(c.values), "misses", misses.Load())
	}

	if f, ok := agg.(fingerprinted); ok {
		c.digest = f.fingerprint()
		c.hasDigest = true
	}

	Logger().Debug("cache generation complete", "entries", len(c.values))
	return c
}
