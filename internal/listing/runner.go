package listing

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Bitlatte/showcase/internal/model"
)

const defaultCacheSize = 256

type cacheKey struct {
	generation uint64
	state      ViewState
}

// Runner memoizes Run. Entries are keyed by the collection generation, so a
// reloaded collection never serves results computed from the previous one.
// Returned results are shared between callers and must not be modified.
type Runner struct {
	cache    *lru.Cache[cacheKey, Result]
	observer CacheObserver
}

// CacheObserver is told about every cache lookup.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

type nopObserver struct{}

func (nopObserver) CacheHit()  {}
func (nopObserver) CacheMiss() {}

type RunnerOption func(*Runner)

func WithObserver(o CacheObserver) RunnerOption {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

func NewRunner(size int, opts ...RunnerOption) (*Runner, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[cacheKey, Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing cache: %w", err)
	}
	r := &Runner{cache: cache, observer: nopObserver{}}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run returns Run(items, s), computing it only on a cache miss.
func (r *Runner) Run(generation uint64, items []model.ContentItem, s ViewState) Result {
	key := cacheKey{generation: generation, state: s}
	if res, ok := r.cache.Get(key); ok {
		r.observer.CacheHit()
		return res
	}
	r.observer.CacheMiss()
	res := Run(items, s)
	r.cache.Add(key, res)
	return res
}

// Purge drops every cached result.
func (r *Runner) Purge() {
	r.cache.Purge()
}

func (r *Runner) Len() int {
	return r.cache.Len()
}
