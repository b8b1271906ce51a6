package worker

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/atani/php-knip/pkg/collector"
)

// cachedResult pairs a collection result with the content hash it was
// computed from, so a cache hit can be rejected the moment a file changes
// underneath watch mode ("no incremental mode" for a single
// analyze run, but repeated runs within `phpknip watch` should not
// re-parse an unchanged file on every filesystem event).
type cachedResult struct {
	hash   string
	result collector.Result
}

// ResultCache memoizes CollectFile output per path, grounded on an
// LRU-backed symbol indexer's file cache (same shape, evicted the same
// way). Installed on the worker Pool only in `phpknip watch` mode via
// Pool.SetResultCache: a plain `phpknip analyze` run collects every file
// exactly once and has no need for it.
type ResultCache struct {
	lru *lru.Cache[string, cachedResult]
}

// NewResultCache builds a ResultCache holding at most maxFiles entries.
func NewResultCache(maxFiles int) *ResultCache {
	if maxFiles <= 0 {
		maxFiles = 4096
	}
	c, _ := lru.New[string, cachedResult](maxFiles)
	return &ResultCache{lru: c}
}

// ContentHash hashes file content for cache-key comparison.
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached result for path if content still matches hash.
func (c *ResultCache) Get(path string, hash string) (collector.Result, bool) {
	entry, ok := c.lru.Get(path)
	if !ok || entry.hash != hash {
		return collector.Result{}, false
	}
	return entry.result, true
}

// Put stores the result for path under hash, evicting the least recently
// used entry if the cache is at capacity.
func (c *ResultCache) Put(path, hash string, result collector.Result) {
	c.lru.Add(path, cachedResult{hash: hash, result: result})
}

// Invalidate drops any cached entry for path.
func (c *ResultCache) Invalidate(path string) {
	c.lru.Remove(path)
}

// Len returns the number of cached entries.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}
</content>
