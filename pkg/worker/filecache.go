package worker

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/edsrzf/mmap-go"
)

// FileCache supplies raw source bytes to the collection pipeline via
// memory-mapped files, falling back to a plain read when mmap fails (e.g.
// zero-length files, or filesystems that don't support it). Adapted from
// an earlier internal FileCache: that implementation also offered an
// offset-slicing API for LLM context retrieval, which this domain has no
// use for, so only content loading survives.
type FileCache interface {
	// Get returns the full contents of path, loading and mapping it on
	// first access.
	Get(path string) ([]byte, error)
	// Stats returns current cache counters.
	Stats() FileCacheStats
	// Close unmaps every cached file.
	Close() error
}

// FileCacheConfig bounds cache growth during a single collection run.
type FileCacheConfig struct {
	// MaxFiles caps the number of files kept mapped; 0 means unlimited.
	MaxFiles int
}

// DefaultFileCacheConfig covers a mid-size project's full source tree.
func DefaultFileCacheConfig() FileCacheConfig {
	return FileCacheConfig{MaxFiles: 20000}
}

// FileCacheStats reports cache activity.
type FileCacheStats struct {
	FilesCached  int
	CacheHits    int64
	CacheMisses  int64
	MmapFailures int64
}

type mappedEntry struct {
	data mmap.MMap
	file *os.File
	raw  []byte // set instead of data/file on fallback
}

type fileCache struct {
	cfg     FileCacheConfig
	mu      sync.RWMutex
	entries map[string]*mappedEntry

	hits, misses, mmapFailures atomic.Int64
}

// NewFileCache builds a FileCache with the given bounds.
func NewFileCache(cfg FileCacheConfig) FileCache {
	return &fileCache{cfg: cfg, entries: make(map[string]*mappedEntry)}
}

func (fc *fileCache) Get(path string) ([]byte, error) {
	fc.mu.RLock()
	if e, ok := fc.entries[path]; ok {
		fc.mu.RUnlock()
		fc.hits.Add(1)
		return e.bytes(), nil
	}
	fc.mu.RUnlock()

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if e, ok := fc.entries[path]; ok {
		fc.hits.Add(1)
		return e.bytes(), nil
	}

	if fc.cfg.MaxFiles > 0 && len(fc.entries) >= fc.cfg.MaxFiles {
		fc.misses.Add(1)
		return nil, fmt.Errorf("file cache limit reached: %d files (limit %d)", len(fc.entries), fc.cfg.MaxFiles)
	}

	e, err := fc.load(path)
	if err != nil {
		fc.misses.Add(1)
		return nil, err
	}
	fc.entries[path] = e
	fc.misses.Add(1)
	return e.bytes(), nil
}

func (fc *fileCache) load(path string) (*mappedEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	if stat.Size() == 0 {
		f.Close()
		return &mappedEntry{raw: []byte{}}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		fc.mmapFailures.Add(1)
		raw, readErr := os.ReadFile(path)
		f.Close()
		if readErr != nil {
			return nil, fmt.Errorf("mmap failed (%v) and fallback read failed for %q: %w", err, path, readErr)
		}
		return &mappedEntry{raw: raw}, nil
	}
	return &mappedEntry{data: data, file: f}, nil
}

func (e *mappedEntry) bytes() []byte {
	if e.raw != nil {
		return e.raw
	}
	return e.data
}

func (fc *fileCache) Stats() FileCacheStats {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return FileCacheStats{
		FilesCached:  len(fc.entries),
		CacheHits:    fc.hits.Load(),
		CacheMisses:  fc.misses.Load(),
		MmapFailures: fc.mmapFailures.Load(),
	}
}

func (fc *fileCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var firstErr error
	for path, e := range fc.entries {
		if e.data != nil {
			if err := e.data.Unmap(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("unmap %q: %w", path, err)
			}
		}
		if e.file != nil {
			_ = e.file.Close()
		}
	}
	fc.entries = make(map[string]*mappedEntry)
	return firstErr
}
</content>
