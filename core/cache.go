package core

import (
	"context"
	"sync"
	"time"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
)

// DatasetCache holds the most recently loaded dataset and decides between
// reuse and reload based on the fingerprint of the source files. It is the
// only stateful entity in the engine and is safe for concurrent use: the
// check-then-reload-then-store sequence runs under the write lock, while
// readers of an already-valid dataset only share the read lock.
type DatasetCache struct {
	mu     sync.RWMutex
	loader contract.RowLoader
	dir    string
	data   *schema.Dataset
}

// NewDatasetCache creates a cache over the given data directory.
func NewDatasetCache(loader contract.RowLoader, dir string) *DatasetCache {
	return &DatasetCache{loader: loader, dir: dir}
}

// Get returns the current dataset, reloading it only when the source files
// changed since the last load. Consecutive calls with an unchanged
// directory return the identical dataset pointer. A failed reload leaves
// any previously cached dataset in place.
func (c *DatasetCache) Get(ctx context.Context) (*schema.Dataset, error) {
	files, err := c.loader.ListSources(c.dir)
	if err != nil {
		return nil, &ConfigError{Dir: c.dir, Err: err}
	}
	current := Fingerprint(files)

	// Fast path: share a valid dataset without blocking other readers.
	c.mu.RLock()
	if c.data != nil && c.data.Fingerprint == current {
		ds := c.data
		c.mu.RUnlock()
		return ds, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under the write lock: another request may have finished the
	// reload while this one was waiting.
	files, err = c.loader.ListSources(c.dir)
	if err != nil {
		return nil, &ConfigError{Dir: c.dir, Err: err}
	}
	current = Fingerprint(files)
	if c.data != nil && c.data.Fingerprint == current {
		return c.data, nil
	}

	ds, err := c.reload(ctx, files, current)
	if err != nil {
		return nil, err
	}
	c.data = ds
	return ds, nil
}

// reload reads every source file and concatenates the rows in enumeration
// order. Any single file failure aborts the reload so the cache never holds
// a partial dataset.
func (c *DatasetCache) reload(ctx context.Context, files []schema.SourceFile, fingerprint string) (*schema.Dataset, error) {
	if len(files) == 0 {
		return nil, &ConfigError{Dir: c.dir, Err: ErrNoSourceData}
	}

	contract.LogInfo("Reloading %d source file(s) from %s", len(files), c.dir)

	ds := &schema.Dataset{
		Columns:     make(map[schema.Column]bool),
		Fingerprint: fingerprint,
		LoadedAt:    time.Now(),
		Sources:     len(files),
	}
	for _, f := range files {
		rs, err := c.loader.LoadRows(ctx, f.Path)
		if err != nil {
			return nil, &LoadError{Path: f.Path, Err: err}
		}
		ds.Records = append(ds.Records, rs.Records...)
		for col := range rs.Columns {
			ds.Columns[col] = true
		}
	}
	return ds, nil
}

// Clear evicts the cached dataset and reports whether one existed.
func (c *DatasetCache) Clear() schema.CacheClearResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	had := c.data != nil
	c.data = nil
	return schema.CacheClearResult{HadData: had, Timestamp: time.Now()}
}

// Status is a read-only diagnostic of the cache state. It never triggers a
// reload.
func (c *DatasetCache) Status() (schema.CacheStatus, error) {
	files, err := c.loader.ListSources(c.dir)
	if err != nil {
		return schema.CacheStatus{}, &ConfigError{Dir: c.dir, Err: err}
	}
	current := Fingerprint(files)

	c.mu.RLock()
	defer c.mu.RUnlock()

	status := schema.CacheStatus{CurrentFingerprint: current}
	if c.data != nil {
		status.HasDataset = true
		status.CachedFingerprint = c.data.Fingerprint
		status.Valid = c.data.Fingerprint == current
		status.LoadedAt = c.data.LoadedAt
		status.Records = len(c.data.Records)
		status.Sources = c.data.Sources
	}
	return status, nil
}
