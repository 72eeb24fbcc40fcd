// Package assets loads binary files once per path and keeps the result for
// the life of the process.
package assets

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Asset is a loaded file. Data is shared between callers and must not be
// modified.
type Asset struct {
	Path    string
	Name    string
	Data    []byte
	Encoded string
}

// Size returns the length of the raw file in bytes.
func (a Asset) Size() int {
	return len(a.Data)
}

// LoadError reports a file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ReadFunc reads a whole file.
type ReadFunc func(path string) ([]byte, error)

type entry struct {
	asset Asset
	err   error
}

// Cache memoizes file loads by exact path. Failures are cached as well;
// nothing is ever evicted, so a file changed on disk keeps serving the first
// result until restart.
type Cache struct {
	read ReadFunc

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithReader replaces os.ReadFile.
func WithReader(fn ReadFunc) Option {
	return func(c *Cache) { c.read = fn }
}

// NewCache creates an empty cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		read:    os.ReadFile,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the asset at path, reading it only on the first request.
// Concurrent first requests share a single read. A failed read yields a
// *LoadError.
func (c *Cache) Load(path string) (Asset, error) {
	if e, ok := c.lookup(path); ok {
		return e.asset, e.err
	}

	v, _, _ := c.group.Do(path, func() (any, error) {
		// Another flight may have finished between lookup and Do.
		if e, ok := c.lookup(path); ok {
			return e, nil
		}

		e := c.fill(path)

		c.mu.Lock()
		c.entries[path] = e
		c.mu.Unlock()
		return e, nil
	})

	e := v.(entry)
	return e.asset, e.err
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(path string) (entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[path]
	return e, ok
}

func (c *Cache) fill(path string) (e entry) {
	defer func() {
		if r := recover(); r != nil {
			e = entry{err: &LoadError{Path: path, Err: fmt.Errorf("read panicked: %v", r)}}
		}
	}()

	data, err := c.read(path)
	if err != nil {
		return entry{err: &LoadError{Path: path, Err: err}}
	}
	return entry{asset: Asset{
		Path:    path,
		Name:    filepath.Base(path),
		Data:    data,
		Encoded: base64.StdEncoding.EncodeToString(data),
	}}
}
