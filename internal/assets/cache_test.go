package assets

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingReader(calls *atomic.Int32) ReadFunc {
	return func(path string) ([]byte, error) {
		calls.Add(1)
		return os.ReadFile(path)
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestCache_LoadReadsOnce(t *testing.T) {
	data := []byte("%PDF-1.4 resume")
	path := writeFile(t, "resume.pdf", data)

	var calls atomic.Int32
	c := NewCache(WithReader(countingReader(&calls)))

	first, err := c.Load(path)
	require.NoError(t, err)
	second, err := c.Load(path)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first.Encoded, second.Encoded)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), first.Encoded)
	assert.Equal(t, data, first.Data)
	assert.Equal(t, "resume.pdf", first.Name)
	assert.Equal(t, len(data), first.Size())
}

func TestCache_LoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	var calls atomic.Int32
	c := NewCache(WithReader(countingReader(&calls)))

	for i := 0; i < 2; i++ {
		asset, err := c.Load(path)
		require.Error(t, err)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, path, loadErr.Path)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Empty(t, asset.Encoded)
		assert.Nil(t, asset.Data)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_StaleAfterChange(t *testing.T) {
	path := writeFile(t, "resume.pdf", []byte("v1"))
	c := NewCache()

	first, err := c.Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	second, err := c.Load(path)
	require.NoError(t, err)

	assert.Equal(t, first.Encoded, second.Encoded)
	assert.Equal(t, []byte("v1"), second.Data)
}

func TestCache_DistinctPaths(t *testing.T) {
	a := writeFile(t, "a.pdf", []byte("a"))
	b := writeFile(t, "b.pdf", []byte("b"))
	c := NewCache()

	assetA, err := c.Load(a)
	require.NoError(t, err)
	assetB, err := c.Load(b)
	require.NoError(t, err)

	assert.NotEqual(t, assetA.Encoded, assetB.Encoded)
	assert.Equal(t, 2, c.Len())
}

func TestCache_ConcurrentFirstLoad(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	c := NewCache(WithReader(func(string) ([]byte, error) {
		calls.Add(1)
		<-release
		return []byte("shared"), nil
	}))

	const n = 32
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			asset, err := c.Load("resume.pdf")
			if err == nil {
				results[i] = asset.Encoded
			}
		}(i)
	}

	// Give the goroutines a moment to pile onto the in-flight read.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	want := base64.StdEncoding.EncodeToString([]byte("shared"))
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCache_ConcurrentFailureIsShared(t *testing.T) {
	var calls atomic.Int32
	c := NewCache(WithReader(func(string) ([]byte, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		return nil, fs.ErrPermission
	}))

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Load("locked.pdf"); errors.Is(err, fs.ErrPermission) {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(16), failures.Load())
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_ReaderPanicBecomesLoadError(t *testing.T) {
	c := NewCache(WithReader(func(string) ([]byte, error) {
		panic("disk on fire")
	}))

	_, err := c.Load("resume.pdf")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "disk on fire")
}
