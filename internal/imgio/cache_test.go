package imgio_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"texatlas/internal/imgio"
)

func TestCacheReusesDecodedImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tex.png")
	require.NoError(t, imaging.Save(imaging.New(16, 16, testColor), path))

	c := imgio.NewCache()
	first, err := c.Load(path)
	require.NoError(t, err)
	second, err := c.Load(path)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, c.Len())
}

func TestCacheReplaysErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gone.png")
	c := imgio.NewCache()

	_, err1 := c.Load(path)
	require.Error(t, err1)
	_, err2 := c.Load(path)
	require.Error(t, err2)
	require.Equal(t, err1, err2)
	require.Equal(t, 1, c.Len())
}

func TestCacheConcurrentLoads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := make([]string, 4)
	for i := range paths {
		paths[i] = filepath.Join(dir, "tex"+string(rune('a'+i))+".png")
		require.NoError(t, imaging.Save(imaging.New(8+i, 8, testColor), paths[i]))
	}

	c := imgio.NewCache()
	var wg sync.WaitGroup
	for range 8 {
		for _, p := range paths {
			wg.Add(1)
			go func() {
				defer wg.Done()
				img, err := c.Load(p)
				if err != nil || img == nil {
					t.Errorf("Load(%s) failed: %v", p, err)
				}
			}()
		}
	}
	wg.Wait()
	require.Equal(t, len(paths), c.Len())
}
