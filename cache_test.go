package cdoexpr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheConditions(t *testing.T) {
	c, err := NewCache(DefaultCacheSize)
	require.NoError(t, err)

	src := "if x > 0:\n    y = 1\nelse:\n    y = -1\n"
	first, err := c.Conditions(src)
	require.NoError(t, err)
	second, err := c.Conditions(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	hits, misses := c.Stats()
	assert.EqualValues(t, 1, hits)
	assert.EqualValues(t, 1, misses)
	assert.Equal(t, 1, c.Len())
}

func TestCacheKeepsErrors(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)

	_, err = c.Conditions("if x > 0:\n")
	require.Error(t, err)
	_, again := c.Conditions("if x > 0:\n")
	assert.Equal(t, err, again)

	hits, _ := c.Stats()
	assert.EqualValues(t, 1, hits)
}

func TestCacheSeparatesKinds(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)

	// the same text is a valid dump but not a valid conditional block
	_, err = c.TreeExpr(stumpDump)
	require.NoError(t, err)
	_, err = c.Conditions(stumpDump)
	assert.Error(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestCacheEnsemble(t *testing.T) {
	c, err := NewCache(DefaultCacheSize)
	require.NoError(t, err)

	direct, err := Ensemble([]string{stumpDump, stumpDump, deepDump}, Averaging, "PRED")
	require.NoError(t, err)
	cached, err := c.Ensemble([]string{stumpDump, stumpDump, deepDump}, Averaging, "PRED")
	require.NoError(t, err)
	assert.Equal(t, direct, cached)

	hits, misses := c.Stats()
	assert.EqualValues(t, 1, hits)
	assert.EqualValues(t, 2, misses)
}

func TestCacheConcurrent(t *testing.T) {
	c, err := NewCache(DefaultCacheSize)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			expr, err := c.TreeExpr(deepDump)
			assert.NoError(t, err)
			assert.Equal(t, "((f1<3))? (((f0<1))? (0.5): (0.25)): (-0.5)", expr)
		}()
	}
	wg.Wait()

	hits, misses := c.Stats()
	assert.EqualValues(t, 8, hits+misses)
}

func TestNewCacheInvalidSize(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}
