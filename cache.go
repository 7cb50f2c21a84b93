package cdoexpr

import (
	"sync/atomic"

	spooky "github.com/dgryski/go-spooky"
	lru "github.com/hashicorp/golang-lru"
	"github.com/kiteco/cdoexpr/errors"
)

// DefaultCacheSize is the number of translations a Cache keeps by default.
const DefaultCacheSize = 1000

// Cache memoizes translations keyed by a hash of their input. Results and
// errors are both kept. A Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache
	hits    int64
	misses  int64
}

type cacheEntry struct {
	expr string
	err  error
}

// kinds of cached input, mixed into the hash so equal text translated two ways does not collide
const (
	conditionsKind byte = iota + 1
	treeKind
)

// NewCache returns a cache holding at most size translations.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "creating cache of size %d", size)
	}
	return &Cache{entries: entries}, nil
}

// Conditions is the memoized form of the package-level Conditions.
func (c *Cache) Conditions(text string) (string, error) {
	return c.get(conditionsKind, text, func(s string) (string, error) {
		return Conditions(s, false)
	})
}

// TreeExpr is the memoized form of the package-level TreeExpr.
func (c *Cache) TreeExpr(dump string) (string, error) {
	return c.get(treeKind, dump, TreeExpr)
}

// Ensemble is Ensemble with every tree translated through the cache.
func (c *Cache) Ensemble(dumps []string, mode Mode, output string) (string, error) {
	return ensemble(dumps, mode, output, c.TreeExpr)
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Len returns the number of cached translations.
func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) get(kind byte, text string, translate func(string) (string, error)) (string, error) {
	key := hashInput(kind, text)
	if v, ok := c.entries.Get(key); ok {
		atomic.AddInt64(&c.hits, 1)
		entry := v.(cacheEntry)
		return entry.expr, entry.err
	}

	atomic.AddInt64(&c.misses, 1)
	expr, err := translate(text)
	c.entries.Add(key, cacheEntry{expr: expr, err: err})
	return expr, err
}

func hashInput(kind byte, text string) uint64 {
	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, kind)
	buf = append(buf, text...)
	return spooky.Hash64(buf)
}
