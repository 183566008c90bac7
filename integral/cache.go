package integral

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/chebint/chebint/kernel"
)

// Cache memoizes built evaluators by kernel shape, order and tolerance, so
// the build cost is paid once per distinct parameterization. Concurrent
// first uses of the same key perform a single build; distinct keys build
// independently. A Cache is an explicit, injectable object; callers that
// want process-wide sharing pass the same instance around.
type Cache struct {
	builder Builder

	mu      sync.Mutex
	entries map[cacheKey]*cacheEntry
}

type cacheKey [32]byte

type cacheEntry struct {
	once sync.Once
	eval *BoundEvaluator
	err  error
}

// NewCache creates a Cache building through b.
func NewCache(b Builder) *Cache {
	return &Cache{
		builder: b,
		entries: make(map[cacheKey]*cacheEntry),
	}
}

// Get returns the evaluator for (kernel shape, n), building it on first use.
// A failed build is cached as well: the same key keeps returning the same
// error without re-running the build.
func (c *Cache) Get(k kernel.Kernel, n int) (*BoundEvaluator, error) {

	key := c.key(k.Params(), n)

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = new(cacheEntry)
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.eval, e.err = c.builder.Build(k, n)
	})

	return e.eval, e.err
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// key digests the binary encoding of (p, q, s, n, tol) so that structurally
// identical parameterizations collide regardless of the kernel's Go type.
func (c *Cache) key(par kernel.Params, n int) cacheKey {

	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(par.P))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(par.Q))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(par.S))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(c.builder.tol()))
	binary.LittleEndian.PutUint64(buf[32:], uint64(n))

	return blake3.Sum256(buf[:])
}
