/*
Package mdcache memoizes markdown parse results.

Applications which render the same markdown text repeatedly, e.g. article
previews in a list, may keep a Cache instead of re-parsing. Element trees are
immutable and therefore shared between all callers which parse the same text.

A Cache is owned by its creator; there is no package-global cache.
*/
package mdcache

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/mdtree/core/parameters"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/schuko/tracing"
	"github.com/patrickmn/go-cache"
)

// tracer traces with key 'mdtree.cache'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.cache")
}

// Cache holds parse results, keyed by a hash of the markdown source.
// It is safe for concurrent use.
type Cache struct {
	parser *markdown.Parser
	cache  *cache.Cache
	hits   uint64
	misses uint64
}

type entry struct {
	source   string // to detect hash collisions
	elements []markdown.Element
}

// New creates a cache for results of parser p. Entries expire after expiry
// and expired entries are purged every purge interval. If p is nil, the
// default parser is used.
func New(p *markdown.Parser, expiry, purge time.Duration) *Cache {
	if p == nil {
		p = markdown.Default()
	}
	return &Cache{
		parser: p,
		cache:  cache.New(expiry, purge),
	}
}

// FromRegisters creates a cache with expiry time from markdown parameters.
// Expired entries are purged in intervals of twice the expiry time.
func FromRegisters(p *markdown.Parser, regs *parameters.Registers) *Cache {
	expiry := parameters.DefaultCacheExpiry
	if regs != nil {
		expiry = regs.Duration(parameters.P_CACHEEXPIRY)
	}
	return New(p, expiry, 2*expiry)
}

// Key returns the cache key for a markdown source.
func Key(source string) string {
	return strconv.FormatUint(xxhash.Sum64String(source), 16)
}

// Parse returns the elements for source, parsing it if it is not yet cached.
// Clients must not modify the elements returned.
func (c *Cache) Parse(source string) []markdown.Element {
	key := Key(source)
	if x, found := c.cache.Get(key); found {
		if e := x.(entry); e.source == source {
			atomic.AddUint64(&c.hits, 1)
			return e.elements
		}
		tracer().Infof("mdcache: hash collision for key %s", key)
	}
	atomic.AddUint64(&c.misses, 1)
	elements := c.parser.Parse(source)
	c.cache.Set(key, entry{source: source, elements: elements}, cache.DefaultExpiration)
	return elements
}

// PlainText returns the plain text for source, see markdown.PlainText.
func (c *Cache) PlainText(source string) string {
	return markdown.Reduce(c.Parse(source))
}

// Len returns the number of cached entries, including expired entries not
// yet purged.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Flush removes all entries.
func (c *Cache) Flush() {
	tracer().Debugf("mdcache: flushing %d entries", c.cache.ItemCount())
	c.cache.Flush()
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}
