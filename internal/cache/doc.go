// Package cache provides the generic LRU cache that backs the glyph mask
// cache of the text engine.
//
// Cache uses a soft limit: when it is exceeded, the least recently used
// quarter of the entries is evicted in one batch.
//
//	c := cache.New[maskKey, *GlyphMask](1024)
//	mask := c.GetOrCreate(key, func() (*GlyphMask, bool) {
//	    m := render(key)
//	    return m, m != nil
//	})
//
// Hit, miss and eviction counters are reported by Stats.
package cache
