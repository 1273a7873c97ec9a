package resample

import "github.com/ironsheep/image-resample/internal/raster"

// fetchFunc resolves an integer coordinate to a channel vector. Kernels are
// written against this capability so the drivers can route neighbor lookups
// through a memoizing cache while SamplePixel reads the grid directly.
type fetchFunc func(x, y int) raster.Pixel

// directFetch returns an uncached fetch bound to one source and edge mode.
func directFetch(src *raster.Raster, edge Edge) fetchFunc {
	return func(x, y int) raster.Pixel {
		return sampleEdge(src, x, y, edge)
	}
}

type pixelKey struct {
	x, y int
}

type cacheNode struct {
	key        pixelKey
	pix        raster.Pixel
	prev, next *cacheNode
}

// pixelCache memoizes edge-sampler lookups for one Displace/Rescale call.
//
// The cache is bound to a single source raster and edge mode for its whole
// lifetime, so the key is just the integer coordinate pair. It is built at
// the start of a call (or of one row partition) and discarded at its end:
// no global cache, no cross-call sharing, and therefore no locking.
//
// With capacity <= 0 the cache is unbounded; otherwise least-recently-used
// entries are evicted, map plus intrusive list.
type pixelCache struct {
	src      *raster.Raster
	edge     Edge
	capacity int
	entries  map[pixelKey]*cacheNode
	// LRU list, most recent at head. Unused when unbounded.
	head, tail *cacheNode
}

func newPixelCache(src *raster.Raster, edge Edge, capacity int) *pixelCache {
	return &pixelCache{
		src:      src,
		edge:     edge,
		capacity: capacity,
		entries:  make(map[pixelKey]*cacheNode),
	}
}

// fetch returns the pixel at (x, y) under the cache's edge mode, resolving
// it through sampleEdge on a miss. Cached pixels alias the source grid and
// must not be mutated.
func (c *pixelCache) fetch(x, y int) raster.Pixel {
	k := pixelKey{x, y}
	if n, ok := c.entries[k]; ok {
		if c.capacity > 0 {
			c.moveToFront(n)
		}
		return n.pix
	}

	n := &cacheNode{key: k, pix: sampleEdge(c.src, x, y, c.edge)}
	c.entries[k] = n
	if c.capacity > 0 {
		c.pushFront(n)
		for len(c.entries) > c.capacity {
			c.evictOldest()
		}
	}
	return n.pix
}

func (c *pixelCache) pushFront(n *cacheNode) {
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *pixelCache) moveToFront(n *cacheNode) {
	if n == c.head {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if n == c.tail {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
}

func (c *pixelCache) evictOldest() {
	n := c.tail
	if n == nil {
		return
	}
	c.tail = n.prev
	if c.tail != nil {
		c.tail.next = nil
	} else {
		c.head = nil
	}
	n.prev = nil
	delete(c.entries, n.key)
}
