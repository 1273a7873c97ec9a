package resample

import "testing"

func TestPixelCache_HitReturnsCachedPixel(t *testing.T) {
	src := grayRaster(t, [][]int{
		{10, 20},
		{30, 40},
	})

	c := newPixelCache(src, EdgeRepeat, 8)
	first := c.fetch(1, 0)
	second := c.fetch(1, 0)

	if first[0] != 20 || second[0] != 20 {
		t.Errorf("fetch(1,0): got %d then %d, want 20", first[0], second[0])
	}
	if len(c.entries) != 1 {
		t.Errorf("entries after repeated fetch: got %d, want 1", len(c.entries))
	}
}

func TestPixelCache_BoundedEvictsLeastRecentlyUsed(t *testing.T) {
	src := grayRaster(t, [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
	})

	c := newPixelCache(src, EdgeRepeat, 4)
	for x := 0; x < 8; x++ {
		c.fetch(x, 0)
	}

	if len(c.entries) != 4 {
		t.Fatalf("bounded cache size: got %d, want 4", len(c.entries))
	}
	for x := 4; x < 8; x++ {
		if _, ok := c.entries[pixelKey{x, 0}]; !ok {
			t.Errorf("recent key (%d,0) was evicted", x)
		}
	}
	for x := 0; x < 4; x++ {
		if _, ok := c.entries[pixelKey{x, 0}]; ok {
			t.Errorf("old key (%d,0) survived eviction", x)
		}
	}
}

func TestPixelCache_HitRefreshesRecency(t *testing.T) {
	src := grayRaster(t, [][]int{
		{0, 1, 2, 3, 4},
	})

	c := newPixelCache(src, EdgeRepeat, 2)
	c.fetch(0, 0)
	c.fetch(1, 0)
	c.fetch(0, 0) // refresh (0,0); (1,0) is now oldest
	c.fetch(2, 0) // evicts (1,0)

	if _, ok := c.entries[pixelKey{0, 0}]; !ok {
		t.Error("refreshed key (0,0) was evicted")
	}
	if _, ok := c.entries[pixelKey{1, 0}]; ok {
		t.Error("stale key (1,0) survived eviction")
	}
}

func TestPixelCache_UnboundedKeepsEverything(t *testing.T) {
	src := grayRaster(t, [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
	})

	c := newPixelCache(src, EdgeRepeat, 0)
	for x := -4; x < 12; x++ {
		c.fetch(x, 0)
	}

	if len(c.entries) != 16 {
		t.Errorf("unbounded cache size: got %d, want 16", len(c.entries))
	}
}

func TestPixelCache_CachesEdgeResolvedValues(t *testing.T) {
	src := grayRaster(t, [][]int{
		{10, 20},
	})

	c := newPixelCache(src, EdgeZero, 8)
	if got := c.fetch(-1, 0); got[0] != 0 {
		t.Errorf("zero-edge fetch: got %d, want 0", got[0])
	}
	if got := c.fetch(-1, 0); got[0] != 0 {
		t.Errorf("cached zero-edge fetch: got %d, want 0", got[0])
	}

	wrap := newPixelCache(src, EdgeWrap, 8)
	if got := wrap.fetch(-1, 0); got[0] != 20 {
		t.Errorf("wrap fetch: got %d, want 20", got[0])
	}
}
