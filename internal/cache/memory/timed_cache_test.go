package memory

import (
	"testing"
	"time"
)

func TestSetGet_HitMiss(t *testing.T) {
	c := NewTimedCache(DefaultTTL)

	// miss
	if _, ok := c.Get("products"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit after Set
	c.Set("products", []string{"laptop"})
	got, ok := c.Get("products")
	if !ok {
		t.Fatalf("expected hit for products")
	}
	if vs, _ := got.([]string); len(vs) != 1 || vs[0] != "laptop" {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewTimedCache(100 * time.Millisecond)

	c.Set("ttl", 1)
	if _, ok := c.Get("ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get("ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	// the failed lookup must have evicted the entry
	if c.Len() != 0 {
		t.Fatalf("stale entry should be deleted on lookup, len=%d", c.Len())
	}
	// the key is reusable after eviction
	c.Set("ttl", 2)
	if v, ok := c.Get("ttl"); !ok || v.(int) != 2 {
		t.Fatalf("expected fresh value after re-Set, got %v ok=%v", v, ok)
	}
}

func TestTTL_ExpiryWithFakeClock(t *testing.T) {
	c := NewTimedCache(DefaultTTL)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("k", "v")

	// one tick short of the TTL: still fresh
	c.now = func() time.Time { return base.Add(DefaultTTL) }
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("entry at exactly TTL age must still be fresh")
	}

	c.now = func() time.Time { return base.Add(DefaultTTL + time.Millisecond) }
	if _, ok := c.Get("k"); ok {
		t.Fatalf("entry past TTL must be a miss")
	}
}

func TestSet_Overwrites(t *testing.T) {
	c := NewTimedCache(DefaultTTL)

	c.Set("k", "old")
	c.Set("k", "new")
	v, ok := c.Get("k")
	if !ok || v.(string) != "new" {
		t.Fatalf("want overwrite to new, got %v ok=%v", v, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("overwrite must not grow the map, len=%d", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := NewTimedCache(DefaultTTL)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Clear, len=%d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected miss after Clear")
	}
}

func TestZeroTTL_NeverExpires(t *testing.T) {
	c := NewTimedCache(0)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("k", "v")

	c.now = func() time.Time { return base.Add(24 * time.Hour) }
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("ttl<=0 disables expiration")
	}
}
