package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %v, %v, want 2, true", v, ok)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete should succeed once")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	// Touch 0 and 1 so 2 and 3 are the oldest.
	c.Get(0)
	c.Get(1)
	c.Set(4, 4)

	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for _, k := range []int{0, 1, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d was evicted", k)
		}
	}
	if got := c.Evictions(); got != 2 {
		t.Errorf("Evictions() = %d, want 2", got)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() (int, error) {
		calls++
		return 7, nil
	}
	for range 3 {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 7 {
			t.Fatalf("GetOrCreate = %v, %v, want 7, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	errBoom := errors.New("boom")
	if _, err := c.GetOrCreate("bad", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("GetOrCreate error = %v, want %v", err, errBoom)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed creation was stored")
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[int, int](8)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				_, _ = c.GetOrCreate((i+j)%12, func() (int, error) { return j, nil })
			}
		}()
	}
	wg.Wait()
	if got := c.Len(); got > 8 {
		t.Errorf("Len() = %d, want at most 8", got)
	}
}

func TestClear(t *testing.T) {
	c := New[int, int](0)
	c.Set(1, 1)
	c.Clear()
	if got := c.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
}
