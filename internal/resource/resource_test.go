package resource_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/cache/memory"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/resource"
)

func TestNew_SeedsFromCache(t *testing.T) {
	c := memory.NewTimedCache(memory.DefaultTTL)
	c.Set("products", []string{"laptop", "phone"})

	r := resource.New[[]string](c, "products")

	st := r.State()
	if !st.HasData || len(st.Data) != 2 {
		t.Fatalf("fresh resource must expose cached data before any fetch, got %+v", st)
	}
	if st.Loading {
		t.Fatalf("seeded resource must not be loading")
	}
}

func TestExecute_SuccessStoresAndReturns(t *testing.T) {
	c := memory.NewTimedCache(memory.DefaultTTL)
	r := resource.New[int](c, "answer")

	got, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})
	if err != nil || got != 42 {
		t.Fatalf("want 42, got %d err=%v", got, err)
	}

	st := r.State()
	if !st.HasData || st.Data != 42 || st.Loading || st.Err != "" {
		t.Fatalf("unexpected settled state: %+v", st)
	}
	if v, ok := c.Get("answer"); !ok || v.(int) != 42 {
		t.Fatalf("result must land in the cache, got %v ok=%v", v, ok)
	}
}

func TestExecute_FailureSetsErrorAndRethrows(t *testing.T) {
	r := resource.New[int](nil, "")
	boom := errors.New("catalog unavailable")

	_, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want the original error back, got %v", err)
	}

	st := r.State()
	if st.Err != "catalog unavailable" {
		t.Fatalf("want error message in state, got %q", st.Err)
	}
	if st.Loading {
		t.Fatalf("loading must be cleared on the failure path")
	}
}

func TestExecute_ClearsErrorOnNextCall(t *testing.T) {
	r := resource.New[int](nil, "")

	_, _ = r.Execute(context.Background(), func(context.Context) (int, error) {
		return 0, errors.New("first failure")
	})
	if r.State().Err == "" {
		t.Fatalf("precondition: error set")
	}

	_, err := r.Execute(context.Background(), func(context.Context) (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := r.State(); st.Err != "" || st.Data != 7 {
		t.Fatalf("error must be cleared after a success: %+v", st)
	}
}

func TestExecute_StaleGenerationDiscarded(t *testing.T) {
	r := resource.New[string](nil, "")

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	// first call blocks until released, then reports "stale"
	go func() {
		defer wg.Done()
		_, _ = r.Execute(context.Background(), func(context.Context) (string, error) {
			<-release
			return "stale", nil
		})
	}()

	// give the first goroutine time to enter Execute
	time.Sleep(20 * time.Millisecond)

	// second call settles first
	if _, err := r.Execute(context.Background(), func(context.Context) (string, error) {
		return "fresh", nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(release)
	wg.Wait()

	if st := r.State(); st.Data != "fresh" {
		t.Fatalf("stale response must not overwrite the newer one, got %q", st.Data)
	}
}

func TestEnsureFetched_SkipsOnFreshCache(t *testing.T) {
	c := memory.NewTimedCache(memory.DefaultTTL)
	c.Set("categories", []string{"beauty"})
	r := resource.New[[]string](c, "categories")

	calls := 0
	err := r.EnsureFetched(context.Background(), func(context.Context) ([]string, error) {
		calls++
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Fatalf("fresh cache hit must skip the fetch, got %d calls", calls)
	}
}

func TestEnsureFetched_FetchesOnMissThenSkips(t *testing.T) {
	c := memory.NewTimedCache(memory.DefaultTTL)
	r := resource.New[[]string](c, "categories")

	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return []string{"beauty"}, nil
	}

	if err := r.EnsureFetched(context.Background(), fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.EnsureFetched(context.Background(), fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("second EnsureFetched must be served from cache, got %d calls", calls)
	}
}

func TestEnsureFetched_RetriesAfterFailure(t *testing.T) {
	c := memory.NewTimedCache(memory.DefaultTTL)
	r := resource.New[int](c, "k")

	calls := 0
	failing := func(context.Context) (int, error) {
		calls++
		return 0, errors.New("down")
	}

	if err := r.EnsureFetched(context.Background(), failing); err == nil {
		t.Fatalf("want failure surfaced")
	}
	if err := r.EnsureFetched(context.Background(), failing); err == nil {
		t.Fatalf("want failure surfaced again")
	}
	if calls != 2 {
		t.Fatalf("a failed fetch must not mark the resource done, calls=%d", calls)
	}
}
