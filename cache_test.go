package fieldset_test

import (
	"sync"
	"testing"

	fieldset "github.com/utopos/fieldset"
)

// countingProvider counts lookups so tests can observe read-through behavior.
type countingProvider struct {
	mu    sync.Mutex
	hits  int
	inner fieldset.StaticProvider
}

func (c *countingProvider) HasNamedFields(id fieldset.TypeID) bool {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return c.inner.HasNamedFields(id)
}

func (c *countingProvider) DeclaredFieldNames(id fieldset.TypeID) []string {
	return c.inner.DeclaredFieldNames(id)
}

func TestCachedProvider_ReadThrough(t *testing.T) {
	cp := &countingProvider{inner: fieldset.StaticProvider{"Post": {"author"}}}
	cached := fieldset.NewCachedProvider(cp)

	for i := 0; i < 5; i++ {
		if _, err := fieldset.ValidateSource(`Post`, `map[string]any{"author": 1}`, cached); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}
	cp.mu.Lock()
	hits := cp.hits
	cp.mu.Unlock()
	if hits != 1 {
		t.Fatalf("expected 1 underlying lookup, got %d", hits)
	}
}

func TestCachedProvider_NegativeCached(t *testing.T) {
	cp := &countingProvider{inner: fieldset.StaticProvider{}}
	cached := fieldset.NewCachedProvider(cp)
	for i := 0; i < 3; i++ {
		if cached.HasNamedFields(fieldset.TypeID{Name: "Nope"}) {
			t.Fatalf("expected miss")
		}
	}
	cp.mu.Lock()
	hits := cp.hits
	cp.mu.Unlock()
	if hits != 1 {
		t.Fatalf("expected negative answer cached after 1 lookup, got %d", hits)
	}
}

func TestCachedProvider_Concurrent(t *testing.T) {
	cached := fieldset.NewCachedProvider(fieldset.StaticProvider{"Post": {"author"}})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := fieldset.ValidateSource(`Post`, `map[string]any{"author": v}`, cached); err != nil {
					t.Errorf("validate: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
