package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stylecart/backend/internal/domain"
)

// stubProvider is a scriptable CatalogProvider for aggregator tests
type stubProvider struct {
	name     string
	enabled  bool
	products []domain.Product
	err      error

	mu         sync.Mutex
	calls      int
	lastLimit  int
	lastFilter domain.ParsedFilters
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Enabled() bool { return s.enabled }

func (s *stubProvider) Search(ctx context.Context, filters domain.ParsedFilters, limit int) ([]domain.Product, error) {
	s.mu.Lock()
	s.calls++
	s.lastLimit = limit
	s.lastFilter = filters
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	if len(s.products) > limit {
		return s.products[:limit], nil
	}
	return s.products, nil
}

func product(id, title string, price float64) domain.Product {
	return domain.Product{ID: id, Title: title, Price: price, Available: true}
}

func TestSearch_MergesInRegistrationOrder(t *testing.T) {
	primary := &stubProvider{name: "primary", enabled: true, products: []domain.Product{
		product("primary:1", "Linen Shirt", 899),
	}}
	secondA := &stubProvider{name: "a", enabled: true, products: []domain.Product{
		product("a:1", "Canvas Sneakers", 1299),
	}}
	secondB := &stubProvider{name: "b", enabled: true, products: []domain.Product{
		product("b:1", "Wool Socks", 199),
	}}

	agg := NewCatalogAggregator(primary, secondA, secondB)
	results := agg.Search(context.Background(), domain.ParsedFilters{}, 10)

	wantOrder := []string{"primary:1", "a:1", "b:1"}
	if len(results) != len(wantOrder) {
		t.Fatalf("got %d results, want %d", len(results), len(wantOrder))
	}
	for i, id := range wantOrder {
		if results[i].ID != id {
			t.Errorf("results[%d].ID = %s, want %s", i, results[i].ID, id)
		}
	}
}

func TestSearch_DedupFirstWins(t *testing.T) {
	// Same title (different case) and identical price: treated as the
	// same real-world item; vendor A registered first must survive.
	vendorA := &stubProvider{name: "vendorA", enabled: true, products: []domain.Product{
		{ID: "a:1", Title: "Denim Jeans", Price: 79.99, Tags: []string{"vendor:vendorA"}},
	}}
	vendorB := &stubProvider{name: "vendorB", enabled: true, products: []domain.Product{
		{ID: "b:1", Title: "DENIM JEANS", Price: 79.99, Tags: []string{"vendor:vendorB"}},
	}}

	agg := NewCatalogAggregator(vendorA, vendorB)
	results := agg.Search(context.Background(), domain.ParsedFilters{}, 10)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 after dedup", len(results))
	}
	if results[0].Vendor() != "vendorA" {
		t.Errorf("surviving vendor = %s, want vendorA (first wins)", results[0].Vendor())
	}
}

func TestSearch_SameTitleDifferentPriceKept(t *testing.T) {
	vendorA := &stubProvider{name: "a", enabled: true, products: []domain.Product{
		product("a:1", "Denim Jeans", 79.99),
	}}
	vendorB := &stubProvider{name: "b", enabled: true, products: []domain.Product{
		product("b:1", "Denim Jeans", 89.99),
	}}

	agg := NewCatalogAggregator(vendorA, vendorB)
	results := agg.Search(context.Background(), domain.ParsedFilters{}, 10)

	if len(results) != 2 {
		t.Errorf("got %d results, want 2 (price differs, not a duplicate)", len(results))
	}
}

func TestSearch_ProviderIsolation(t *testing.T) {
	ok1 := &stubProvider{name: "ok1", enabled: true, products: []domain.Product{
		product("ok1:1", "Plain Tee", 499),
	}}
	broken := &stubProvider{name: "broken", enabled: true, err: errors.New("connection refused")}
	ok2 := &stubProvider{name: "ok2", enabled: true, products: []domain.Product{
		product("ok2:1", "Chino Pants", 1199),
	}}

	agg := NewCatalogAggregator(ok1, broken, ok2)
	results := agg.Search(context.Background(), domain.ParsedFilters{}, 10)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 from the healthy providers", len(results))
	}
	if results[0].ID != "ok1:1" || results[1].ID != "ok2:1" {
		t.Errorf("results = [%s %s], want [ok1:1 ok2:1]", results[0].ID, results[1].ID)
	}
}

func TestSearch_DisabledProviderSkipped(t *testing.T) {
	primary := &stubProvider{name: "primary", enabled: true, products: []domain.Product{
		product("primary:1", "Linen Shirt", 899),
	}}
	disabled := &stubProvider{name: "off", enabled: false, products: []domain.Product{
		product("off:1", "Ghost Item", 1),
	}}

	agg := NewCatalogAggregator(primary, disabled)
	results := agg.Search(context.Background(), domain.ParsedFilters{}, 10)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if disabled.calls != 0 {
		t.Errorf("disabled provider was called %d times, want 0", disabled.calls)
	}
}

func TestSearch_SecondariesGetHalfLimit(t *testing.T) {
	primary := &stubProvider{name: "primary", enabled: true}
	secondary := &stubProvider{name: "secondary", enabled: true}

	agg := NewCatalogAggregator(primary, secondary)
	agg.Search(context.Background(), domain.ParsedFilters{}, 9)

	if primary.lastLimit != 9 {
		t.Errorf("primary limit = %d, want 9", primary.lastLimit)
	}
	if secondary.lastLimit != 5 {
		t.Errorf("secondary limit = %d, want 5 (ceil(9/2))", secondary.lastLimit)
	}
}

func TestSearch_TruncatesToLimit(t *testing.T) {
	var items []domain.Product
	for i := 0; i < 8; i++ {
		items = append(items, product(
			"p:"+string(rune('a'+i)),
			"Item "+string(rune('a'+i)),
			float64(100+i),
		))
	}
	primary := &stubProvider{name: "primary", enabled: true, products: items}

	agg := NewCatalogAggregator(primary)
	results := agg.Search(context.Background(), domain.ParsedFilters{}, 3)

	if len(results) != 3 {
		t.Errorf("got %d results, want 3", len(results))
	}
}

func TestSearch_NoEnabledProviders(t *testing.T) {
	off := &stubProvider{name: "off", enabled: false}

	agg := NewCatalogAggregator(off)
	results := agg.Search(context.Background(), domain.ParsedFilters{}, 10)

	if results == nil {
		t.Fatal("results = nil, want empty slice")
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestTopProducts_UsesEmptyFilters(t *testing.T) {
	primary := &stubProvider{name: "primary", enabled: true, products: []domain.Product{
		product("primary:1", "Best Seller", 999),
	}}

	agg := NewCatalogAggregator(primary)
	results := agg.TopProducts(context.Background(), 5)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !primary.lastFilter.IsEmpty() {
		t.Errorf("filters passed to provider = %+v, want empty", primary.lastFilter)
	}
}

func TestSearch_DeterministicAcrossRuns(t *testing.T) {
	// Merge order must come from registration order, not completion
	// order, or first-wins dedup would flap between runs.
	fast := &stubProvider{name: "fast", enabled: true, products: []domain.Product{
		{ID: "fast:1", Title: "Denim Jeans", Price: 79.99, Tags: []string{"vendor:fast"}},
	}}
	slow := &stubProvider{name: "slow", enabled: true, products: []domain.Product{
		{ID: "slow:1", Title: "Denim Jeans", Price: 79.99, Tags: []string{"vendor:slow"}},
	}}

	agg := NewCatalogAggregator(slow, fast)
	for i := 0; i < 20; i++ {
		results := agg.Search(context.Background(), domain.ParsedFilters{}, 10)
		if len(results) != 1 || results[0].Vendor() != "slow" {
			t.Fatalf("run %d: surviving vendor = %v, want slow every run", i, results)
		}
	}
}
