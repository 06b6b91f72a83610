package usecase

import (
	"testing"

	"github.com/stylecart/backend/internal/domain"
)

func top(id string, price float64) domain.Product {
	return domain.Product{ID: id, Title: "Cotton T-Shirt", Price: price, Category: "t-shirt"}
}

func bottom(id string, price float64) domain.Product {
	return domain.Product{ID: id, Title: "Stretch Jeans", Price: price, Category: "jeans"}
}

func footwear(id string, price float64) domain.Product {
	return domain.Product{ID: id, Title: "Canvas Sneakers", Price: price, Category: "shoes"}
}

func TestCompose_BudgetFilter(t *testing.T) {
	composer := NewOutfitComposer()
	products := []domain.Product{
		top("t1", 20),
		bottom("b1", 30),
		footwear("f1", 25),
	}

	t.Run("total above budget excluded", func(t *testing.T) {
		suggestions := composer.Compose(products, 70)
		if len(suggestions) != 0 {
			t.Errorf("got %d suggestions, want 0 (75 > 70)", len(suggestions))
		}
	})

	t.Run("total within budget kept", func(t *testing.T) {
		suggestions := composer.Compose(products, 80)
		if len(suggestions) != 1 {
			t.Fatalf("got %d suggestions, want 1", len(suggestions))
		}
		if suggestions[0].TotalPrice != 75 {
			t.Errorf("TotalPrice = %v, want 75", suggestions[0].TotalPrice)
		}
	})

	t.Run("zero budget means unconstrained", func(t *testing.T) {
		suggestions := composer.Compose(products, 0)
		if len(suggestions) != 1 {
			t.Errorf("got %d suggestions, want 1", len(suggestions))
		}
	})
}

func TestCompose_SortedByAscendingTotal(t *testing.T) {
	composer := NewOutfitComposer()
	products := []domain.Product{
		top("t1", 50),
		top("t2", 10),
		bottom("b1", 40),
		bottom("b2", 20),
		footwear("f1", 30),
	}

	suggestions := composer.Compose(products, 0)
	if len(suggestions) != 4 {
		t.Fatalf("got %d suggestions, want 4 (2 tops x 2 bottoms x 1 footwear)", len(suggestions))
	}

	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].TotalPrice < suggestions[i-1].TotalPrice {
			t.Errorf("suggestions not sorted: [%d]=%v after [%d]=%v",
				i, suggestions[i].TotalPrice, i-1, suggestions[i-1].TotalPrice)
		}
	}

	// Cheapest combination first: t2 (10) + b2 (20) + f1 (30)
	if suggestions[0].Top.ID != "t2" || suggestions[0].Bottom.ID != "b2" {
		t.Errorf("cheapest outfit = %s/%s, want t2/b2", suggestions[0].Top.ID, suggestions[0].Bottom.ID)
	}
}

func TestCompose_EmptyBucketYieldsNothing(t *testing.T) {
	composer := NewOutfitComposer()

	t.Run("no footwear", func(t *testing.T) {
		products := []domain.Product{top("t1", 20), bottom("b1", 30)}
		if got := composer.Compose(products, 0); len(got) != 0 {
			t.Errorf("got %d suggestions, want 0 (no partial outfits)", len(got))
		}
	})

	t.Run("no products at all", func(t *testing.T) {
		if got := composer.Compose(nil, 0); len(got) != 0 {
			t.Errorf("got %d suggestions, want 0", len(got))
		}
	})
}

func TestCompose_CapsSuggestionsAtFive(t *testing.T) {
	composer := NewOutfitComposer()
	var products []domain.Product
	for i := 0; i < 3; i++ {
		products = append(products, top("t"+string(rune('0'+i)), float64(10+i)))
		products = append(products, bottom("b"+string(rune('0'+i)), float64(20+i)))
		products = append(products, footwear("f"+string(rune('0'+i)), float64(30+i)))
	}

	suggestions := composer.Compose(products, 0)
	if len(suggestions) != 5 {
		t.Errorf("got %d suggestions, want 5 (27 combinations capped)", len(suggestions))
	}
}

func TestCompose_BucketBoundedAtFive(t *testing.T) {
	composer := NewOutfitComposer()

	var products []domain.Product
	for i := 0; i < 8; i++ {
		products = append(products, top("t"+string(rune('0'+i)), float64(i+1)))
	}
	products = append(products, bottom("b1", 10), footwear("f1", 10))

	suggestions := composer.Compose(products, 0)

	// Only the first 5 tops participate, so the 6th-cheapest top (price
	// 6) never appears even though all suggestions fit.
	if len(suggestions) != 5 {
		t.Fatalf("got %d suggestions, want 5", len(suggestions))
	}
	for _, s := range suggestions {
		if s.Top.Price > 5 {
			t.Errorf("top %s (price %v) beyond the first-5 bucket bound", s.Top.ID, s.Top.Price)
		}
	}
}

func TestCompose_ProductMayMatchMultipleBuckets(t *testing.T) {
	composer := NewOutfitComposer()

	// "denim shirt" text matches both the top ("shirt") and bottom
	// ("denim") keyword lists.
	hybrid := domain.Product{ID: "h1", Title: "Denim Shirt", Price: 40}
	products := []domain.Product{hybrid, footwear("f1", 25)}

	suggestions := composer.Compose(products, 0)
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1 (hybrid fills top and bottom)", len(suggestions))
	}
	if suggestions[0].Top.ID != "h1" || suggestions[0].Bottom.ID != "h1" {
		t.Errorf("hybrid should occupy both slots, got top=%s bottom=%s",
			suggestions[0].Top.ID, suggestions[0].Bottom.ID)
	}
	if suggestions[0].TotalPrice != 105 {
		t.Errorf("TotalPrice = %v, want 105 (hybrid counted per slot)", suggestions[0].TotalPrice)
	}
}

func TestCompose_FixedLabel(t *testing.T) {
	composer := NewOutfitComposer()
	products := []domain.Product{top("t1", 20), bottom("b1", 30), footwear("f1", 25)}

	suggestions := composer.Compose(products, 0)
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}
	if suggestions[0].Label != "Top + Jeans + Sneakers" {
		t.Errorf("Label = %q, want %q", suggestions[0].Label, "Top + Jeans + Sneakers")
	}
}

func TestCompose_TiesPreserveGenerationOrder(t *testing.T) {
	composer := NewOutfitComposer()
	products := []domain.Product{
		top("t1", 10),
		top("t2", 10),
		bottom("b1", 20),
		footwear("f1", 30),
	}

	suggestions := composer.Compose(products, 0)
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
	// Equal totals: cross-product order (top-major) is the tie-break
	if suggestions[0].Top.ID != "t1" || suggestions[1].Top.ID != "t2" {
		t.Errorf("tie order = [%s %s], want [t1 t2]", suggestions[0].Top.ID, suggestions[1].Top.ID)
	}
}
