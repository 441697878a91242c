package usecase

import (
	"context"
	"testing"

	"github.com/trangvu/shopmart/internal/domain/model"
	testhelpers "github.com/trangvu/shopmart/internal/test"
)

func seededCatalog(t *testing.T) (*CatalogUseCase, *testhelpers.Store) {
	t.Helper()
	store := testhelpers.NewStore()
	store.SeedProduct("Wireless Earbuds", 49.99, 30, "Electronics")
	store.SeedProduct("Smart Watch", 199.99, 12, "Electronics")
	store.SeedProduct("Linen Shirt", 29.99, 80, "Fashion")
	return NewCatalogUseCase(store.Products()), store
}

func TestCatalogListByCategory(t *testing.T) {
	uc, _ := seededCatalog(t)
	products, err := uc.List(context.Background(), model.ProductFilter{Category: "Electronics"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 electronics, got %d", len(products))
	}
}

func TestCatalogListPriceRange(t *testing.T) {
	uc, _ := seededCatalog(t)
	min, max := 40.0, 60.0
	products, err := uc.List(context.Background(), model.ProductFilter{MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Wireless Earbuds" {
		t.Fatalf("unexpected price-range result: %+v", products)
	}
}

func TestCatalogListSortWhitelist(t *testing.T) {
	uc, _ := seededCatalog(t)

	products, err := uc.List(context.Background(), model.ProductFilter{SortBy: "price"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if products[0].Name != "Linen Shirt" {
		t.Fatalf("expected cheapest first, got %+v", products[0])
	}

	// Unknown sort keys must not pass through to storage.
	products, err = uc.List(context.Background(), model.ProductFilter{SortBy: "name; DROP TABLE products"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("fallback sort should still list everything, got %d", len(products))
	}
}

func TestCatalogListPagination(t *testing.T) {
	uc, _ := seededCatalog(t)
	products, err := uc.List(context.Background(), model.ProductFilter{SortBy: "price", Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 || products[0].Name != "Wireless Earbuds" {
		t.Fatalf("unexpected page: %+v", products)
	}
}

func TestCatalogSearch(t *testing.T) {
	uc, _ := seededCatalog(t)

	rated, err := uc.Search(context.Background(), "watch", 10, 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rated) != 1 || rated[0].Product.Name != "Smart Watch" {
		t.Fatalf("unexpected search result: %+v", rated)
	}

	if rated, _ := uc.Search(context.Background(), "   ", 10, 0); rated != nil {
		t.Fatalf("blank query should return nothing, got %+v", rated)
	}
}

func TestCatalogSuggestions(t *testing.T) {
	uc, _ := seededCatalog(t)
	suggestions, err := uc.Suggestions(context.Background(), "smart", 5)
	if err != nil {
		t.Fatalf("suggestions failed: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0] != "Smart Watch" {
		t.Fatalf("unexpected suggestions: %v", suggestions)
	}
}

func TestCatalogCreateAndCount(t *testing.T) {
	uc, _ := seededCatalog(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, &model.Product{Name: "Desk Lamp", Price: 25, Stock: 10, Category: "Home"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("product not assigned an ID")
	}

	count, err := uc.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 products, got %d", count)
	}
}
