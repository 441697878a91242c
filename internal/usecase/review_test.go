package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	testhelpers "github.com/trangvu/shopmart/internal/test"
)

// deliveredOrder places an order for user 1 containing the product and moves
// it to delivered.
func deliveredOrder(t *testing.T, store *testhelpers.Store, productID int64) *model.Order {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cart := NewCartUseCase(store.Carts(), store.Products())
	shipping := NewShippingUseCase(testhelpers.GeocoderStub{}, shopOrigin)
	vouchers := NewVoucherUseCase(store.Vouchers())
	orders := NewOrderUseCase(store.Orders(), store.Carts(), store.Notifications(), shipping, vouchers, logger)

	if err := cart.Add(ctx, 1, productID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if err := orders.Advance(ctx, order.ID, model.OrderStatusShipped); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if err := orders.Advance(ctx, order.ID, model.OrderStatusDelivered); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	return order
}

func TestReviewCreateAfterDelivery(t *testing.T) {
	store := testhelpers.NewStore()
	phone := store.SeedProduct("Phone", 100, 5, "Electronics")
	order := deliveredOrder(t, store, phone.ID)

	uc := NewReviewUseCase(store.Reviews(), store.Orders())
	review, err := uc.Create(context.Background(), &model.Review{
		UserID:    1,
		ProductID: phone.ID,
		OrderID:   order.ID,
		Rating:    5,
		Comment:   "great phone",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if review.ID == 0 {
		t.Fatal("review not persisted")
	}

	reviews, avg, err := uc.ListByProduct(context.Background(), phone.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reviews) != 1 || avg != 5 {
		t.Fatalf("unexpected reviews: %+v avg %v", reviews, avg)
	}
}

func TestReviewDuplicateRejected(t *testing.T) {
	store := testhelpers.NewStore()
	phone := store.SeedProduct("Phone", 100, 5, "Electronics")
	order := deliveredOrder(t, store, phone.ID)

	uc := NewReviewUseCase(store.Reviews(), store.Orders())
	r := &model.Review{UserID: 1, ProductID: phone.ID, OrderID: order.ID, Rating: 4}
	if _, err := uc.Create(context.Background(), r); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := uc.Create(context.Background(), r); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	uc := NewReviewUseCase(testhelpers.NewStore().Reviews(), testhelpers.NewStore().Orders())
	for _, rating := range []int{0, 6, -1} {
		if _, err := uc.Create(context.Background(), &model.Review{UserID: 1, ProductID: 1, OrderID: 1, Rating: rating}); !errors.Is(err, domainErrors.ErrInvalidRating) {
			t.Fatalf("rating %d should be rejected, got %v", rating, err)
		}
	}
}

func TestReviewRequiresOwnDeliveredOrder(t *testing.T) {
	store := testhelpers.NewStore()
	phone := store.SeedProduct("Phone", 100, 5, "Electronics")
	order := deliveredOrder(t, store, phone.ID)

	uc := NewReviewUseCase(store.Reviews(), store.Orders())

	// Another user cannot review against this order.
	if _, err := uc.Create(context.Background(), &model.Review{UserID: 2, ProductID: phone.ID, OrderID: order.ID, Rating: 3}); !errors.Is(err, domainErrors.ErrReviewNotAllowed) {
		t.Fatalf("expected ErrReviewNotAllowed, got %v", err)
	}

	// A product outside the order is rejected.
	other := store.SeedProduct("Speaker", 50, 5, "Electronics")
	if _, err := uc.Create(context.Background(), &model.Review{UserID: 1, ProductID: other.ID, OrderID: order.ID, Rating: 3}); !errors.Is(err, domainErrors.ErrReviewNotAllowed) {
		t.Fatalf("expected ErrReviewNotAllowed, got %v", err)
	}
}

func TestReviewPendingOrderRejected(t *testing.T) {
	store := testhelpers.NewStore()
	phone := store.SeedProduct("Phone", 100, 5, "Electronics")
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cart := NewCartUseCase(store.Carts(), store.Products())
	shipping := NewShippingUseCase(testhelpers.GeocoderStub{}, shopOrigin)
	orders := NewOrderUseCase(store.Orders(), store.Carts(), store.Notifications(), shipping, NewVoucherUseCase(store.Vouchers()), logger)

	if err := cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	uc := NewReviewUseCase(store.Reviews(), store.Orders())
	if _, err := uc.Create(ctx, &model.Review{UserID: 1, ProductID: phone.ID, OrderID: order.ID, Rating: 4}); !errors.Is(err, domainErrors.ErrReviewNotAllowed) {
		t.Fatalf("expected ErrReviewNotAllowed for pending order, got %v", err)
	}
}
