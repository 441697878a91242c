package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	testhelpers "github.com/trangvu/shopmart/internal/test"
)

type orderFixture struct {
	store    *testhelpers.Store
	cart     *CartUseCase
	vouchers *VoucherUseCase
	orders   *OrderUseCase
}

func newOrderFixture(geocoder testhelpers.GeocoderStub) *orderFixture {
	store := testhelpers.NewStore()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	shipping := NewShippingUseCase(geocoder, shopOrigin)
	vouchers := NewVoucherUseCase(store.Vouchers())
	return &orderFixture{
		store:    store,
		cart:     NewCartUseCase(store.Carts(), store.Products()),
		vouchers: vouchers,
		orders:   NewOrderUseCase(store.Orders(), store.Carts(), store.Notifications(), shipping, vouchers, logger),
	}
}

func placeInput() PlaceOrderInput {
	return PlaceOrderInput{
		Address:          "12 Quang Trung, Ha Dong, Hanoi",
		PhoneNumber:      "0912345678",
		ShippingMethodID: "standard",
		DistanceFee:      2,
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")

	if err := f.cart.Add(ctx, 1, phone.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	order, err := f.orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	// subtotal 200 + method 5 + distance 2
	if order.TotalPrice != 207 {
		t.Fatalf("expected total 207, got %v", order.TotalPrice)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.Number == "" {
		t.Fatal("order number missing")
	}

	if got := f.store.ProductStock(phone.ID); got != 3 {
		t.Fatalf("expected stock 3 after placement, got %d", got)
	}

	entries, err := f.cart.Entries(ctx, 1)
	if err != nil {
		t.Fatalf("entries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("selected lines should be consumed, got %d", len(entries))
	}

	_, lines, err := f.orders.Get(ctx, 1, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Line.UnitPrice != 100 || lines[0].Line.Quantity != 2 {
		t.Fatalf("unexpected order lines: %+v", lines)
	}

	notifications, err := f.store.Notifications().ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Type != model.NotificationOrder {
		t.Fatalf("expected one order notification, got %+v", notifications)
	}
}

func TestPlaceOrderKeepsUnselectedLines(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	speaker := f.store.SeedProduct("Speaker", 50, 5, "Electronics")

	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := f.cart.Add(ctx, 1, speaker.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := f.cart.Select(ctx, 1, speaker.ID, false); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	order, err := f.orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if order.TotalPrice != 107 {
		t.Fatalf("expected total 107, got %v", order.TotalPrice)
	}

	entries, _ := f.cart.Entries(ctx, 1)
	if len(entries) != 1 || entries[0].Product.ID != speaker.ID {
		t.Fatalf("unselected line should survive, got %+v", entries)
	}
	if got := f.store.ProductStock(speaker.ID); got != 5 {
		t.Fatalf("unselected product stock must not change, got %d", got)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	if _, err := f.orders.Place(context.Background(), 1, placeInput()); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 1, "Electronics")

	if err := f.cart.Add(ctx, 1, phone.ID, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := f.orders.Place(ctx, 1, placeInput()); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// Nothing may change on failure.
	if got := f.store.ProductStock(phone.ID); got != 1 {
		t.Fatalf("stock must stay at 1, got %d", got)
	}
	entries, _ := f.cart.Entries(ctx, 1)
	if len(entries) != 1 {
		t.Fatalf("cart must stay intact, got %d lines", len(entries))
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	in := placeInput()
	in.PhoneNumber = "12ab"
	if _, err := f.orders.Place(ctx, 1, in); !errors.Is(err, domainErrors.ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}

	in = placeInput()
	in.Address = ""
	if _, err := f.orders.Place(ctx, 1, in); !errors.Is(err, domainErrors.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}

	in = placeInput()
	in.ShippingMethodID = "drone"
	if _, err := f.orders.Place(ctx, 1, in); !errors.Is(err, domainErrors.ErrInvalidShippingMethod) {
		t.Fatalf("expected ErrInvalidShippingMethod, got %v", err)
	}
}

func TestPlaceOrderWithVoucherBurnsUsage(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	voucher := f.store.SeedVoucher(model.Voucher{
		UserID:        1,
		Code:          "SAVE20",
		DiscountType:  model.DiscountPercentage,
		Target:        model.TargetProduct,
		DiscountValue: 20,
		UsageCount:    1,
		MaxUsage:      2,
		ExpiresAt:     time.Now().Add(time.Hour),
	})

	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	in := placeInput()
	in.VoucherCode = "SAVE20"
	order, err := f.orders.Place(ctx, 1, in)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	// (100 - 20) + 5 + 2
	if order.TotalPrice != 87 {
		t.Fatalf("expected total 87, got %v", order.TotalPrice)
	}
	if order.DiscountAmount != 20 {
		t.Fatalf("expected discount 20, got %v", order.DiscountAmount)
	}
	if got := f.store.VoucherUsage(voucher.ID); got != 2 {
		t.Fatalf("expected usage 2, got %d", got)
	}

	// Voucher is now capped; the next checkout rejects it.
	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := f.orders.Place(ctx, 1, in); !errors.Is(err, domainErrors.ErrVoucherLimitReached) {
		t.Fatalf("expected ErrVoucherLimitReached, got %v", err)
	}
}

func TestQuoteGeocodesAddress(t *testing.T) {
	stub := testhelpers.GeocoderStub{
		Points: map[string]model.GeoPoint{
			"12 Quang Trung, Ha Dong, Hanoi": {Lat: 21.03, Lon: 105.85}, // mid tier
		},
	}
	f := newOrderFixture(stub)
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	quote, err := f.orders.Quote(ctx, 1, QuoteInput{
		Street:           "12 Quang Trung",
		District:         "Ha Dong",
		City:             "Hanoi",
		ShippingMethodID: "standard",
	})
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quote.Breakdown.DistanceFee != 2 {
		t.Fatalf("expected distance fee 2, got %v", quote.Breakdown.DistanceFee)
	}
	if got := quote.Breakdown.GrandTotal(); got != 107 {
		t.Fatalf("expected grand total 107, got %v", got)
	}
	if quote.Method.ID != "standard" {
		t.Fatalf("unexpected method: %+v", quote.Method)
	}
}

func TestCancelRestoresStock(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	if err := f.cart.Add(ctx, 1, phone.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := f.orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if err := f.orders.Cancel(ctx, 1, order.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if got := f.store.ProductStock(phone.ID); got != 5 {
		t.Fatalf("expected stock restored to 5, got %d", got)
	}
	got, _, err := f.orders.Get(ctx, 1, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}

	// Cancel is not repeatable.
	if err := f.orders.Cancel(ctx, 1, order.ID); !errors.Is(err, domainErrors.ErrOrderNotCancellable) {
		t.Fatalf("expected ErrOrderNotCancellable, got %v", err)
	}
}

func TestCancelShippedOrderRejected(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := f.orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if err := f.orders.Advance(ctx, order.ID, model.OrderStatusShipped); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if err := f.orders.Cancel(ctx, 1, order.ID); !errors.Is(err, domainErrors.ErrOrderNotCancellable) {
		t.Fatalf("expected ErrOrderNotCancellable, got %v", err)
	}
	if got := f.store.ProductStock(phone.ID); got != 4 {
		t.Fatalf("stock must not change on rejected cancel, got %d", got)
	}
}

func TestAdvanceLifecycle(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := f.orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	// pending → delivered skips a state.
	if err := f.orders.Advance(ctx, order.ID, model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrInvalidStatusChange) {
		t.Fatalf("expected ErrInvalidStatusChange, got %v", err)
	}

	if err := f.orders.Advance(ctx, order.ID, model.OrderStatusShipped); err != nil {
		t.Fatalf("advance to shipped failed: %v", err)
	}
	if err := f.orders.Advance(ctx, order.ID, model.OrderStatusDelivered); err != nil {
		t.Fatalf("advance to delivered failed: %v", err)
	}
	if err := f.orders.Advance(ctx, order.ID, model.OrderStatusShipped); !errors.Is(err, domainErrors.ErrInvalidStatusChange) {
		t.Fatalf("delivered is terminal, got %v", err)
	}

	notifications, _ := f.store.Notifications().ListByUser(ctx, 1)
	if len(notifications) != 3 {
		t.Fatalf("expected placed+shipped+delivered notifications, got %d", len(notifications))
	}
}

func TestGetScopedToOwner(t *testing.T) {
	f := newOrderFixture(testhelpers.GeocoderStub{})
	ctx := context.Background()
	phone := f.store.SeedProduct("Phone", 100, 5, "Electronics")
	if err := f.cart.Add(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := f.orders.Place(ctx, 1, placeInput())
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if _, _, err := f.orders.Get(ctx, 2, order.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
	if err := f.orders.Cancel(ctx, 2, order.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user cancel, got %v", err)
	}
}
