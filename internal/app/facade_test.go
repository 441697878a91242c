package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	testhelpers "github.com/trangvu/shopmart/internal/test"
	"github.com/trangvu/shopmart/internal/usecase"
)

var shopOrigin = model.GeoPoint{Lat: 20.9626, Lon: 105.7460}

func newFacade() (*ShopFacade, *testhelpers.Store) {
	store := testhelpers.NewStore()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(store.Users(), testhelpers.HasherStub{}, strategy)
	catalogUC := usecase.NewCatalogUseCase(store.Products())
	cartUC := usecase.NewCartUseCase(store.Carts(), store.Products())
	voucherUC := usecase.NewVoucherUseCase(store.Vouchers())
	shippingUC := usecase.NewShippingUseCase(testhelpers.GeocoderStub{
		Points: map[string]model.GeoPoint{
			"12 Quang Trung, Ha Dong, Hanoi": {Lat: 20.9709, Lon: 105.7791},
		},
	}, shopOrigin)
	orderUC := usecase.NewOrderUseCase(store.Orders(), store.Carts(), store.Notifications(), shippingUC, voucherUC, logger)
	reviewUC := usecase.NewReviewUseCase(store.Reviews(), store.Orders())
	wishlistUC := usecase.NewWishlistUseCase(store.Wishlists(), store.Products())
	chatUC := usecase.NewChatUseCase(store.Products())
	notificationUC := usecase.NewNotificationUseCase(store.Notifications())
	addressUC := usecase.NewAddressUseCase(store.Addresses())
	paymentUC := usecase.NewPaymentUseCase(store.Cards())

	facade := NewShopFacade(authUC, catalogUC, cartUC, orderUC, voucherUC, reviewUC,
		wishlistUC, chatUC, notificationUC, addressUC, paymentUC, shippingUC)
	return facade, store
}

func TestShopFacadeAuth(t *testing.T) {
	facade, _ := newFacade()
	ctx := context.Background()

	user, token, err := facade.Register(ctx, "ann@example.com", "Ann", "long-password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if user.Email != "ann@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, _, err := facade.Authenticate(ctx, "ann@example.com", "long-password"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	profile, err := facade.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if profile.Email != "ann@example.com" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestShopFacadeCatalogAndCart(t *testing.T) {
	facade, store := newFacade()
	ctx := context.Background()
	phone := store.SeedProduct("Phone", 500, 10, "Electronics")

	products, err := facade.Products(ctx, model.ProductFilter{Category: "Electronics"})
	if err != nil || len(products) != 1 {
		t.Fatalf("expected one product, got %v err=%v", products, err)
	}

	got, err := facade.Product(ctx, phone.ID)
	if err != nil || got.Name != "Phone" {
		t.Fatalf("unexpected product %v err=%v", got, err)
	}

	if err := facade.AddToCart(ctx, 1, phone.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	entries, err := facade.CartEntries(ctx, 1)
	if err != nil || len(entries) != 1 || entries[0].Line.Quantity != 2 {
		t.Fatalf("unexpected cart entries %v err=%v", entries, err)
	}

	if err := facade.UpdateCartQuantity(ctx, 1, phone.ID, 3); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if err := facade.SelectCartItem(ctx, 1, phone.ID, false); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := facade.RemoveFromCart(ctx, 1, phone.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
}

func TestShopFacadeCheckoutFlow(t *testing.T) {
	facade, store := newFacade()
	ctx := context.Background()
	phone := store.SeedProduct("Phone", 100, 5, "Electronics")

	if err := facade.AddToCart(ctx, 1, phone.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	quote, err := facade.QuoteOrder(ctx, 1, usecase.QuoteInput{
		Street:           "12 Quang Trung",
		District:         "Ha Dong",
		City:             "Hanoi",
		ShippingMethodID: "standard",
	})
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quote.Breakdown.Subtotal != 200 {
		t.Fatalf("expected subtotal 200, got %v", quote.Breakdown.Subtotal)
	}

	order, err := facade.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{
		Address:          "12 Quang Trung, Ha Dong, Hanoi",
		PhoneNumber:      "0912345678",
		ShippingMethodID: "standard",
		DistanceFee:      quote.Breakdown.DistanceFee,
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}

	orders, err := facade.Orders(ctx, 1)
	if err != nil || len(orders) != 1 {
		t.Fatalf("expected one order, got %v err=%v", orders, err)
	}

	detail, lines, err := facade.Order(ctx, 1, order.ID)
	if err != nil || detail.ID != order.ID || len(lines) != 1 {
		t.Fatalf("unexpected order detail %v lines=%v err=%v", detail, lines, err)
	}

	if err := facade.AdvanceOrder(ctx, order.ID, model.OrderStatusShipped); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if err := facade.AdvanceOrder(ctx, order.ID, model.OrderStatusPending); !errors.Is(err, domainErrors.ErrInvalidStatusChange) {
		t.Fatalf("expected invalid status change, got %v", err)
	}
	if err := facade.CancelOrder(ctx, 1, order.ID); !errors.Is(err, domainErrors.ErrOrderNotCancellable) {
		t.Fatalf("expected order not cancellable, got %v", err)
	}

	if methods := facade.ShippingMethods(); len(methods) == 0 {
		t.Fatal("expected shipping methods")
	}
}

func TestShopFacadeReviewsAfterDelivery(t *testing.T) {
	facade, store := newFacade()
	ctx := context.Background()
	phone := store.SeedProduct("Phone", 100, 5, "Electronics")

	if err := facade.AddToCart(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	order, err := facade.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{
		Address:          "12 Quang Trung, Ha Dong, Hanoi",
		PhoneNumber:      "0912345678",
		ShippingMethodID: "standard",
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	review := &model.Review{UserID: 1, ProductID: phone.ID, OrderID: order.ID, Rating: 5, Comment: "great"}
	if _, err := facade.CreateReview(ctx, review); !errors.Is(err, domainErrors.ErrReviewNotAllowed) {
		t.Fatalf("expected review rejected before delivery, got %v", err)
	}

	if err := facade.AdvanceOrder(ctx, order.ID, model.OrderStatusShipped); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if err := facade.AdvanceOrder(ctx, order.ID, model.OrderStatusDelivered); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if _, err := facade.CreateReview(ctx, review); err != nil {
		t.Fatalf("create review failed: %v", err)
	}

	reviews, avg, err := facade.ProductReviews(ctx, phone.ID)
	if err != nil || len(reviews) != 1 || avg != 5 {
		t.Fatalf("unexpected reviews %v avg=%v err=%v", reviews, avg, err)
	}
}

func TestShopFacadeWishlistAndChat(t *testing.T) {
	facade, store := newFacade()
	ctx := context.Background()
	phone := store.SeedProduct("Phone", 500, 10, "Electronics")

	if err := facade.AddToWishlist(ctx, 1, phone.ID); err != nil {
		t.Fatalf("wishlist add failed: %v", err)
	}
	saved, err := facade.Wishlist(ctx, 1)
	if err != nil || len(saved) != 1 {
		t.Fatalf("unexpected wishlist %v err=%v", saved, err)
	}
	if err := facade.RemoveFromWishlist(ctx, 1, phone.ID); err != nil {
		t.Fatalf("wishlist remove failed: %v", err)
	}

	reply, err := facade.ChatReply(ctx, "suggest electronics", true)
	if err != nil || reply == "" {
		t.Fatalf("unexpected chat reply %q err=%v", reply, err)
	}
}

func TestShopFacadeNotificationsOutbox(t *testing.T) {
	facade, store := newFacade()
	ctx := context.Background()
	phone := store.SeedProduct("Phone", 100, 5, "Electronics")

	if err := facade.AddToCart(ctx, 1, phone.ID, 1); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if _, err := facade.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{
		Address:          "12 Quang Trung, Ha Dong, Hanoi",
		PhoneNumber:      "0912345678",
		ShippingMethodID: "standard",
	}); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	notifications, err := facade.Notifications(ctx, 1)
	if err != nil || len(notifications) != 1 {
		t.Fatalf("expected one notification, got %v err=%v", notifications, err)
	}

	count, err := facade.UnreadNotifications(ctx, 1)
	if err != nil || count != 1 {
		t.Fatalf("expected one unread, got %d err=%v", count, err)
	}

	batch, err := facade.NotificationsForPublishing(ctx, 10)
	if err != nil || len(batch) != 1 {
		t.Fatalf("unexpected publishing batch %v err=%v", batch, err)
	}
	if batch[0].Published {
		t.Fatalf("notification published before delivery confirmation: %+v", batch[0])
	}
	// The lease keeps the row out of subsequent batches while in flight.
	again, err := facade.NotificationsForPublishing(ctx, 10)
	if err != nil || len(again) != 0 {
		t.Fatalf("expected empty second batch, got %v err=%v", again, err)
	}
	if err := facade.MarkNotificationPublished(ctx, batch[0].ID); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	if err := facade.MarkNotificationPublished(ctx, batch[0].ID+100); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown notification, got %v", err)
	}

	// A different user cannot touch this notification.
	if err := facade.MarkNotificationRead(ctx, 2, notifications[0].ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign notification, got %v", err)
	}
	if err := facade.MarkNotificationRead(ctx, 1, notifications[0].ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if err := facade.MarkAllNotificationsRead(ctx, 1); err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	count, err = facade.UnreadNotifications(ctx, 1)
	if err != nil || count != 0 {
		t.Fatalf("expected zero unread, got %d err=%v", count, err)
	}
}

func TestShopFacadeVouchers(t *testing.T) {
	facade, _ := newFacade()
	ctx := context.Background()

	granted, err := facade.GrantVoucher(ctx, &model.Voucher{
		UserID:        1,
		Code:          "SAVE20",
		Title:         "20% off",
		DiscountType:  model.DiscountPercentage,
		Target:        model.TargetProduct,
		DiscountValue: 20,
		MaxUsage:      1,
	})
	if err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	wallet, err := facade.Vouchers(ctx, 1)
	if err != nil || len(wallet) != 1 {
		t.Fatalf("unexpected wallet %v err=%v", wallet, err)
	}

	valid, err := facade.ValidateVoucher(ctx, 1, "SAVE20")
	if err != nil || valid.ID != granted.ID {
		t.Fatalf("unexpected validation %v err=%v", valid, err)
	}
	if _, err := facade.ValidateVoucher(ctx, 1, "NOPE"); !errors.Is(err, domainErrors.ErrInvalidVoucher) {
		t.Fatalf("expected invalid voucher, got %v", err)
	}

	if _, err := facade.GrantVoucher(ctx, &model.Voucher{
		UserID:       1,
		Code:         "BROKEN",
		DiscountType: "BOGOF",
		Target:       model.TargetProduct,
	}); !errors.Is(err, domainErrors.ErrInvalidVoucher) {
		t.Fatalf("expected invalid voucher for unknown discount type, got %v", err)
	}
}

func TestShopFacadeAddressesAndCards(t *testing.T) {
	facade, _ := newFacade()
	ctx := context.Background()

	address, err := facade.CreateAddress(ctx, &model.Address{
		UserID:      1,
		Recipient:   "Ann",
		Line:        "12 Quang Trung",
		District:    "Ha Dong",
		City:        "Hanoi",
		PhoneNumber: "0912345678",
	})
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	if err := facade.SetDefaultAddress(ctx, 1, address.ID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}
	addresses, err := facade.Addresses(ctx, 1)
	if err != nil || len(addresses) != 1 || !addresses[0].IsDefault {
		t.Fatalf("unexpected addresses %v err=%v", addresses, err)
	}
	if err := facade.DeleteAddress(ctx, 1, address.ID); err != nil {
		t.Fatalf("delete address failed: %v", err)
	}

	card, err := facade.SaveCard(ctx, 1, "ANN NGUYEN", "4539-1488-0343-6467", 12, 2030)
	if err != nil {
		t.Fatalf("save card failed: %v", err)
	}
	if card.LastFour != "6467" {
		t.Fatalf("expected masked card, got %+v", card)
	}
	cards, err := facade.Cards(ctx, 1)
	if err != nil || len(cards) != 1 {
		t.Fatalf("unexpected cards %v err=%v", cards, err)
	}
	if err := facade.DeleteCard(ctx, 1, card.ID); err != nil {
		t.Fatalf("delete card failed: %v", err)
	}
}
