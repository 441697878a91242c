// Package facadetest provides controllable facade stubs for HTTP handler,
// router and worker tests.
package facadetest

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/usecase"
)

// AuthStub provides controllable behaviour for auth endpoints.
type AuthStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn   func(string) (int64, error)
	ProfileFn      func(context.Context, int64) (*model.User, error)
}

func (s AuthStub) Register(ctx context.Context, email, fullName, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, fullName, password)
	}
	return &model.User{ID: 1, Email: email, FullName: fullName}, "token", nil
}

func (s AuthStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

func (s AuthStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

func (s AuthStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com"}, nil
}

// CatalogStub provides controllable behaviour for catalog endpoints.
type CatalogStub struct {
	ProductsFn    func(context.Context, model.ProductFilter) ([]model.Product, error)
	ProductFn     func(context.Context, int64) (*model.Product, error)
	SearchFn      func(context.Context, string, int, int) ([]model.RatedProduct, error)
	SuggestionsFn func(context.Context, string, int) ([]string, error)
	CreateFn      func(context.Context, *model.Product) (*model.Product, error)
}

func (s CatalogStub) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: 1, Name: "Phone", Price: 500}}, nil
}

func (s CatalogStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Phone", Price: 500}, nil
}

func (s CatalogStub) SearchProducts(ctx context.Context, query string, limit, offset int) ([]model.RatedProduct, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query, limit, offset)
	}
	return nil, nil
}

func (s CatalogStub) ProductSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	if s.SuggestionsFn != nil {
		return s.SuggestionsFn(ctx, prefix, limit)
	}
	return nil, nil
}

func (s CatalogStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

// CartStub provides controllable behaviour for cart endpoints.
type CartStub struct {
	EntriesFn func(context.Context, int64) ([]model.CartEntry, error)
	AddFn     func(context.Context, int64, int64, int) error
	UpdateFn  func(context.Context, int64, int64, int) error
	SelectFn  func(context.Context, int64, int64, bool) error
	RemoveFn  func(context.Context, int64, int64) error
	ClearFn   func(context.Context, int64) error
}

func (s CartStub) CartEntries(ctx context.Context, userID int64) ([]model.CartEntry, error) {
	if s.EntriesFn != nil {
		return s.EntriesFn(ctx, userID)
	}
	return nil, nil
}

func (s CartStub) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartStub) UpdateCartQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s CartStub) SelectCartItem(ctx context.Context, userID, productID int64, selected bool) error {
	if s.SelectFn != nil {
		return s.SelectFn(ctx, userID, productID, selected)
	}
	return nil
}

func (s CartStub) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

func (s CartStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// OrderStub provides controllable behaviour for checkout and order endpoints.
type OrderStub struct {
	QuoteFn   func(context.Context, int64, usecase.QuoteInput) (*usecase.Quote, error)
	PlaceFn   func(context.Context, int64, usecase.PlaceOrderInput) (*model.Order, error)
	OrdersFn  func(context.Context, int64) ([]model.Order, error)
	OrderFn   func(context.Context, int64, int64) (*model.Order, []model.OrderEntry, error)
	CancelFn  func(context.Context, int64, int64) error
	AdvanceFn func(context.Context, int64, model.OrderStatus) error
	MethodsFn func() []model.ShippingMethod
}

func (s OrderStub) QuoteOrder(ctx context.Context, userID int64, in usecase.QuoteInput) (*usecase.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, userID, in)
	}
	return &usecase.Quote{
		Breakdown:  usecase.PriceBreakdown{Subtotal: 100, MethodFee: 5, DistanceFee: 2},
		DistanceKm: 8,
		Method:     model.ShippingMethod{ID: "standard", Name: "Standard", Price: 5},
	}, nil
}

func (s OrderStub) PlaceOrder(ctx context.Context, userID int64, in usecase.PlaceOrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, in)
	}
	return &model.Order{ID: 1, UserID: userID, Number: "ord-1", Status: model.OrderStatusPending}, nil
}

func (s OrderStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, Number: "ord-1", Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}}, nil
}

func (s OrderStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderEntry, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Number: "ord-1"}, nil, nil
}

func (s OrderStub) CancelOrder(ctx context.Context, userID, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, userID, orderID)
	}
	return nil
}

func (s OrderStub) AdvanceOrder(ctx context.Context, orderID int64, to model.OrderStatus) error {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, orderID, to)
	}
	return nil
}

func (s OrderStub) ShippingMethods() []model.ShippingMethod {
	if s.MethodsFn != nil {
		return s.MethodsFn()
	}
	return []model.ShippingMethod{{ID: "standard", Name: "Standard", Price: 5}}
}

// VoucherStub provides controllable behaviour for voucher endpoints.
type VoucherStub struct {
	ListFn     func(context.Context, int64) ([]model.Voucher, error)
	ValidateFn func(context.Context, int64, string) (*model.Voucher, error)
	GrantFn    func(context.Context, *model.Voucher) (*model.Voucher, error)
}

func (s VoucherStub) Vouchers(ctx context.Context, userID int64) ([]model.Voucher, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

func (s VoucherStub) ValidateVoucher(ctx context.Context, userID int64, code string) (*model.Voucher, error) {
	if s.ValidateFn != nil {
		return s.ValidateFn(ctx, userID, code)
	}
	return &model.Voucher{ID: 1, UserID: userID, Code: code, MaxUsage: 1}, nil
}

func (s VoucherStub) GrantVoucher(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error) {
	if s.GrantFn != nil {
		return s.GrantFn(ctx, voucher)
	}
	granted := *voucher
	granted.ID = 1
	return &granted, nil
}

// ReviewStub provides controllable behaviour for review endpoints.
type ReviewStub struct {
	CreateFn func(context.Context, *model.Review) (*model.Review, error)
	ListFn   func(context.Context, int64) ([]model.Review, float64, error)
}

func (s ReviewStub) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review)
	}
	created := *review
	created.ID = 1
	return &created, nil
}

func (s ReviewStub) ProductReviews(ctx context.Context, productID int64) ([]model.Review, float64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, productID)
	}
	return nil, 0, nil
}

// WishlistStub provides controllable behaviour for wishlist endpoints.
type WishlistStub struct {
	AddFn    func(context.Context, int64, int64) error
	RemoveFn func(context.Context, int64, int64) error
	ListFn   func(context.Context, int64) ([]model.Product, error)
}

func (s WishlistStub) AddToWishlist(ctx context.Context, userID, productID int64) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	return nil
}

func (s WishlistStub) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

func (s WishlistStub) Wishlist(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// ChatStub provides controllable behaviour for the assistant endpoint.
type ChatStub struct {
	ReplyFn func(context.Context, string, bool) (string, error)
}

func (s ChatStub) ChatReply(ctx context.Context, message string, loggedIn bool) (string, error) {
	if s.ReplyFn != nil {
		return s.ReplyFn(ctx, message, loggedIn)
	}
	return "Here are some products you might like", nil
}

// NotificationStub provides controllable behaviour for notification endpoints.
type NotificationStub struct {
	ListFn     func(context.Context, int64) ([]model.Notification, error)
	UnreadFn   func(context.Context, int64) (int, error)
	MarkReadFn func(context.Context, int64, int64) error
	MarkAllFn  func(context.Context, int64) error
}

func (s NotificationStub) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

func (s NotificationStub) UnreadNotifications(ctx context.Context, userID int64) (int, error) {
	if s.UnreadFn != nil {
		return s.UnreadFn(ctx, userID)
	}
	return 0, nil
}

func (s NotificationStub) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, userID, notificationID)
	}
	return nil
}

func (s NotificationStub) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	if s.MarkAllFn != nil {
		return s.MarkAllFn(ctx, userID)
	}
	return nil
}

// AddressStub provides controllable behaviour for address endpoints.
type AddressStub struct {
	CreateFn     func(context.Context, *model.Address) (*model.Address, error)
	ListFn       func(context.Context, int64) ([]model.Address, error)
	SetDefaultFn func(context.Context, int64, int64) error
	DeleteFn     func(context.Context, int64, int64) error
}

func (s AddressStub) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, address)
	}
	created := *address
	created.ID = 1
	return &created, nil
}

func (s AddressStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

func (s AddressStub) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	if s.SetDefaultFn != nil {
		return s.SetDefaultFn(ctx, userID, addressID)
	}
	return nil
}

func (s AddressStub) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, addressID)
	}
	return nil
}

// CardStub provides controllable behaviour for payment card endpoints.
type CardStub struct {
	SaveFn   func(context.Context, int64, string, string, int, int) (*model.PaymentCard, error)
	ListFn   func(context.Context, int64) ([]model.PaymentCard, error)
	DeleteFn func(context.Context, int64, int64) error
}

func (s CardStub) SaveCard(ctx context.Context, userID int64, holder, number string, expMonth, expYear int) (*model.PaymentCard, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, userID, holder, number, expMonth, expYear)
	}
	return &model.PaymentCard{ID: 1, UserID: userID, Holder: holder, LastFour: "6467", ExpMonth: expMonth, ExpYear: expYear}, nil
}

func (s CardStub) Cards(ctx context.Context, userID int64) ([]model.PaymentCard, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

func (s CardStub) DeleteCard(ctx context.Context, userID, cardID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, cardID)
	}
	return nil
}

// ShopStub aggregates the per-concern stubs into the full facade surface.
type ShopStub struct {
	AuthStub
	CatalogStub
	CartStub
	OrderStub
	VoucherStub
	ReviewStub
	WishlistStub
	ChatStub
	NotificationStub
	AddressStub
	CardStub
}

// PublishedCall records one notification handed to the sink.
type PublishedCall struct {
	ID     int64
	UserID int64
}

// SourceStub feeds preconfigured outbox batches to the dispatcher and records
// which leases get confirmed.
type SourceStub struct {
	Batches         [][]model.Notification
	BatchesFn       func(context.Context, int) ([]model.Notification, error)
	MarkPublishedFn func(context.Context, int64) error

	callCount int32
	mu        sync.Mutex
	marked    []int64
}

// NotificationsForPublishing returns batches from the configured queue.
func (s *SourceStub) NotificationsForPublishing(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.BatchesFn != nil {
		return s.BatchesFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.callCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// MarkNotificationPublished records the confirmation or delegates to the
// configured function.
func (s *SourceStub) MarkNotificationPublished(ctx context.Context, notificationID int64) error {
	if s.MarkPublishedFn != nil {
		return s.MarkPublishedFn(ctx, notificationID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, notificationID)
	return nil
}

// MarkedPublished returns a snapshot of confirmed notification IDs.
func (s *SourceStub) MarkedPublished() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.marked))
	copy(out, s.marked)
	return out
}

// SinkStub records published notifications.
type SinkStub struct {
	PublishFn func(context.Context, *model.Notification) error

	mu        sync.Mutex
	Published []PublishedCall
}

// Publish records the call or delegates to the configured function.
func (s *SinkStub) Publish(ctx context.Context, notification *model.Notification) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, notification)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, PublishedCall{ID: notification.ID, UserID: notification.UserID})
	return nil
}

// PublishedCalls returns a snapshot of recorded publishes.
func (s *SinkStub) PublishedCalls() []PublishedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PublishedCall, len(s.Published))
	copy(out, s.Published)
	return out
}
