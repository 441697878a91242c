package app

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/usecase"
)

// ShopFacade aggregates the use cases behind a single surface consumed by
// the HTTP handlers and the notification dispatcher.
type ShopFacade struct {
	auth          *usecase.AuthUseCase
	catalog       *usecase.CatalogUseCase
	cart          *usecase.CartUseCase
	orders        *usecase.OrderUseCase
	vouchers      *usecase.VoucherUseCase
	reviews       *usecase.ReviewUseCase
	wishlist      *usecase.WishlistUseCase
	chat          *usecase.ChatUseCase
	notifications *usecase.NotificationUseCase
	addresses     *usecase.AddressUseCase
	payments      *usecase.PaymentUseCase
	shipping      *usecase.ShippingUseCase
}

// NewShopFacade constructs the facade over the full use case set.
func NewShopFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	vouchers *usecase.VoucherUseCase,
	reviews *usecase.ReviewUseCase,
	wishlist *usecase.WishlistUseCase,
	chat *usecase.ChatUseCase,
	notifications *usecase.NotificationUseCase,
	addresses *usecase.AddressUseCase,
	payments *usecase.PaymentUseCase,
	shipping *usecase.ShippingUseCase,
) *ShopFacade {
	return &ShopFacade{
		auth:          auth,
		catalog:       catalog,
		cart:          cart,
		orders:        orders,
		vouchers:      vouchers,
		reviews:       reviews,
		wishlist:      wishlist,
		chat:          chat,
		notifications: notifications,
		addresses:     addresses,
		payments:      payments,
		shipping:      shipping,
	}
}

func (f *ShopFacade) Register(ctx context.Context, email, fullName, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, fullName, password)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *ShopFacade) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return f.catalog.List(ctx, filter)
}

func (f *ShopFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *ShopFacade) SearchProducts(ctx context.Context, query string, limit, offset int) ([]model.RatedProduct, error) {
	return f.catalog.Search(ctx, query, limit, offset)
}

func (f *ShopFacade) ProductSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	return f.catalog.Suggestions(ctx, prefix, limit)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *ShopFacade) CartEntries(ctx context.Context, userID int64) ([]model.CartEntry, error) {
	return f.cart.Entries(ctx, userID)
}

func (f *ShopFacade) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.Add(ctx, userID, productID, quantity)
}

func (f *ShopFacade) UpdateCartQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.UpdateQuantity(ctx, userID, productID, quantity)
}

func (f *ShopFacade) SelectCartItem(ctx context.Context, userID, productID int64, selected bool) error {
	return f.cart.Select(ctx, userID, productID, selected)
}

func (f *ShopFacade) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	return f.cart.Remove(ctx, userID, productID)
}

func (f *ShopFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *ShopFacade) QuoteOrder(ctx context.Context, userID int64, in usecase.QuoteInput) (*usecase.Quote, error) {
	return f.orders.Quote(ctx, userID, in)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, userID int64, in usecase.PlaceOrderInput) (*model.Order, error) {
	return f.orders.Place(ctx, userID, in)
}

func (f *ShopFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderEntry, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *ShopFacade) CancelOrder(ctx context.Context, userID, orderID int64) error {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *ShopFacade) AdvanceOrder(ctx context.Context, orderID int64, to model.OrderStatus) error {
	return f.orders.Advance(ctx, orderID, to)
}

func (f *ShopFacade) ShippingMethods() []model.ShippingMethod {
	return f.shipping.Methods()
}

func (f *ShopFacade) Vouchers(ctx context.Context, userID int64) ([]model.Voucher, error) {
	return f.vouchers.ListByUser(ctx, userID)
}

func (f *ShopFacade) ValidateVoucher(ctx context.Context, userID int64, code string) (*model.Voucher, error) {
	return f.vouchers.Validate(ctx, userID, code)
}

func (f *ShopFacade) GrantVoucher(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error) {
	return f.vouchers.Grant(ctx, voucher)
}

func (f *ShopFacade) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	return f.reviews.Create(ctx, review)
}

func (f *ShopFacade) ProductReviews(ctx context.Context, productID int64) ([]model.Review, float64, error) {
	return f.reviews.ListByProduct(ctx, productID)
}

func (f *ShopFacade) AddToWishlist(ctx context.Context, userID, productID int64) error {
	return f.wishlist.Add(ctx, userID, productID)
}

func (f *ShopFacade) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	return f.wishlist.Remove(ctx, userID, productID)
}

func (f *ShopFacade) Wishlist(ctx context.Context, userID int64) ([]model.Product, error) {
	return f.wishlist.ListByUser(ctx, userID)
}

func (f *ShopFacade) ChatReply(ctx context.Context, message string, loggedIn bool) (string, error) {
	return f.chat.Reply(ctx, message, loggedIn)
}

func (f *ShopFacade) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	return f.notifications.ListByUser(ctx, userID)
}

func (f *ShopFacade) UnreadNotifications(ctx context.Context, userID int64) (int, error) {
	return f.notifications.UnreadCount(ctx, userID)
}

func (f *ShopFacade) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	return f.notifications.MarkRead(ctx, userID, notificationID)
}

func (f *ShopFacade) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	return f.notifications.MarkAllRead(ctx, userID)
}

// NotificationsForPublishing leases a batch of unpublished notifications for
// the event dispatcher.
func (f *ShopFacade) NotificationsForPublishing(ctx context.Context, limit int) ([]model.Notification, error) {
	return f.notifications.SelectBatchForPublishing(ctx, limit)
}

// MarkNotificationPublished confirms delivery of a leased notification.
func (f *ShopFacade) MarkNotificationPublished(ctx context.Context, notificationID int64) error {
	return f.notifications.MarkPublished(ctx, notificationID)
}

func (f *ShopFacade) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	return f.addresses.Create(ctx, address)
}

func (f *ShopFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.addresses.ListByUser(ctx, userID)
}

func (f *ShopFacade) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	return f.addresses.SetDefault(ctx, userID, addressID)
}

func (f *ShopFacade) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	return f.addresses.Delete(ctx, userID, addressID)
}

func (f *ShopFacade) SaveCard(ctx context.Context, userID int64, holder, number string, expMonth, expYear int) (*model.PaymentCard, error) {
	return f.payments.SaveCard(ctx, userID, holder, number, expMonth, expYear)
}

func (f *ShopFacade) Cards(ctx context.Context, userID int64) ([]model.PaymentCard, error) {
	return f.payments.ListCards(ctx, userID)
}

func (f *ShopFacade) DeleteCard(ctx context.Context, userID, cardID int64) error {
	return f.payments.DeleteCard(ctx, userID, cardID)
}
