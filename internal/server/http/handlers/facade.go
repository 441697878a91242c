package handlers

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, fullName, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// CatalogFacade exposes catalog browsing and the admin product surface.
type CatalogFacade interface {
	Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	SearchProducts(ctx context.Context, query string, limit, offset int) ([]model.RatedProduct, error)
	ProductSuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
}

// CartFacade exposes cart operations.
type CartFacade interface {
	CartEntries(ctx context.Context, userID int64) ([]model.CartEntry, error)
	AddToCart(ctx context.Context, userID, productID int64, quantity int) error
	UpdateCartQuantity(ctx context.Context, userID, productID int64, quantity int) error
	SelectCartItem(ctx context.Context, userID, productID int64, selected bool) error
	RemoveFromCart(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade exposes checkout pricing and the order lifecycle.
type OrderFacade interface {
	QuoteOrder(ctx context.Context, userID int64, in usecase.QuoteInput) (*usecase.Quote, error)
	PlaceOrder(ctx context.Context, userID int64, in usecase.PlaceOrderInput) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderEntry, error)
	CancelOrder(ctx context.Context, userID, orderID int64) error
	AdvanceOrder(ctx context.Context, orderID int64, to model.OrderStatus) error
	ShippingMethods() []model.ShippingMethod
}

// VoucherFacade exposes voucher listing, validation and granting.
type VoucherFacade interface {
	Vouchers(ctx context.Context, userID int64) ([]model.Voucher, error)
	ValidateVoucher(ctx context.Context, userID int64, code string) (*model.Voucher, error)
	GrantVoucher(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error)
}

// ReviewFacade exposes review creation and listing.
type ReviewFacade interface {
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	ProductReviews(ctx context.Context, productID int64) ([]model.Review, float64, error)
}

// WishlistFacade exposes wishlist operations.
type WishlistFacade interface {
	AddToWishlist(ctx context.Context, userID, productID int64) error
	RemoveFromWishlist(ctx context.Context, userID, productID int64) error
	Wishlist(ctx context.Context, userID int64) ([]model.Product, error)
}

// ChatFacade exposes the shopping assistant.
type ChatFacade interface {
	ChatReply(ctx context.Context, message string, loggedIn bool) (string, error)
}

// NotificationFacade exposes the user-facing notification feed.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
	UnreadNotifications(ctx context.Context, userID int64) (int, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) error
}

// AddressFacade exposes saved address management.
type AddressFacade interface {
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	SetDefaultAddress(ctx context.Context, userID, addressID int64) error
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}

// CardFacade exposes saved payment card management.
type CardFacade interface {
	SaveCard(ctx context.Context, userID int64, holder, number string, expMonth, expYear int) (*model.PaymentCard, error)
	Cards(ctx context.Context, userID int64) ([]model.PaymentCard, error)
	DeleteCard(ctx context.Context, userID, cardID int64) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	VoucherFacade
	ReviewFacade
	WishlistFacade
	ChatFacade
	NotificationFacade
	AddressFacade
	CardFacade
}
