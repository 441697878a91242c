package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Carts() CartRepository
	Vouchers() VoucherRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	Wishlists() WishlistRepository
	Notifications() NotificationRepository
	Addresses() AddressRepository
	Cards() CardRepository
}
