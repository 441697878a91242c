package usecase

import (
	"go.uber.org/fx"

	"github.com/trangvu/shopmart/internal/adapter/geocode"
	"github.com/trangvu/shopmart/internal/config"
	"github.com/trangvu/shopmart/internal/domain/model"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCatalogUseCase,
	NewCartUseCase,
	NewVoucherUseCase,
	NewOrderUseCase,
	NewReviewUseCase,
	NewWishlistUseCase,
	NewChatUseCase,
	NewNotificationUseCase,
	NewAddressUseCase,
	NewPaymentUseCase,
	newShippingUseCase,
)

func newShippingUseCase(geocoder geocode.Client, cfg *config.Config) *ShippingUseCase {
	return NewShippingUseCase(geocoder, model.GeoPoint{Lat: cfg.ShopLat, Lon: cfg.ShopLon})
}
