package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/trangvu/shopmart/internal/adapter/geocode"
	"github.com/trangvu/shopmart/internal/app"
	"github.com/trangvu/shopmart/internal/config"
	"github.com/trangvu/shopmart/internal/domain/repository"
	"github.com/trangvu/shopmart/internal/storage/postgres"
	testhelpers "github.com/trangvu/shopmart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		GeocoderAddress: "http://localhost",
		SessionSecret:   "secret",
		SessionTTL:      time.Hour,
		NotifyInterval:  time.Millisecond,
		NotifyBatch:     1,
		WorkerPoolSize:  1,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := testhelpers.NewStore()

	var facade *app.ShopFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(store.Users())),
			fx.Replace(repository.ProductRepository(store.Products())),
			fx.Replace(repository.CartRepository(store.Carts())),
			fx.Replace(repository.VoucherRepository(store.Vouchers())),
			fx.Replace(repository.OrderRepository(store.Orders())),
			fx.Replace(repository.ReviewRepository(store.Reviews())),
			fx.Replace(repository.WishlistRepository(store.Wishlists())),
			fx.Replace(repository.NotificationRepository(store.Notifications())),
			fx.Replace(repository.AddressRepository(store.Addresses())),
			fx.Replace(repository.CardRepository(store.Cards())),
			fx.Replace(geocode.Client(testhelpers.GeocoderStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected shop facade instance")
	}
}
