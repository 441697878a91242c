package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/trangvu/shopmart/internal/server/http/handlers"
	"github.com/trangvu/shopmart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	voucherHandler := handlers.NewVoucherHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	wishlistHandler := handlers.NewWishlistHandler(facade)
	chatHandler := handlers.NewChatHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)
	cardHandler := handlers.NewCardHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	products := api.Group("/products")
	products.GET("", catalogHandler.List)
	products.GET("/search", catalogHandler.Search)
	products.GET("/suggestions", catalogHandler.Suggestions)
	products.GET("/:id", catalogHandler.Get)
	products.GET("/:id/reviews", reviewHandler.ListByProduct)

	api.GET("/shipping/methods", orderHandler.ShippingMethods)
	api.POST("/chat", middleware.OptionalAuth(facade), chatHandler.Reply)

	user := api.Group("/user")
	user.Use(middleware.AuthRequired(facade))
	user.GET("/profile", authHandler.Profile)

	user.GET("/cart", cartHandler.List)
	user.DELETE("/cart", cartHandler.Clear)
	user.POST("/cart/items", cartHandler.Add)
	user.PUT("/cart/items/:productID", cartHandler.UpdateQuantity)
	user.PUT("/cart/items/:productID/selected", cartHandler.Select)
	user.DELETE("/cart/items/:productID", cartHandler.Remove)

	user.POST("/orders/quote", orderHandler.Quote)
	user.POST("/orders", orderHandler.Place)
	user.GET("/orders", orderHandler.List)
	user.GET("/orders/:id", orderHandler.Get)
	user.POST("/orders/:id/cancel", orderHandler.Cancel)

	user.GET("/vouchers", voucherHandler.List)
	user.POST("/vouchers/validate", voucherHandler.Validate)

	user.POST("/reviews", reviewHandler.Create)

	user.GET("/wishlist", wishlistHandler.List)
	user.POST("/wishlist/:productID", wishlistHandler.Add)
	user.DELETE("/wishlist/:productID", wishlistHandler.Remove)

	user.GET("/notifications", notificationHandler.List)
	user.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	user.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	user.POST("/notifications/:id/read", notificationHandler.MarkRead)

	user.POST("/addresses", addressHandler.Create)
	user.GET("/addresses", addressHandler.List)
	user.POST("/addresses/:id/default", addressHandler.SetDefault)
	user.DELETE("/addresses/:id", addressHandler.Delete)

	user.POST("/cards", cardHandler.Save)
	user.GET("/cards", cardHandler.List)
	user.DELETE("/cards/:id", cardHandler.Delete)

	admin := api.Group("/admin")
	admin.POST("/products", catalogHandler.Create)
	admin.POST("/vouchers", voucherHandler.Grant)
	admin.POST("/orders/:id/status", orderHandler.Advance)

	return engine
}
