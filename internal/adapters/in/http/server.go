package http

import (
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Commands bundles the command handlers the server dispatches to.
type Commands struct {
	RegisterUser   commands.RegisterUserCommandHandler
	Login          commands.LoginCommandHandler
	Logout         commands.LogoutCommandHandler
	UpdateProfile  commands.UpdateProfileCommandHandler
	AddAddress     commands.AddAddressCommandHandler
	RemoveAddress  commands.RemoveAddressCommandHandler
	AddToCart      commands.AddToCartCommandHandler
	MergeCart      commands.MergeCartCommandHandler
	RemoveFromCart commands.RemoveFromCartCommandHandler
	ClearCart      commands.ClearCartCommandHandler
	PlaceOrder     commands.PlaceOrderCommandHandler
	ConfirmOrder   commands.ConfirmOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	AssignDelivery commands.AssignDeliveryCommandHandler
	MarkDelivered  commands.MarkDeliveredCommandHandler
	CreateShop     commands.CreateShopCommandHandler
	UpdateShop     commands.UpdateShopCommandHandler
	CreateItem     commands.CreateItemCommandHandler
	UpdateItem     commands.UpdateItemCommandHandler
	DeleteItem     commands.DeleteItemCommandHandler
}

// Queries bundles the query handlers the server dispatches to.
type Queries struct {
	GetCart              queries.GetCartQueryHandler
	GetMyOrders          queries.GetMyOrdersQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	GetShopOrders        queries.GetShopOrdersQueryHandler
	GetAssignments       queries.GetDeliveryAssignmentsQueryHandler
	GetShops             queries.GetShopsQueryHandler
	GetShop              queries.GetShopQueryHandler
	GetMyShops           queries.GetMyShopsQueryHandler
	GetShopItems         queries.GetShopItemsQueryHandler
	GetLocations         queries.GetLocationsQueryHandler
	GetProfile           queries.GetProfileQueryHandler
	GetDeliveryPersonnel queries.GetDeliveryPersonnelQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(cmds Commands, qrys Queries) *Server {
	return &Server{
		commands: cmds,
		queries:  qrys,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance. Browse and
// authentication endpoints are public; everything else runs behind the
// session middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	// Public.
	e.POST("/auth/register", s.Register)
	e.POST("/auth/login", s.Login)
	e.GET("/home", s.GetShops)
	e.GET("/shops/:shopId", s.GetShop)
	e.GET("/shops/:shopId/items", s.GetShopItems)
	e.GET("/api/locations", s.GetLocations)

	// Authenticated.
	a := e.Group("", auth.Require)
	a.POST("/auth/logout", s.Logout)
	a.GET("/auth/me", s.Me)
	a.PUT("/api/profile", s.UpdateProfile)
	a.POST("/api/addresses", s.AddAddress)
	a.DELETE("/api/addresses", s.RemoveAddress)

	a.GET("/cart", s.GetCart)
	a.POST("/cart/add", s.AddToCart)
	a.POST("/cart/merge", s.MergeCart)
	a.POST("/cart/remove", s.RemoveFromCart)
	a.POST("/cart/clear", s.ClearCart)

	a.POST("/api/orders", s.PlaceOrder)
	a.GET("/api/my-orders", s.GetMyOrders)

	a.GET("/api/seller/shops", s.GetMyShops)
	a.POST("/api/shops", s.CreateShop)
	a.PUT("/api/shops/:shopId", s.UpdateShop)
	a.GET("/api/shops/:shopId/items", s.GetOwnShopItems)
	a.POST("/api/shops/:shopId/items", s.CreateItem)
	a.PUT("/api/items/:itemId", s.UpdateItem)
	a.DELETE("/api/items/:itemId", s.DeleteItem)

	a.GET("/api/seller/orders", s.GetShopOrders)
	a.GET("/api/seller/orders/:orderId", s.GetSellerOrder)
	a.PUT("/api/seller/orders/:orderId/status", s.SetSellerOrderStatus)
	a.PUT("/api/seller/orders/:orderId/assign", s.AssignDelivery)
	a.GET("/api/delivery-personnel", s.GetDeliveryPersonnel)

	a.GET("/api/delivery/my-orders", s.GetAssignments)
	a.PUT("/api/delivery/orders/:orderId/status", s.SetDeliveryOrderStatus)
}
