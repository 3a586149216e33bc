package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JAYASASIREKHA/fooddelivery/handlers"
	"github.com/JAYASASIREKHA/fooddelivery/middleware"
)

// Handlers bundles everything SetupRoutes wires onto the router.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Restaurants   *handlers.RestaurantHandler
	Orders        *handlers.OrderHandler
	Deliveries    *handlers.DeliveryHandler
	Notifications *handlers.NotificationHandler
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/auth/me", middleware.AuthRequired(), h.Auth.Me)

		// Restaurants & menus
		api.POST("/restaurants", h.Restaurants.Create)
		api.GET("/restaurants", h.Restaurants.List)
		api.GET("/restaurants/:id", h.Restaurants.Get)
		api.GET("/restaurants/:id/menu", h.Restaurants.GetMenu)
		api.POST("/restaurants/:id/menu/items", h.Restaurants.AddMenuItem)

		// Orders
		api.POST("/orders", h.Orders.Create)
		api.GET("/orders", h.Orders.List)
		api.GET("/orders/:orderId", h.Orders.Get)
		api.POST("/orders/:orderId/restaurant-action", h.Orders.RestaurantAction)
		api.PATCH("/orders/:orderId/status", h.Orders.UpdateStatus)

		// Deliveries
		api.GET("/deliveries", h.Deliveries.List)
		api.GET("/deliveries/order/:orderId", h.Deliveries.GetByOrder)

		// Notifications
		api.GET("/notifications", h.Notifications.List)
		api.GET("/notifications/user/:userId", h.Notifications.ListByUser)
	}
}
