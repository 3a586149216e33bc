package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type CreateOrderRequest struct {
	UserID            string              `json:"userId" binding:"required"`
	RestaurantID      int                 `json:"restaurantId" binding:"required"`
	Items             []service.OrderLine `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress   string              `json:"deliveryAddress" binding:"required"`
	DeliveryLatitude  float64             `json:"deliveryLatitude"`
	DeliveryLongitude float64             `json:"deliveryLongitude"`
}

// Create places a new order in CREATED state.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	order, err := h.orders.Create(service.OrderInput{
		UserID:            req.UserID,
		RestaurantID:      req.RestaurantID,
		Items:             req.Items,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryLatitude:  req.DeliveryLatitude,
		DeliveryLongitude: req.DeliveryLongitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// List returns all orders.
func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.List())
}

// Get returns a single order by its human-readable id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type RestaurantActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// RestaurantAction applies the restaurant's accept/reject decision.
func (h *OrderHandler) RestaurantAction(c *gin.Context) {
	var req RestaurantActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required"})
		return
	}

	order, err := h.orders.RestaurantAction(c.Param("orderId"), req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus advances the order lifecycle.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	order, err := h.orders.UpdateStatus(c.Param("orderId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
