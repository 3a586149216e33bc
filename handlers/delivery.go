package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAYASASIREKHA/fooddelivery/service"
)

type DeliveryHandler struct {
	deliveries *service.DeliveryService
}

func NewDeliveryHandler(deliveries *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

// List returns all delivery records.
func (h *DeliveryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.deliveries.All())
}

// GetByOrder returns the delivery assigned to an order.
func (h *DeliveryHandler) GetByOrder(c *gin.Context) {
	delivery, err := h.deliveries.ByOrder(c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}
