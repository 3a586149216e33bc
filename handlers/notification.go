package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAYASASIREKHA/fooddelivery/service"
)

type NotificationHandler struct {
	notifier *service.Notifier
}

func NewNotificationHandler(notifier *service.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List returns the full notification log.
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifier.All())
}

// ListByUser returns notifications addressed to one user.
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifier.ByUser(c.Param("userId")))
}
