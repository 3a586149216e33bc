package models

import "time"

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusCreated        OrderStatus = "CREATED"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

type Order struct {
	OrderID           string      `json:"orderId"`
	ID                int         `json:"id"`
	UserID            string      `json:"userId"`
	RestaurantID      int         `json:"restaurantId"`
	Status            OrderStatus `json:"status"`
	TotalAmount       float64     `json:"totalAmount"`
	Items             []OrderItem `json:"items"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	DeliveryLatitude  float64     `json:"deliveryLatitude"`
	DeliveryLongitude float64     `json:"deliveryLongitude"`
	DeliveryID        string      `json:"deliveryId,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// OrderItem is a validated order line; name and price are snapshots of the menu
// item at ordering time.
type OrderItem struct {
	MenuItemID   int     `json:"menuItemId"`
	Quantity     int     `json:"quantity"`
	MenuItemName string  `json:"menuItemName"`
	Price        float64 `json:"price"`
}
