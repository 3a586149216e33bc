package models

import "time"

// Notification types emitted by the order engine and delivery assignment.
const (
	NotifOrderCreated        = "ORDER_CREATED"
	NotifOrderConfirmed      = "ORDER_CONFIRMED"
	NotifOrderCancelled      = "ORDER_CANCELLED"
	NotifOrderPreparing      = "ORDER_PREPARING"
	NotifOrderOutForDelivery = "ORDER_OUT_FOR_DELIVERY"
	NotifOrderDelivered      = "ORDER_DELIVERED"
	NotifDeliveryAssigned    = "DELIVERY_ASSIGNED"
)

// Notification is an append-only event record; never mutated after creation.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
