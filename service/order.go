package service

import (
	"errors"
	"fmt"

	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/statemachine"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

// OrderLine is one requested item in an order.
type OrderLine struct {
	MenuItemID int `json:"menuItemId" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,min=1"`
}

// OrderInput carries a create-order request into the engine.
type OrderInput struct {
	UserID            string
	RestaurantID      int
	Items             []OrderLine
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
}

// OrderService is the order engine: creation, validation, totals, and the
// lifecycle state machine with its side effects.
type OrderService struct {
	store    *store.Store
	notifier *Notifier
	delivery *DeliveryService
}

func NewOrderService(st *store.Store, notifier *Notifier, delivery *DeliveryService) *OrderService {
	return &OrderService{store: st, notifier: notifier, delivery: delivery}
}

// Create validates the request, resolves every line against the restaurant's
// available menu, computes the total, stores the order in CREATED state and
// emits an ORDER_CREATED notification.
func (s *OrderService) Create(in OrderInput) (models.Order, error) {
	restaurant, ok := s.store.RestaurantByID(in.RestaurantID)
	if !ok || !restaurant.IsActive {
		return models.Order{}, validationf("Restaurant not available")
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	var total float64
	for _, line := range in.Items {
		menuItem, ok := s.store.AvailableMenuItem(in.RestaurantID, line.MenuItemID)
		if !ok {
			return models.Order{}, validationf(
				"Menu item %d not found or unavailable for restaurant %d",
				line.MenuItemID, in.RestaurantID)
		}
		total += menuItem.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			MenuItemID:   menuItem.ID,
			Quantity:     line.Quantity,
			MenuItemName: menuItem.Name,
			Price:        menuItem.Price,
		})
	}

	order := s.store.AddOrder(models.Order{
		UserID:            in.UserID,
		RestaurantID:      in.RestaurantID,
		Status:            models.StatusCreated,
		TotalAmount:       total,
		Items:             items,
		DeliveryAddress:   in.DeliveryAddress,
		DeliveryLatitude:  in.DeliveryLatitude,
		DeliveryLongitude: in.DeliveryLongitude,
	})

	s.notifier.Emit(order.UserID, models.NotifOrderCreated, "Order Placed Successfully",
		fmt.Sprintf("Your order %s has been placed. Total: $%.2f", order.OrderID, total),
		order.OrderID, string(models.StatusCreated))

	return order, nil
}

func (s *OrderService) List() []models.Order {
	return s.store.Orders()
}

func (s *OrderService) Get(orderID string) (models.Order, error) {
	order, ok := s.store.OrderByID(orderID)
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return order, nil
}

// RestaurantAction handles the restaurant's accept/reject decision on an order.
// Unknown actions are rejected as validation errors.
func (s *OrderService) RestaurantAction(orderID, action string) (models.Order, error) {
	var target models.OrderStatus
	switch action {
	case "accept":
		target = models.StatusConfirmed
	case "reject":
		target = models.StatusCancelled
	default:
		return models.Order{}, validationf("Unknown action %q: must be accept or reject", action)
	}

	order, err := s.transition(orderID, target)
	if err != nil {
		return models.Order{}, err
	}

	switch target {
	case models.StatusConfirmed:
		s.notifier.Emit(order.UserID, models.NotifOrderConfirmed, "Order Confirmed",
			fmt.Sprintf("Your order %s has been confirmed by the restaurant.", order.OrderID),
			order.OrderID, string(target))
	case models.StatusCancelled:
		s.notifier.Emit(order.UserID, models.NotifOrderCancelled, "Order Cancelled",
			fmt.Sprintf("Your order %s has been cancelled.", order.OrderID),
			order.OrderID, string(target))
	}
	return order, nil
}

// UpdateStatus advances an order through the lifecycle and runs the target
// state's side effects: PREPARING assigns a delivery partner and attaches the
// delivery id; OUT_FOR_DELIVERY and DELIVERED emit their notifications.
func (s *OrderService) UpdateStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	if !statemachine.IsValidStatus(status) {
		return models.Order{}, validationf("Invalid status")
	}

	order, err := s.transition(orderID, status)
	if err != nil {
		return models.Order{}, err
	}

	switch status {
	case models.StatusPreparing:
		delivery := s.delivery.AssignPartner(order)
		order, err = s.store.UpdateOrder(orderID, func(o *models.Order) error {
			o.DeliveryID = delivery.DeliveryID
			return nil
		})
		if err != nil {
			return models.Order{}, err
		}
		s.notifier.Emit(order.UserID, models.NotifOrderPreparing, "Order Being Prepared",
			fmt.Sprintf("Your order %s is being prepared.", order.OrderID),
			order.OrderID, string(status))
	case models.StatusOutForDelivery:
		s.notifier.Emit(order.UserID, models.NotifOrderOutForDelivery, "Order Out for Delivery",
			fmt.Sprintf("Your order %s is on the way!", order.OrderID),
			order.OrderID, string(status))
	case models.StatusDelivered:
		s.notifier.Emit(order.UserID, models.NotifOrderDelivered, "Order Delivered",
			fmt.Sprintf("Your order %s has been delivered. Enjoy your meal!", order.OrderID),
			order.OrderID, string(status))
	}
	return order, nil
}

// transition applies a guarded status change under the store lock.
func (s *OrderService) transition(orderID string, target models.OrderStatus) (models.Order, error) {
	order, err := s.store.UpdateOrder(orderID, func(o *models.Order) error {
		if err := statemachine.CanTransition(o.Status, target); err != nil {
			return &ValidationError{Reason: err.Error()}
		}
		o.Status = target
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
