package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

// partnerRoster is the fixed set of delivery partners. There is no
// availability check on assignment; the flag exists for wire compatibility
// with the peer.
var partnerRoster = []models.DeliveryPartner{
	{ID: "DP001", Name: "John Doe", Phone: "+1234567890", Available: true},
	{ID: "DP002", Name: "Jane Smith", Phone: "+1234567891", Available: true},
	{ID: "DP003", Name: "Mike Johnson", Phone: "+1234567892", Available: true},
}

const (
	deliveryBaseETA   = 30 * time.Minute
	deliveryJitterMax = 15 // minutes, inclusive
)

// DeliveryService assigns delivery partners to orders entering preparation.
type DeliveryService struct {
	store    *store.Store
	notifier *Notifier
}

func NewDeliveryService(st *store.Store, notifier *Notifier) *DeliveryService {
	return &DeliveryService{store: st, notifier: notifier}
}

// AssignPartner picks a partner uniformly at random, mints a delivery record in
// ASSIGNED status with an ETA of now + 30min + 0-15min jitter, and notifies the
// order's owner. An order keeps its first delivery if called twice.
func (s *DeliveryService) AssignPartner(order models.Order) models.Delivery {
	partner := partnerRoster[rand.Intn(len(partnerRoster))]
	eta := time.Now().Add(deliveryBaseETA + time.Duration(rand.Intn(deliveryJitterMax+1))*time.Minute)

	delivery := s.store.AddDelivery(models.Delivery{
		OrderID:               order.OrderID,
		PartnerID:             partner.ID,
		PartnerName:           partner.Name,
		PartnerPhone:          partner.Phone,
		Status:                models.DeliveryStatusAssigned,
		EstimatedDeliveryTime: eta,
	})

	s.notifier.Emit(order.UserID, models.NotifDeliveryAssigned, "Delivery Partner Assigned",
		fmt.Sprintf("Your order %s has been assigned to %s. Estimated delivery: %s",
			order.OrderID, partner.Name, eta.Format(time.Kitchen)),
		order.OrderID, string(models.StatusOutForDelivery))

	return delivery
}

func (s *DeliveryService) All() []models.Delivery {
	return s.store.Deliveries()
}

// ByOrder returns the delivery for an order.
func (s *DeliveryService) ByOrder(orderID string) (models.Delivery, error) {
	d, ok := s.store.DeliveryByOrder(orderID)
	if !ok {
		return models.Delivery{}, fmt.Errorf("delivery for order %s: %w", orderID, ErrNotFound)
	}
	return d, nil
}
