package models

import "time"

// DeliveryStatusAssigned is the only status this service ever writes; the field
// exists so the peer's shapes stay compatible.
const DeliveryStatusAssigned = "ASSIGNED"

type Delivery struct {
	ID                    string    `json:"id"`
	DeliveryID            string    `json:"deliveryId"`
	OrderID               string    `json:"orderId"`
	PartnerID             string    `json:"partnerId"`
	PartnerName           string    `json:"partnerName"`
	PartnerPhone          string    `json:"partnerPhone"`
	Status                string    `json:"status"`
	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time `json:"createdAt"`
}

// DeliveryPartner is a roster entry for assignment.
type DeliveryPartner struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Available bool   `json:"available"`
}
