package models

import (
	"strconv"
	"time"
)

type Restaurant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// MergeKey deduplicates restaurants across this service and its peer.
func (r Restaurant) MergeKey() string {
	return r.Name + "|" + r.Address
}

type MenuItem struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MergeKey deduplicates menu items across this service and its peer.
func (m MenuItem) MergeKey() string {
	return m.Name + "|" + strconv.Itoa(m.RestaurantID)
}
