// Package store owns all process-lifetime state. Every mutation happens under a
// single mutex, and methods take and return value copies so callers never hold a
// reference into the store's containers.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/JAYASASIREKHA/fooddelivery/models"
)

var (
	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrNotFound       = errors.New("not found")
)

type Store struct {
	mu sync.Mutex

	users        []models.User
	usersByID    map[string]int
	usersByEmail map[string]int

	restaurants []models.Restaurant
	menuItems   []models.MenuItem

	orders       []models.Order
	ordersByID   map[string]int
	orderCounter int

	deliveries      []models.Delivery
	deliveriesByOrd map[string]int
	deliveryCounter int

	notifications       []models.Notification
	notificationCounter int
}

func New() *Store {
	return &Store{
		usersByID:       make(map[string]int),
		usersByEmail:    make(map[string]int),
		ordersByID:      make(map[string]int),
		deliveriesByOrd: make(map[string]int),
	}
}

// ── Users ───────────────────────────────────────────────────────────

// AddUser stores a user record. The caller supplies the id; the identity
// service mints ids because a peer-adopted record keeps the peer's id.
func (s *Store) AddUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[u.Email]; ok {
		return models.User{}, ErrDuplicateEmail
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users = append(s.users, u)
	idx := len(s.users) - 1
	s.usersByID[u.ID] = idx
	s.usersByEmail[u.Email] = idx
	return u, nil
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.usersByEmail[email]
	if !ok {
		return models.User{}, false
	}
	return s.users[idx], true
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.usersByID[id]
	if !ok {
		return models.User{}, false
	}
	return s.users[idx], true
}

// ── Restaurants & menu ──────────────────────────────────────────────

// AddRestaurant assigns the next sequential id and stores the record.
func (s *Store) AddRestaurant(r models.Restaurant) models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = len(s.restaurants) + 1
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.restaurants = append(s.restaurants, r)
	return r
}

// Restaurants returns all restaurants in insertion order.
func (s *Store) Restaurants() []models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out
}

func (s *Store) RestaurantByID(id int) (models.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return models.Restaurant{}, false
}

// AddMenuItem assigns the next sequential id and stores the record.
func (s *Store) AddMenuItem(m models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = len(s.menuItems) + 1
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.menuItems = append(s.menuItems, m)
	return m
}

// MenuByRestaurant returns the restaurant's menu in insertion order.
func (s *Store) MenuByRestaurant(restaurantID int) []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.MenuItem{}
	for _, m := range s.menuItems {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out
}

// AvailableMenuItem resolves an order line: the item must exist, belong to the
// restaurant and be marked available.
func (s *Store) AvailableMenuItem(restaurantID, itemID int) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.menuItems {
		if m.ID == itemID && m.RestaurantID == restaurantID && m.Available {
			return m, true
		}
	}
	return models.MenuItem{}, false
}

// ── Orders ──────────────────────────────────────────────────────────

// AddOrder assigns the human-readable "ORD-<n>" id plus the numeric id, stamps
// timestamps and stores the order in its initial state.
func (s *Store) AddOrder(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderCounter++
	o.OrderID = fmt.Sprintf("ORD-%d", s.orderCounter)
	o.ID = len(s.orders) + 1
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders = append(s.orders, o)
	s.ordersByID[o.OrderID] = len(s.orders) - 1
	return o
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) OrderByID(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.ordersByID[orderID]
	if !ok {
		return models.Order{}, false
	}
	return s.orders[idx], true
}

// UpdateOrder applies mutate to the order under the store lock and touches
// UpdatedAt. The callback sees the current record and changes only the fields
// it cares about; everything else is preserved. If the callback returns an
// error before mutating, the record is untouched. The callback must not call
// back into the store.
func (s *Store) UpdateOrder(orderID string, mutate func(*models.Order) error) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.ordersByID[orderID]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if err := mutate(&s.orders[idx]); err != nil {
		return models.Order{}, err
	}
	s.orders[idx].UpdatedAt = time.Now()
	return s.orders[idx], nil
}

// ── Deliveries ──────────────────────────────────────────────────────

// AddDelivery assigns the "DEL-<n>" id and stores the record. An order gets at
// most one delivery; a second call for the same order returns the existing one.
func (s *Store) AddDelivery(d models.Delivery) models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx, ok := s.deliveriesByOrd[d.OrderID]; ok {
		return s.deliveries[idx]
	}
	s.deliveryCounter++
	id := fmt.Sprintf("DEL-%d", s.deliveryCounter)
	d.ID = id
	d.DeliveryID = id
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	s.deliveries = append(s.deliveries, d)
	s.deliveriesByOrd[d.OrderID] = len(s.deliveries) - 1
	return d
}

func (s *Store) Deliveries() []models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Delivery, len(s.deliveries))
	copy(out, s.deliveries)
	return out
}

func (s *Store) DeliveryByOrder(orderID string) (models.Delivery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.deliveriesByOrd[orderID]
	if !ok {
		return models.Delivery{}, false
	}
	return s.deliveries[idx], true
}

// ── Notifications ───────────────────────────────────────────────────

// AddNotification appends an immutable record with a sequential "NOTIF-<n>" id.
func (s *Store) AddNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationCounter++
	n.ID = fmt.Sprintf("NOTIF-%d", s.notificationCounter)
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	s.notifications = append(s.notifications, n)
	return n
}

func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) NotificationsByUser(userID string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Notification{}
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
