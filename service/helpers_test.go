package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/peer"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

type testEnv struct {
	store    *store.Store
	notifier *Notifier
	auth     *AuthService
	catalog  *CatalogService
	orders   *OrderService
	delivery *DeliveryService
}

// newTestEnv wires the full service set against an in-memory store. peerURL ""
// disables peer sync, matching the "peer unreachable" contract.
func newTestEnv(t *testing.T, peerURL string) *testEnv {
	t.Helper()
	log := zap.NewNop()
	st := store.New()
	pc := peer.New(peerURL, log)
	t.Cleanup(pc.Close)

	notifier := NewNotifier(st, log)
	delivery := NewDeliveryService(st, notifier)
	return &testEnv{
		store:    st,
		notifier: notifier,
		auth:     NewAuthService(st, pc, log),
		catalog:  NewCatalogService(st, pc, log),
		orders:   NewOrderService(st, notifier, delivery),
		delivery: delivery,
	}
}

// seedCatalog creates a restaurant with a burger at 9.50 and fries at 3.25,
// plus an unavailable special.
func (e *testEnv) seedCatalog(t *testing.T) (models.Restaurant, models.MenuItem, models.MenuItem) {
	t.Helper()
	r := e.store.AddRestaurant(models.Restaurant{
		Name:     "Pasta Place",
		Address:  "1 Main St",
		IsActive: true,
	})
	burger := e.store.AddMenuItem(models.MenuItem{
		RestaurantID: r.ID, Name: "Burger", Price: 9.50, Available: true,
	})
	fries := e.store.AddMenuItem(models.MenuItem{
		RestaurantID: r.ID, Name: "Fries", Price: 3.25, Available: true,
	})
	e.store.AddMenuItem(models.MenuItem{
		RestaurantID: r.ID, Name: "Special", Price: 15, Available: false,
	})
	return r, burger, fries
}

// placeOrder creates a two-line order against the seeded catalog.
func (e *testEnv) placeOrder(t *testing.T) models.Order {
	t.Helper()
	r, burger, fries := e.seedCatalog(t)
	order, err := e.orders.Create(OrderInput{
		UserID:       "USER-100-1000",
		RestaurantID: r.ID,
		Items: []OrderLine{
			{MenuItemID: burger.ID, Quantity: 2},
			{MenuItemID: fries.ID, Quantity: 1},
		},
		DeliveryAddress: "5 High St",
	})
	if err != nil {
		t.Fatalf("placeOrder: %v", err)
	}
	return order
}
