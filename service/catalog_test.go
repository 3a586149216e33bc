package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/peer"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

func TestCreateRestaurantDefaults(t *testing.T) {
	env := newTestEnv(t, "")

	r := env.catalog.CreateRestaurant(RestaurantInput{
		Name:    "Curry Corner",
		Cuisine: "Indian",
		Address: "7 Spice Ln",
	})

	assert.Equal(t, 1, r.ID)
	assert.True(t, r.IsActive)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestCreateMenuItemDefaults(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.catalog.CreateRestaurant(RestaurantInput{Name: "Curry Corner", Address: "7 Spice Ln"})

	item, err := env.catalog.CreateMenuItem(r.ID, MenuItemInput{Name: "Dal", Price: 6.75})
	require.NoError(t, err)
	assert.Equal(t, "General", item.Category)
	assert.True(t, item.Available)

	unavailable := false
	item, err = env.catalog.CreateMenuItem(r.ID, MenuItemInput{
		Name: "Thali", Price: 12, Category: "Mains", Available: &unavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mains", item.Category)
	assert.False(t, item.Available)
}

func TestCreateMenuItemUnknownRestaurant(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.catalog.CreateMenuItem(99, MenuItemInput{Name: "Dal", Price: 6.75})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRestaurantsPeerDown(t *testing.T) {
	env := newTestEnv(t, "http://127.0.0.1:1") // nothing listens here
	env.catalog.CreateRestaurant(RestaurantInput{Name: "Curry Corner", Address: "7 Spice Ln"})

	got := env.catalog.ListRestaurants(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "Curry Corner", got[0].Name)
}

func TestListRestaurantsLogsPeerFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)
	st := store.New()
	pc := peer.New("http://127.0.0.1:1", log) // nothing listens here
	t.Cleanup(pc.Close)
	catalog := NewCatalogService(st, pc, log)

	st.AddRestaurant(models.Restaurant{Name: "Curry Corner", Address: "7 Spice Ln", IsActive: true})

	got := catalog.ListRestaurants(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, 1, logs.FilterMessage("peer restaurant fetch failed").Len())
}

func TestListRestaurantsMergesPeer(t *testing.T) {
	peerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// replication traffic from the create below also lands here
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			return
		}
		require.Equal(t, "/api/restaurants", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Restaurant{
			// same identity as the local record, different cuisine: local copy wins
			{ID: 41, Name: "Curry Corner", Address: "7 Spice Ln", Cuisine: "Fusion"},
			{ID: 42, Name: "Noodle Bar", Address: "9 River Rd", Cuisine: "Thai"},
		})
	}))
	defer peerSrv.Close()

	env := newTestEnv(t, peerSrv.URL)
	env.catalog.CreateRestaurant(RestaurantInput{
		Name: "Curry Corner", Address: "7 Spice Ln", Cuisine: "Indian",
	})

	got := env.catalog.ListRestaurants(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "Indian", got[0].Cuisine)
	assert.Equal(t, "Noodle Bar", got[1].Name)
}

func TestGetMenuMergesPeer(t *testing.T) {
	peerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// replication traffic from the creates below also lands here
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			return
		}
		require.Equal(t, "/api/restaurants/1/menu", r.URL.Path)
		json.NewEncoder(w).Encode([]models.MenuItem{
			{ID: 7, RestaurantID: 1, Name: "Dal", Price: 7.00},
			{ID: 8, RestaurantID: 1, Name: "Naan", Price: 2.50},
		})
	}))
	defer peerSrv.Close()

	env := newTestEnv(t, peerSrv.URL)
	r := env.catalog.CreateRestaurant(RestaurantInput{Name: "Curry Corner", Address: "7 Spice Ln"})
	_, err := env.catalog.CreateMenuItem(r.ID, MenuItemInput{Name: "Dal", Price: 6.75})
	require.NoError(t, err)

	got := env.catalog.GetMenu(context.Background(), r.ID)
	require.Len(t, got, 2)
	assert.Equal(t, 6.75, got[0].Price) // local price wins over the peer's
	assert.Equal(t, "Naan", got[1].Name)
}

func TestGetMenuPeerDownUnknownRestaurant(t *testing.T) {
	env := newTestEnv(t, "")

	got := env.catalog.GetMenu(context.Background(), 99)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetRestaurant(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.catalog.CreateRestaurant(RestaurantInput{Name: "Curry Corner", Address: "7 Spice Ln"})

	got, err := env.catalog.GetRestaurant(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Name, got.Name)

	_, err = env.catalog.GetRestaurant(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
