package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/peer"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

// RestaurantInput carries a create-restaurant request.
type RestaurantInput struct {
	Name      string
	Cuisine   string
	Address   string
	Latitude  float64
	Longitude float64
	Phone     string
}

// MenuItemInput carries a create-menu-item request.
type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Available   *bool
}

// CatalogService owns restaurants and menus, with best-effort replication to
// the peer on write and merge-on-read against the peer on list reads.
type CatalogService struct {
	store *store.Store
	peer  *peer.Client
	log   *zap.Logger
}

func NewCatalogService(st *store.Store, pc *peer.Client, log *zap.Logger) *CatalogService {
	return &CatalogService{store: st, peer: pc, log: log}
}

// CreateRestaurant stores a restaurant and replicates it to the peer
// fire-and-forget.
func (s *CatalogService) CreateRestaurant(in RestaurantInput) models.Restaurant {
	r := s.store.AddRestaurant(models.Restaurant{
		Name:      in.Name,
		Cuisine:   in.Cuisine,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Phone:     in.Phone,
		IsActive:  true,
	})

	s.peer.ReplicateRestaurant(peer.RestaurantPayload{
		Name:      in.Name,
		Cuisine:   in.Cuisine,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Phone:     in.Phone,
	})
	return r
}

// CreateMenuItem stores a menu item for an existing restaurant and replicates
// it to the peer fire-and-forget.
func (s *CatalogService) CreateMenuItem(restaurantID int, in MenuItemInput) (models.MenuItem, error) {
	if _, ok := s.store.RestaurantByID(restaurantID); !ok {
		return models.MenuItem{}, fmt.Errorf("restaurant %d: %w", restaurantID, ErrNotFound)
	}

	category := in.Category
	if category == "" {
		category = "General"
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}

	item := s.store.AddMenuItem(models.MenuItem{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     category,
		Available:    available,
	})

	s.peer.ReplicateMenuItem(restaurantID, peer.MenuItemPayload{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
		Available:   available,
	})
	return item, nil
}

// ListRestaurants returns the local set merged with the peer's. Peer failure
// silently yields the local-only view.
func (s *CatalogService) ListRestaurants(ctx context.Context) []models.Restaurant {
	local := s.store.Restaurants()
	remote, err := s.peer.FetchRestaurants(ctx)
	if err != nil {
		s.log.Debug("peer restaurant fetch failed", zap.Error(err))
		return local
	}
	return peer.Merge(local, remote, models.Restaurant.MergeKey)
}

// GetRestaurant reads the local record only; single-record reads do not consult
// the peer.
func (s *CatalogService) GetRestaurant(id int) (models.Restaurant, error) {
	r, ok := s.store.RestaurantByID(id)
	if !ok {
		return models.Restaurant{}, fmt.Errorf("restaurant %d: %w", id, ErrNotFound)
	}
	return r, nil
}

// GetMenu returns the restaurant's local menu merged with the peer's. Peer
// failure silently yields the local-only view.
func (s *CatalogService) GetMenu(ctx context.Context, restaurantID int) []models.MenuItem {
	local := s.store.MenuByRestaurant(restaurantID)
	remote, err := s.peer.FetchMenu(ctx, restaurantID)
	if err != nil {
		s.log.Debug("peer menu fetch failed", zap.Error(err))
		return local
	}
	return peer.Merge(local, remote, models.MenuItem.MergeKey)
}
