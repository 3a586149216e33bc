package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JAYASASIREKHA/fooddelivery/service"
)

type RestaurantHandler struct {
	catalog *service.CatalogService
}

func NewRestaurantHandler(catalog *service.CatalogService) *RestaurantHandler {
	return &RestaurantHandler{catalog: catalog}
}

type CreateRestaurantRequest struct {
	Name      string  `json:"name" binding:"required"`
	Cuisine   string  `json:"cuisine"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Phone     string  `json:"phone"`
}

// Create registers a restaurant and replicates it to the peer.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and address are required"})
		return
	}

	restaurant := h.catalog.CreateRestaurant(service.RestaurantInput{
		Name:      req.Name,
		Cuisine:   req.Cuisine,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Phone:     req.Phone,
	})
	c.JSON(http.StatusCreated, restaurant)
}

// List returns the local restaurant set merged with the peer's view.
func (h *RestaurantHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListRestaurants(c.Request.Context()))
}

// Get returns a single local restaurant.
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}
	restaurant, err := h.catalog.GetRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetMenu returns a restaurant's menu merged with the peer's view.
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}
	c.JSON(http.StatusOK, h.catalog.GetMenu(c.Request.Context(), id))
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
}

// AddMenuItem adds an item to a restaurant's menu and replicates it to the peer.
func (h *RestaurantHandler) AddMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}

	item, err := h.catalog.CreateMenuItem(id, service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
