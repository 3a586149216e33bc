// Package peer wraps all outbound calls to the twin service. The peer is always
// optional: any network or non-2xx outcome is reported as an error here and
// swallowed by callers, never surfaced to API clients.
package peer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/JAYASASIREKHA/fooddelivery/models"
)

// ErrDisabled is returned by result-gating calls when no peer is configured.
var ErrDisabled = errors.New("peer sync disabled")

const (
	// syncTimeout bounds calls whose result gates the response (login/register
	// fallback, read-merge).
	syncTimeout = 2 * time.Second
	// replicateTimeout bounds fire-and-forget replication whose result is
	// discarded.
	replicateTimeout = 1 * time.Second

	replicationWorkers = 4
	replicationQueue   = 64
)

type Client struct {
	baseURL    string
	syncClient *http.Client
	repClient  *http.Client
	tasks      chan func()
	log        *zap.Logger
}

// New builds a client for the twin service at baseURL and starts the
// replication worker pool. An empty baseURL yields a disabled client whose
// replication calls are no-ops and whose reads fail with ErrDisabled.
func New(baseURL string, log *zap.Logger) *Client {
	c := &Client{
		baseURL:    baseURL,
		syncClient: &http.Client{Timeout: syncTimeout},
		repClient:  &http.Client{Timeout: replicateTimeout},
		tasks:      make(chan func(), replicationQueue),
		log:        log,
	}
	for i := 0; i < replicationWorkers; i++ {
		go c.worker()
	}
	return c
}

func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Close stops the replication workers once queued tasks drain.
func (c *Client) Close() {
	close(c.tasks)
}

func (c *Client) worker() {
	for task := range c.tasks {
		task()
	}
}

// enqueue dispatches a replication task without ever blocking the caller. A
// full queue drops the task; the peer contract is best-effort.
func (c *Client) enqueue(task func()) {
	if !c.Enabled() {
		return
	}
	select {
	case c.tasks <- task:
	default:
		c.log.Warn("peer replication queue full, dropping task")
	}
}

// ── Identity ────────────────────────────────────────────────────────

// AuthPayload mirrors the peer's register/login request body.
type AuthPayload struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResult is the peer's canonical answer to register/login.
type AuthResult struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// RegisterUser delegates a registration to the peer and returns its canonical
// user record on success.
func (c *Client) RegisterUser(ctx context.Context, p AuthPayload) (*AuthResult, error) {
	var res AuthResult
	if err := c.postJSON(ctx, c.syncClient, "/api/auth/register", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// LoginUser delegates a login to the peer.
func (c *Client) LoginUser(ctx context.Context, p AuthPayload) (*AuthResult, error) {
	var res AuthResult
	if err := c.postJSON(ctx, c.syncClient, "/api/auth/login", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ReplicateUser informs the peer of a locally minted user for eventual sync.
// Fire-and-forget; failures are logged and ignored.
func (c *Client) ReplicateUser(p AuthPayload) {
	c.enqueue(func() {
		ctx, cancel := context.WithTimeout(context.Background(), replicateTimeout)
		defer cancel()
		if err := c.postJSON(ctx, c.repClient, "/api/auth/register", p, nil); err != nil {
			c.log.Debug("user replication failed", zap.Error(err))
		}
	})
}

// ── Catalog ─────────────────────────────────────────────────────────

// FetchRestaurants reads the peer's restaurant set for merge-on-read.
func (c *Client) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var out []models.Restaurant
	if err := c.getJSON(ctx, "/api/restaurants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchMenu reads the peer's menu for a restaurant for merge-on-read.
func (c *Client) FetchMenu(ctx context.Context, restaurantID int) ([]models.MenuItem, error) {
	var out []models.MenuItem
	path := fmt.Sprintf("/api/restaurants/%d/menu", restaurantID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RestaurantPayload mirrors the peer's create-restaurant body.
type RestaurantPayload struct {
	Name      string  `json:"name"`
	Cuisine   string  `json:"cuisine"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Phone     string  `json:"phone"`
}

// ReplicateRestaurant pushes a locally created restaurant to the peer.
func (c *Client) ReplicateRestaurant(p RestaurantPayload) {
	c.enqueue(func() {
		ctx, cancel := context.WithTimeout(context.Background(), replicateTimeout)
		defer cancel()
		if err := c.postJSON(ctx, c.repClient, "/api/restaurants", p, nil); err != nil {
			c.log.Debug("restaurant replication failed", zap.Error(err))
		}
	})
}

// MenuItemPayload mirrors the peer's create-menu-item body.
type MenuItemPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// ReplicateMenuItem pushes a locally created menu item to the peer.
func (c *Client) ReplicateMenuItem(restaurantID int, p MenuItemPayload) {
	c.enqueue(func() {
		ctx, cancel := context.WithTimeout(context.Background(), replicateTimeout)
		defer cancel()
		path := fmt.Sprintf("/api/restaurants/%d/menu/items", restaurantID)
		if err := c.postJSON(ctx, c.repClient, path, p, nil); err != nil {
			c.log.Debug("menu item replication failed", zap.Error(err))
		}
	})
}

// ── Transport ───────────────────────────────────────────────────────

func (c *Client) postJSON(ctx context.Context, hc *http.Client, path string, body, out any) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("peer returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.syncClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("peer returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
