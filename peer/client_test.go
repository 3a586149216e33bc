package peer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JAYASASIREKHA/fooddelivery/models"
)

func TestFetchRestaurants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/restaurants", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Restaurant{
			{ID: 1, Name: "Pasta Place", Address: "1 Main St"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	defer c.Close()

	got, err := c.FetchRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pasta Place", got[0].Name)
}

func TestFetchMenuPeerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	defer c.Close()

	_, err := c.FetchMenu(context.Background(), 1)
	assert.Error(t, err)
}

func TestFetchUnreachablePeer(t *testing.T) {
	c := New("http://127.0.0.1:1", zap.NewNop())
	defer c.Close()

	_, err := c.FetchRestaurants(context.Background())
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	c := New("", zap.NewNop())
	defer c.Close()

	assert.False(t, c.Enabled())

	_, err := c.FetchRestaurants(context.Background())
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = c.RegisterUser(context.Background(), AuthPayload{Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrDisabled)

	// replication on a disabled client is a no-op, not a panic
	c.ReplicateRestaurant(RestaurantPayload{Name: "x", Address: "y"})
}

func TestReplicateRestaurantFireAndForget(t *testing.T) {
	received := make(chan RestaurantPayload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/restaurants", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		var p RestaurantPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		received <- p
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	defer c.Close()

	c.ReplicateRestaurant(RestaurantPayload{Name: "Taco Town", Address: "2 Main St"})

	select {
	case p := <-received:
		assert.Equal(t, "Taco Town", p.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("replication never reached the peer")
	}
}

func TestReplicateSwallowsPeerFailure(t *testing.T) {
	// unreachable peer: the call must not block or panic
	c := New("http://127.0.0.1:1", zap.NewNop())
	defer c.Close()

	done := make(chan struct{})
	go func() {
		c.ReplicateMenuItem(1, MenuItemPayload{Name: "Fries", Price: 3.25})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fire-and-forget replication blocked the caller")
	}
}

func TestLoginUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(AuthResult{
			Message: "Login successful",
			User:    models.PublicUser{ID: "USER-123", Email: "a@example.com"},
			Token:   "tok",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	defer c.Close()

	res, err := c.LoginUser(context.Background(), AuthPayload{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "USER-123", res.User.ID)
	assert.Equal(t, "tok", res.Token)
}
