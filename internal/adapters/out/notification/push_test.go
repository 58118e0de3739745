package notification_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"waterdrop/internal/adapters/out/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushClient_Notify(t *testing.T) {
	var received struct {
		Token string            `json:"token"`
		Title string            `json:"title"`
		Body  string            `json:"body"`
		Data  map[string]string `json:"data"`
	}
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := notification.NewPushClient(server.URL, "test-key")
	require.NoError(t, err)

	err = client.Notify(t.Context(), "device-token-1", "Order update", "Your order is out for delivery",
		map[string]string{"order_id": "o-1"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "device-token-1", received.Token)
	assert.Equal(t, "Order update", received.Title)
	assert.Equal(t, "Your order is out for delivery", received.Body)
	assert.Equal(t, "o-1", received.Data["order_id"])
}

func TestPushClient_Notify_EmptyTokenIsNoOp(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client, err := notification.NewPushClient(server.URL, "")
	require.NoError(t, err)

	require.NoError(t, client.Notify(t.Context(), "", "title", "body", nil))
	assert.Zero(t, calls)
}

func TestPushClient_Notify_GatewayErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := notification.NewPushClient(server.URL, "")
	require.NoError(t, err)

	err = client.Notify(t.Context(), "device-token-1", "title", "body", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestNewPushClient_RequiresEndpoint(t *testing.T) {
	_, err := notification.NewPushClient("", "key")
	require.Error(t, err)
}
