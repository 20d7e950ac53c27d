package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealtimeHubBroadcast(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(&WSClient{UserID: 7, Conn: conn})
		close(registered)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	<-registered

	// broadcasting to a user with no connections must be a no-op
	hub.BroadcastAlert(99, map[string]any{"kind": "alert.created"})

	hub.BroadcastAlert(7, map[string]any{"kind": "alert.created", "message": "milk expires tomorrow"})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "alert.created")
	assert.Contains(t, string(msg), "milk expires tomorrow")
}

func TestRealtimeHubUnregister(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	clients := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{UserID: 7, Conn: conn}
		hub.Register(cl)
		clients <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	cl := <-clients
	hub.Unregister(cl)

	hub.mu.RLock()
	_, stillThere := hub.clients[7]
	hub.mu.RUnlock()
	assert.False(t, stillThere)

	// a second unregister of the same client must not panic
	hub.Unregister(cl)
}
