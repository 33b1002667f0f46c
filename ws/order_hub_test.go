package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backend/entity"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*OrderHub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewOrderHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/kitchen", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/kitchen"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *OrderHub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("hub never reached %d clients (have %d)", n, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func testEvent(id uint) services.OrderEvent {
	return services.OrderEvent{
		Event: services.EventOrderCreated,
		Order: &services.OrderSnapshot{ID: id, Status: entity.StatusReceived, TotalAmount: 320},
	}
}

func TestPublishReachesAllClients(t *testing.T) {
	hub, url := newTestHub(t)

	a := dial(t, url)
	b := dial(t, url)
	waitForClients(t, hub, 2)

	hub.Publish(testEvent(7))

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev services.OrderEvent
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, services.EventOrderCreated, ev.Event)
		assert.Equal(t, uint(7), ev.Order.ID)
		assert.Equal(t, int64(320), ev.Order.TotalAmount)
	}
}

func TestDisconnectedClientIsEvicted(t *testing.T) {
	hub, url := newTestHub(t)

	a := dial(t, url)
	b := dial(t, url)
	waitForClients(t, hub, 2)

	b.Close()
	waitForClients(t, hub, 1)

	// publishing after a disconnect neither blocks nor loses the
	// remaining client
	hub.Publish(testEvent(8))

	a.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev services.OrderEvent
	require.NoError(t, a.ReadJSON(&ev))
	assert.Equal(t, uint(8), ev.Order.ID)
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewOrderHub() // Run not started: nothing drains the buffer

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			hub.Publish(testEvent(uint(i)))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked the caller")
	}
}
