package kitchen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"backend/entity"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// displayServer stands in for the ordering backend: it serves the
// kitchen working set and accepts display websocket connections that
// the test can cut at will.
type displayServer struct {
	baseURL string

	mu      sync.Mutex
	items   []*services.OrderSnapshot
	conns   []*websocket.Conn
	resyncs int
}

func (s *displayServer) kitchenSet(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resyncs++
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": gin.H{"items": s.items}})
}

var displayTestUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *displayServer) handleWS(c *gin.Context) {
	conn, err := displayTestUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.conns = append(s.conns, conn)
	s.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *displayServer) setItems(items ...*services.OrderSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func (s *displayServer) dropConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conns {
		c.Close()
	}
	s.conns = nil
}

func (s *displayServer) resyncCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resyncs
}

func startDisplayServer(t *testing.T) *displayServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := &displayServer{}
	r := gin.New()
	r.GET("/orders/kitchen", fs.kitchenSet)
	r.GET("/ws/kitchen", fs.handleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	fs.baseURL = srv.URL
	return fs
}

func TestDisplayResyncsOnReconnect(t *testing.T) {
	fs := startDisplayServer(t)
	fs.setItems(snap(1, entity.StatusReceived))

	d := NewDisplay(fs.baseURL, "token")
	d.ReconnectWait = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	// the initial board fills from the resync fetch alone: no event has
	// been pushed on the socket
	require.Eventually(t, func() bool {
		_, ok := d.Board.Get(1)
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, fs.resyncCount(), 1)

	// while the display is cut off, order 1 completes and order 2
	// arrives; both changes are only visible through the next resync
	fs.setItems(snap(2, entity.StatusPreparing))
	fs.dropConnections()

	require.Eventually(t, func() bool {
		_, stale := d.Board.Get(1)
		_, ok := d.Board.Get(2)
		return !stale && ok
	}, 3*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, fs.resyncCount(), 2)
}
