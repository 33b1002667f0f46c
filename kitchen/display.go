package kitchen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"backend/services"

	"github.com/gorilla/websocket"
)

// Display drives one kitchen screen: it resyncs the full working set
// over REST, then consumes pushed events, and starts over whenever the
// connection drops. The resync on every (re)connect is what makes lost
// events harmless.
type Display struct {
	BaseURL string // e.g. http://localhost:8000
	Token   string
	Board   *Board

	// ReconnectWait defaults to 3s when zero.
	ReconnectWait time.Duration

	httpClient *http.Client
}

func NewDisplay(baseURL, token string) *Display {
	return &Display{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		Board:      NewBoard(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Run blocks until ctx is cancelled, reconnecting forever.
func (d *Display) Run(ctx context.Context) error {
	wait := d.ReconnectWait
	if wait == 0 {
		wait = 3 * time.Second
	}

	for {
		if err := d.connectOnce(ctx); err != nil {
			log.Printf("display: connection lost: %v", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// connectOnce resyncs, dials, then reads events until the connection
// fails. The resync happens before the event stream is consumed, so a
// stale board never survives a reconnect.
func (d *Display) connectOnce(ctx context.Context) error {
	if err := d.resync(ctx); err != nil {
		return fmt.Errorf("resync: %w", err)
	}

	wsURL := strings.Replace(d.BaseURL, "http", "ws", 1) + "/ws/kitchen?token=" + d.Token
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var ev services.OrderEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return err
		}
		d.Board.Apply(ev.Order)
	}
}

type kitchenSetResponse struct {
	OK   bool `json:"ok"`
	Data struct {
		Items []*services.OrderSnapshot `json:"items"`
	} `json:"data"`
}

func (d *Display) resync(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.BaseURL+"/orders/kitchen", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+d.Token)

	res, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("kitchen set returned %d", res.StatusCode)
	}

	var body kitchenSetResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return err
	}

	d.Board.Resync(body.Data.Items)
	return nil
}
