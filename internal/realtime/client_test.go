package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"airdash/internal/types"
)

var upgrader = websocket.Upgrader{}

// newFeedServer starts a test WebSocket server whose handler receives every
// upgraded connection. Returns the server and its ws:// base URL.
func newFeedServer(t *testing.T, handler func(conn *websocket.Conn)) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		handler(conn)
	}))
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func newTestClient(baseURL string) *Client {
	c := NewClient(baseURL, slog.New(slog.NewTextHandler(testWriter{}, nil)))
	c.initialDelay = time.Millisecond
	c.maxDelay = 5 * time.Millisecond
	return c
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func mustUpdateMessage(t *testing.T, location string, aqiValue int) Message {
	t.Helper()
	payload, err := json.Marshal(types.CurrentAQI{AQI: aqiValue})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return Message{
		Type:      MessageTypeAQIUpdate,
		Location:  location,
		Timestamp: time.Now().UTC(),
		Data:      payload,
	}
}

func TestSubscribeToLocation_FanOut(t *testing.T) {
	send := make(chan Message, 4)
	srv, wsURL := newFeedServer(t, func(conn *websocket.Conn) {
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	})
	defer srv.Close()
	defer close(send)

	client := newTestClient(wsURL)
	defer client.Close()

	delhi := make(chan *types.CurrentAQI, 1)
	mumbai := make(chan *types.CurrentAQI, 1)
	client.SubscribeToLocation("New Delhi", func(u *types.CurrentAQI) { delhi <- u })
	client.SubscribeToLocation("mumbai", func(u *types.CurrentAQI) { mumbai <- u })

	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}

	send <- mustUpdateMessage(t, "new-delhi", 182)
	send <- mustUpdateMessage(t, "mumbai", 95)

	select {
	case u := <-delhi:
		if u.AQI != 182 {
			t.Errorf("delhi subscriber got AQI %d, want 182", u.AQI)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("delhi subscriber never received its update")
	}

	select {
	case u := <-mumbai:
		if u.AQI != 95 {
			t.Errorf("mumbai subscriber got AQI %d, want 95", u.AQI)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("mumbai subscriber never received its update")
	}
}

func TestSubscribeToLocation_Unsubscribe(t *testing.T) {
	send := make(chan Message, 2)
	srv, wsURL := newFeedServer(t, func(conn *websocket.Conn) {
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	})
	defer srv.Close()
	defer close(send)

	client := newTestClient(wsURL)
	defer client.Close()

	delivered := make(chan int, 2)
	unsubscribe := client.SubscribeToLocation("new-delhi", func(u *types.CurrentAQI) { delivered <- u.AQI })

	seen := make(chan struct{}, 2)
	client.OnMessage(func(Message) { seen <- struct{}{} })

	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}

	send <- mustUpdateMessage(t, "new-delhi", 50)
	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("first update never delivered")
	}

	unsubscribe()
	send <- mustUpdateMessage(t, "new-delhi", 60)
	<-seen
	<-seen

	select {
	case aqi := <-delivered:
		t.Errorf("callback fired with AQI %d after unsubscribe", aqi)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestConnect_NoOpWhenAlreadyConnected(t *testing.T) {
	var upgrades atomic.Int32
	srv, wsURL := newFeedServer(t, func(conn *websocket.Conn) {
		upgrades.Add(1)
		// Hold the connection open
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer srv.Close()

	client := newTestClient(wsURL)
	defer client.Close()

	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("first Connect() failed: %v", err)
	}
	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("second Connect() failed: %v", err)
	}

	if got := upgrades.Load(); got != 1 {
		t.Errorf("server saw %d connections, want 1", got)
	}
}

func TestConnect_SupersedesPendingReconnect(t *testing.T) {
	var upgrades atomic.Int32
	srv, wsURL := newFeedServer(t, func(conn *websocket.Conn) {
		if upgrades.Add(1) == 1 {
			// Drop the first connection to arm the reconnect timer
			conn.Close()
			return
		}
		_ = conn.WriteJSON(Message{
			Type:      MessageTypeAQIUpdate,
			Location:  "new-delhi",
			Timestamp: time.Now().UTC(),
			Data:      json.RawMessage(`{"aqi":140}`),
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer srv.Close()

	client := newTestClient(wsURL)
	// Slow the backoff so the manual connect lands while the timer is pending
	client.initialDelay = 50 * time.Millisecond
	client.maxDelay = 50 * time.Millisecond
	defer client.Close()

	disconnected := make(chan struct{}, 1)
	client.OnDisconnect(func() {
		select {
		case disconnected <- struct{}{}:
		default:
		}
	})

	delivered := make(chan int, 4)
	client.SubscribeToLocation("new-delhi", func(u *types.CurrentAQI) { delivered <- u.AQI })

	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}

	select {
	case <-disconnected:
	case <-time.After(2 * time.Second):
		t.Fatal("disconnect event never fired")
	}
	// Let the drop handler finish arming the reconnect timer
	time.Sleep(10 * time.Millisecond)

	// Manual reconnect while the automatic one is still pending
	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("manual Connect() failed: %v", err)
	}

	select {
	case aqi := <-delivered:
		if aqi != 140 {
			t.Errorf("got AQI %d, want 140", aqi)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("update never delivered after manual reconnect")
	}

	// Give the stale timer time to fire; it must not open a second connection
	time.Sleep(200 * time.Millisecond)

	if got := upgrades.Load(); got != 2 {
		t.Errorf("server saw %d connections, want 2", got)
	}
	select {
	case aqi := <-delivered:
		t.Errorf("duplicate delivery of AQI %d from a second live connection", aqi)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRefresh_NotConnected(t *testing.T) {
	client := newTestClient("ws://127.0.0.1:0")
	defer client.Close()

	if err := client.Refresh(); err != ErrNotConnected {
		t.Errorf("Refresh() = %v, want ErrNotConnected", err)
	}
}

func TestRefresh_SendsRequest(t *testing.T) {
	received := make(chan Message, 1)
	srv, wsURL := newFeedServer(t, func(conn *websocket.Conn) {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		received <- msg
	})
	defer srv.Close()

	client := newTestClient(wsURL)
	defer client.Close()

	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	if err := client.Refresh(); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	select {
	case msg := <-received:
		if msg.Type != MessageTypeRefresh {
			t.Errorf("server received type %q, want %q", msg.Type, MessageTypeRefresh)
		}
		if msg.Location != "new-delhi" {
			t.Errorf("server received location %q, want %q", msg.Location, "new-delhi")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the refresh request")
	}
}

func TestReconnect_Reestablishes(t *testing.T) {
	var connections atomic.Int32
	srv, wsURL := newFeedServer(t, func(conn *websocket.Conn) {
		n := connections.Add(1)
		if n == 1 {
			// Drop the first connection immediately to force a reconnect
			conn.Close()
			return
		}
		_ = conn.WriteJSON(Message{
			Type:      MessageTypeAQIUpdate,
			Location:  "new-delhi",
			Timestamp: time.Now().UTC(),
			Data:      json.RawMessage(`{"aqi":77}`),
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer srv.Close()

	client := newTestClient(wsURL)
	defer client.Close()

	connects := make(chan struct{}, 4)
	client.OnConnect(func() { connects <- struct{}{} })

	updates := make(chan *types.CurrentAQI, 1)
	client.SubscribeToLocation("new-delhi", func(u *types.CurrentAQI) { updates <- u })

	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}

	// First connect, then the automatic reconnect
	for i := 0; i < 2; i++ {
		select {
		case <-connects:
		case <-time.After(2 * time.Second):
			t.Fatalf("connect event %d never fired", i+1)
		}
	}

	select {
	case u := <-updates:
		if u.AQI != 77 {
			t.Errorf("got AQI %d after reconnect, want 77", u.AQI)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no update received after reconnect")
	}
}

func TestReconnect_StopsAfterMaxAttempts(t *testing.T) {
	drop := make(chan struct{})
	srv, wsURL := newFeedServer(t, func(conn *websocket.Conn) {
		<-drop
		conn.Close()
	})

	client := newTestClient(wsURL)
	defer client.Close()

	errs := make(chan error, 16)
	client.OnError(func(err error) { errs <- err })

	disconnected := make(chan struct{}, 1)
	client.OnDisconnect(func() {
		select {
		case disconnected <- struct{}{}:
		default:
		}
	})

	if err := client.Connect("new-delhi"); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}

	// Close the listener first so every reconnect attempt fails, then drop
	// the live connection
	srv.Close()
	close(drop)

	select {
	case <-disconnected:
	case <-time.After(2 * time.Second):
		t.Fatal("disconnect event never fired")
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-errs:
			if strings.Contains(err.Error(), "failed to reconnect after 5 attempts") {
				if client.Connected() {
					t.Error("client reports connected after terminal reconnect failure")
				}
				return
			}
		case <-deadline:
			t.Fatal("terminal reconnect error never surfaced")
		}
	}
}
