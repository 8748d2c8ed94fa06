// Package realtime is a best-effort wrapper around the backend WebSocket feed.
// It maintains a single connection, fans incoming aqi_update messages out to
// per-location subscribers, and reconnects with bounded exponential backoff.
// Messages missed while disconnected are not replayed.
package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"airdash/internal/metrics"
	"airdash/internal/types"
)

const (
	// MessageTypeAQIUpdate is the payload-bearing message type
	MessageTypeAQIUpdate = "aqi_update"
	// MessageTypeRefresh requests an immediate update from the backend
	MessageTypeRefresh = "refresh"

	initialReconnectDelay = 1 * time.Second
	maxReconnectDelay     = 30 * time.Second
	maxReconnectAttempts  = 5
)

// ErrNotConnected is returned by Refresh when the socket is closed
var ErrNotConnected = errors.New("realtime: not connected")

// Message is the wire format of the realtime feed
type Message struct {
	Type      string          `json:"type"`
	Location  string          `json:"location"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// UpdateCallback receives decoded aqi_update payloads for a subscribed location
type UpdateCallback func(update *types.CurrentAQI)

// MessageHandler receives every raw message from the feed
type MessageHandler func(msg Message)

// Client wraps a single WebSocket connection to the backend feed
type Client struct {
	baseURL string
	dialer  *websocket.Dialer
	logger  *slog.Logger

	// Backoff parameters, fixed in production; overridable in tests
	initialDelay time.Duration
	maxDelay     time.Duration
	maxAttempts  int

	mu             sync.Mutex
	conn           *websocket.Conn
	location       string // slug the connection is bound to
	closed         bool
	attempts       int // consecutive failed reconnect attempts
	terminal       bool
	reconnectTimer *time.Timer

	nextID       int
	subscribers  map[string]map[int]UpdateCallback
	onConnect    map[int]func()
	onDisconnect map[int]func()
	onError      map[int]func(error)
	onMessage    map[int]MessageHandler
}

// NewClient creates a realtime client for the given base URL, e.g.
// "ws://localhost:8000". The connection is opened by Connect.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		dialer:       websocket.DefaultDialer,
		logger:       logger.With("component", "realtime-client"),
		initialDelay: initialReconnectDelay,
		maxDelay:     maxReconnectDelay,
		maxAttempts:  maxReconnectAttempts,
		subscribers:  make(map[string]map[int]UpdateCallback),
		onConnect:    make(map[int]func()),
		onDisconnect: make(map[int]func()),
		onError:      make(map[int]func(error)),
		onMessage:    make(map[int]MessageHandler),
	}
}

// Connect opens the socket for the given location slug. It is a no-op when
// already connected to that location.
func (c *Client) Connect(location string) error {
	slug := types.Slugify(location)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.New("realtime: client closed")
	}
	// A manual connect supersedes any pending automatic reconnect
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	if c.conn != nil && c.location == slug {
		c.mu.Unlock()
		return nil
	}
	if c.conn != nil {
		// Switching locations: drop the old connection first
		_ = c.conn.Close()
		c.conn = nil
	}
	c.location = slug
	c.terminal = false
	c.attempts = 0
	c.mu.Unlock()

	return c.dial(slug)
}

func (c *Client) dial(slug string) error {
	c.mu.Lock()
	if c.closed || c.location != slug || c.conn != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	conn, _, err := c.dialer.Dial(c.baseURL+"/ws/"+slug, nil)
	if err != nil {
		return fmt.Errorf("failed to dial realtime feed: %w", err)
	}

	c.mu.Lock()
	if c.closed || c.location != slug || c.conn != nil {
		// Superseded while dialing; only one connection may live
		c.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	c.conn = conn
	c.attempts = 0
	connectFns := collectFns(c.onConnect)
	c.mu.Unlock()

	metrics.RealtimeConnected.Set(1)
	c.logger.Info("realtime feed connected", "location", slug)
	for _, fn := range connectFns {
		fn()
	}

	go c.readLoop(conn, slug)
	return nil
}

// SubscribeToLocation registers a callback for aqi_update messages matching
// the location. The returned function removes the subscription.
func (c *Client) SubscribeToLocation(location string, cb UpdateCallback) (unsubscribe func()) {
	slug := types.Slugify(location)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subscribers[slug] == nil {
		c.subscribers[slug] = make(map[int]UpdateCallback)
	}
	id := c.nextID
	c.nextID++
	c.subscribers[slug][id] = cb

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers[slug], id)
	}
}

// OnConnect registers an observer fired after every successful connect
func (c *Client) OnConnect(fn func()) (detach func()) {
	return c.register(c.onConnect, fn)
}

// OnDisconnect registers an observer fired when the connection drops
func (c *Client) OnDisconnect(fn func()) (detach func()) {
	return c.register(c.onDisconnect, fn)
}

// OnError registers an observer for socket and reconnection errors
func (c *Client) OnError(fn func(error)) (detach func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.onError[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.onError, id)
	}
}

// OnMessage registers an observer for every raw message
func (c *Client) OnMessage(fn MessageHandler) (detach func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.onMessage[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.onMessage, id)
	}
}

func (c *Client) register(m map[int]func(), fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	m[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(m, id)
	}
}

// Refresh sends a manual refresh request over the open socket.
// Returns ErrNotConnected when the socket is down.
func (c *Client) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}
	msg := Message{Type: MessageTypeRefresh, Location: c.location, Timestamp: time.Now().UTC()}
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send refresh: %w", err)
	}
	return nil
}

// Connected reports whether the socket is currently open
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Close detaches listeners, stops reconnection, and closes the socket.
// No background work continues after Close returns.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
	conn := c.conn
	c.conn = nil
	c.subscribers = make(map[string]map[int]UpdateCallback)
	c.onConnect = make(map[int]func())
	c.onDisconnect = make(map[int]func())
	c.onError = make(map[int]func(error))
	c.onMessage = make(map[int]MessageHandler)
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	metrics.RealtimeConnected.Set(0)
}

// readLoop consumes messages until the connection fails or is superseded
func (c *Client) readLoop(conn *websocket.Conn, slug string) {
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			c.handleDisconnect(conn, slug, err)
			return
		}
		c.dispatch(msg)
	}
}

func (c *Client) dispatch(msg Message) {
	metrics.RealtimeMessagesTotal.WithLabelValues(msg.Type).Inc()

	c.mu.Lock()
	handlers := make([]MessageHandler, 0, len(c.onMessage))
	for _, fn := range c.onMessage {
		handlers = append(handlers, fn)
	}
	var callbacks []UpdateCallback
	if msg.Type == MessageTypeAQIUpdate {
		for _, cb := range c.subscribers[types.Slugify(msg.Location)] {
			callbacks = append(callbacks, cb)
		}
	}
	c.mu.Unlock()

	for _, fn := range handlers {
		fn(msg)
	}

	if len(callbacks) == 0 {
		return
	}

	var update types.CurrentAQI
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		c.logger.Warn("failed to decode aqi_update payload", "location", msg.Location, "error", err)
		c.emitError(fmt.Errorf("failed to decode aqi_update payload: %w", err))
		return
	}
	for _, cb := range callbacks {
		cb(&update)
	}
}

// handleDisconnect records the drop and schedules a reconnect attempt
func (c *Client) handleDisconnect(conn *websocket.Conn, slug string, cause error) {
	_ = conn.Close()

	c.mu.Lock()
	if c.closed || c.conn != conn {
		// Closed by Close(), or superseded by a newer connection
		c.mu.Unlock()
		return
	}
	c.conn = nil
	disconnectFns := collectFns(c.onDisconnect)
	c.mu.Unlock()

	metrics.RealtimeConnected.Set(0)
	c.logger.Warn("realtime feed disconnected", "location", slug, "error", cause)
	for _, fn := range disconnectFns {
		fn()
	}
	c.emitError(fmt.Errorf("realtime connection lost: %w", cause))

	c.scheduleReconnect(slug)
}

// scheduleReconnect arms the single reconnect timer with exponential backoff.
// After maxAttempts consecutive failures reconnection stops permanently.
func (c *Client) scheduleReconnect(slug string) {
	c.mu.Lock()
	if c.closed || c.terminal || c.location != slug || c.conn != nil {
		c.mu.Unlock()
		return
	}
	if c.attempts >= c.maxAttempts {
		c.terminal = true
		c.mu.Unlock()
		c.logger.Error("realtime reconnection abandoned", "location", slug, "attempts", c.maxAttempts)
		c.emitError(fmt.Errorf("failed to reconnect after %d attempts", c.maxAttempts))
		return
	}

	delay := c.initialDelay << c.attempts
	if delay > c.maxDelay {
		delay = c.maxDelay
	}
	c.attempts++
	attempt := c.attempts
	c.reconnectTimer = time.AfterFunc(delay, func() {
		metrics.RealtimeReconnectsTotal.Inc()
		c.logger.Info("attempting realtime reconnect", "location", slug, "attempt", attempt)
		if err := c.dial(slug); err != nil {
			c.emitError(err)
			c.scheduleReconnect(slug)
		}
	})
	c.mu.Unlock()
}

func (c *Client) emitError(err error) {
	c.mu.Lock()
	fns := make([]func(error), 0, len(c.onError))
	for _, fn := range c.onError {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(err)
	}
}

func collectFns(m map[int]func()) []func() {
	fns := make([]func(), 0, len(m))
	for _, fn := range m {
		fns = append(fns, fn)
	}
	return fns
}
