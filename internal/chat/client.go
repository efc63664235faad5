// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelpin/internal/logging"
	"github.com/tomtom215/reelpin/internal/metrics"
)

// Wire event types of the hosted webchat protocol.
const (
	eventMessage = "message"
	payloadText  = "text"
)

// event is the wire format exchanged with the hosted webchat endpoint.
type event struct {
	Type    string  `json:"type"`
	Payload payload `json:"payload"`
}

type payload struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

// Config configures the websocket chat client.
type Config struct {
	// URL is the hosted webchat websocket endpoint.
	URL string

	// HandshakeTimeout bounds the websocket dial.
	// Default: 10s
	HandshakeTimeout time.Duration

	// QueueSize bounds the number of messages held while loading.
	// Default: 16
	QueueSize int

	// FailureThreshold is the number of consecutive connection failures
	// before the breaker opens. Default: 3
	FailureThreshold uint32

	// BreakerTimeout is the open-state duration before the breaker
	// allows another connection attempt. Default: 30s
	BreakerTimeout time.Duration
}

// Client is a Widget implementation speaking the hosted webchat protocol
// over a websocket connection. It also runs as a supervised service:
// Serve maintains the connection and the read loop.
type Client struct {
	cfg     Config
	breaker *gobreaker.CircuitBreaker[*websocket.Conn]

	mu       sync.Mutex
	state    State
	conn     *websocket.Conn
	pending  []string
	visible  bool
	unread   int
	handlers []func(Message)
}

// NewClient creates a chat client in StateLoading.
func NewClient(cfg Config) *Client {
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = 10 * time.Second
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 16
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    "chat-widget",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Chat breaker state change")
		},
	}

	c := &Client{
		cfg:     cfg,
		breaker: gobreaker.NewCircuitBreaker[*websocket.Conn](settings),
		state:   StateLoading,
	}
	metrics.SetChatState(int(StateLoading))
	return c
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Unread returns the current unread message count.
func (c *Client) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// Open implements Widget.
func (c *Client) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = true
	c.unread = 0
}

// Close implements Widget.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
}

// Send implements Widget. Messages are queued while loading, delivered
// while ready and dropped with ErrUnavailable after failure.
func (c *Client) Send(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateReady:
		return c.writeMessage(text)
	case StateLoading:
		if len(c.pending) >= c.cfg.QueueSize {
			metrics.ChatMessagesDropped.Inc()
			return ErrUnavailable
		}
		c.pending = append(c.pending, text)
		return nil
	default:
		metrics.ChatMessagesDropped.Inc()
		return ErrUnavailable
	}
}

// AskAboutMovie submits the canned "tell me about" prompt for a title.
func (c *Client) AskAboutMovie(title string) error {
	return c.Send(`Tell me about the movie "` + title + `"`)
}

// OnIncoming implements Widget.
func (c *Client) OnIncoming(handler func(Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// writeMessage sends a text event on the connection (must hold mu).
func (c *Client) writeMessage(text string) error {
	ev := event{
		Type:    eventMessage,
		Payload: payload{Type: payloadText, Text: text},
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal chat event: %w", err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		metrics.ChatMessagesDropped.Inc()
		return fmt.Errorf("write chat event: %w", err)
	}
	metrics.ChatMessagesSent.Inc()
	return nil
}

// Serve implements suture.Service. It dials the webchat endpoint through
// the circuit breaker, transitions Loading -> Ready, flushes queued
// messages and runs the read loop until the context is canceled or the
// connection drops. On any failure the state becomes Failed and the
// supervisor restarts the service with backoff (state returns to Loading
// for the next attempt).
func (c *Client) Serve(ctx context.Context) error {
	c.setState(StateLoading)

	conn, err := c.breaker.Execute(func() (*websocket.Conn, error) {
		dialer := websocket.Dialer{HandshakeTimeout: c.cfg.HandshakeTimeout}
		conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
		return conn, err
	})
	if err != nil {
		c.setState(StateFailed)
		logging.Warn().Err(err).Str("url", c.cfg.URL).Msg("Chat widget unavailable")
		return fmt.Errorf("dial chat widget: %w", err)
	}

	c.becomeReady(conn)
	defer func() {
		//nolint:errcheck // Connection teardown, nothing to do on error
		conn.Close()
	}()

	// Close the connection when the context ends so the blocked read
	// below unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			//nolint:errcheck // Best-effort shutdown
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				c.setState(StateLoading)
				return ctx.Err()
			}
			c.setState(StateFailed)
			return fmt.Errorf("chat connection lost: %w", err)
		}
		c.dispatch(data)
	}
}

// String implements fmt.Stringer for supervisor logging.
func (c *Client) String() string {
	return "chat-widget"
}

// becomeReady installs the connection, transitions to Ready and flushes
// any messages queued during loading. Queued messages that fail to write
// are dropped; a missed send is silent by design of the original widget.
func (c *Client) becomeReady(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn = conn
	c.state = StateReady
	metrics.SetChatState(int(StateReady))

	for _, text := range c.pending {
		if err := c.writeMessage(text); err != nil {
			logging.Warn().Err(err).Msg("Dropped queued chat message")
		}
	}
	c.pending = nil
	logging.Info().Msg("Chat widget ready")
}

// setState transitions the lifecycle state.
func (c *Client) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
	if s != StateReady {
		c.conn = nil
	}
	metrics.SetChatState(int(s))
}

// dispatch parses an incoming frame and notifies handlers. Non-message
// events and unparsable frames are ignored.
func (c *Client) dispatch(data []byte) {
	var ev event
	if err := json.Unmarshal(data, &ev); err != nil {
		logging.Debug().Err(err).Msg("Ignoring unparsable chat frame")
		return
	}
	if ev.Type != eventMessage {
		return
	}

	metrics.ChatMessagesIncoming.Inc()

	c.mu.Lock()
	if !c.visible {
		c.unread++
	}
	handlers := make([]func(Message), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	msg := Message{Text: ev.Payload.Text}
	for _, h := range handlers {
		h(msg)
	}
}
