// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

package chat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// chatServer is a minimal hosted-webchat stand-in: it records frames the
// client writes and can push frames down to the client.
type chatServer struct {
	srv      *httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conn     *websocket.Conn
	received []event
	connCh   chan struct{}
}

func newChatServer(t *testing.T) *chatServer {
	t.Helper()
	cs := &chatServer{connCh: make(chan struct{}, 1)}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := cs.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cs.mu.Lock()
		cs.conn = conn
		cs.mu.Unlock()
		select {
		case cs.connCh <- struct{}{}:
		default:
		}

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev event
			if err := json.Unmarshal(data, &ev); err != nil {
				continue
			}
			cs.mu.Lock()
			cs.received = append(cs.received, ev)
			cs.mu.Unlock()
		}
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func (cs *chatServer) url() string {
	return "ws" + strings.TrimPrefix(cs.srv.URL, "http")
}

func (cs *chatServer) push(t *testing.T, ev event) {
	t.Helper()
	cs.mu.Lock()
	conn := cs.conn
	cs.mu.Unlock()
	if conn == nil {
		t.Fatal("no client connection to push to")
	}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal push frame: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("push frame: %v", err)
	}
}

func (cs *chatServer) receivedTexts() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]string, len(cs.received))
	for i, ev := range cs.received {
		out[i] = ev.Payload.Text
	}
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

func TestNewClientStartsLoading(t *testing.T) {
	c := NewClient(Config{URL: "ws://unused"})
	if c.State() != StateLoading {
		t.Errorf("expected StateLoading, got %v", c.State())
	}
}

func TestSendWhileLoadingQueues(t *testing.T) {
	c := NewClient(Config{URL: "ws://unused", QueueSize: 2})

	if err := c.Send("first"); err != nil {
		t.Errorf("expected queued send, got %v", err)
	}
	if err := c.Send("second"); err != nil {
		t.Errorf("expected queued send, got %v", err)
	}

	// Queue is full now.
	if err := c.Send("third"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable on full queue, got %v", err)
	}
}

func TestSendAfterFailure(t *testing.T) {
	c := NewClient(Config{URL: "ws://unused"})
	c.setState(StateFailed)

	if err := c.Send("hello"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestAskAboutMoviePrompt(t *testing.T) {
	c := NewClient(Config{URL: "ws://unused"})

	if err := c.AskAboutMovie("Inception"); err != nil {
		t.Fatalf("AskAboutMovie failed: %v", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) != 1 {
		t.Fatalf("expected 1 queued message, got %d", len(c.pending))
	}
	want := `Tell me about the movie "Inception"`
	if c.pending[0] != want {
		t.Errorf("expected %q, got %q", want, c.pending[0])
	}
}

func TestServeBecomesReadyAndFlushesQueue(t *testing.T) {
	server := newChatServer(t)
	c := NewClient(Config{URL: server.url()})

	if err := c.Send("queued while loading"); err != nil {
		t.Fatalf("queued send failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		//nolint:errcheck // Serve returns ctx.Err on cancel
		c.Serve(ctx)
	}()

	waitFor(t, 2*time.Second, func() bool { return c.State() == StateReady })
	waitFor(t, 2*time.Second, func() bool { return len(server.receivedTexts()) == 1 })

	texts := server.receivedTexts()
	if texts[0] != "queued while loading" {
		t.Errorf("expected queued message flushed, got %q", texts[0])
	}

	// A direct send while ready goes straight through.
	if err := c.Send("live message"); err != nil {
		t.Fatalf("live send failed: %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return len(server.receivedTexts()) == 2 })
}

func TestIncomingMessagesAndUnreadBadge(t *testing.T) {
	server := newChatServer(t)
	c := NewClient(Config{URL: server.url()})

	var mu sync.Mutex
	var got []Message
	c.OnIncoming(func(m Message) {
		mu.Lock()
		got = append(got, m)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		//nolint:errcheck // Serve returns ctx.Err on cancel
		c.Serve(ctx)
	}()

	waitFor(t, 2*time.Second, func() bool { return c.State() == StateReady })

	server.push(t, event{Type: eventMessage, Payload: payload{Type: payloadText, Text: "hi there"}})
	waitFor(t, 2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	})

	mu.Lock()
	if got[0].Text != "hi there" {
		t.Errorf("expected message text %q, got %q", "hi there", got[0].Text)
	}
	mu.Unlock()

	// Widget was never opened, so the message counts as unread.
	if c.Unread() != 1 {
		t.Errorf("expected 1 unread, got %d", c.Unread())
	}

	c.Open()
	if c.Unread() != 0 {
		t.Errorf("expected unread cleared after Open, got %d", c.Unread())
	}

	// While visible, new messages do not count as unread.
	server.push(t, event{Type: eventMessage, Payload: payload{Type: payloadText, Text: "second"}})
	waitFor(t, 2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	})
	if c.Unread() != 0 {
		t.Errorf("expected 0 unread while visible, got %d", c.Unread())
	}

	// Non-message and unparsable frames are ignored.
	server.push(t, event{Type: "presence"})
	cs := server
	cs.mu.Lock()
	conn := cs.conn
	cs.mu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, []byte("{broken")); err != nil {
		t.Fatalf("push garbage frame: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	if len(got) != 2 {
		t.Errorf("expected ignored frames to not reach handlers, got %d messages", len(got))
	}
	mu.Unlock()
}

func TestServeDialFailure(t *testing.T) {
	c := NewClient(Config{
		URL:              "ws://127.0.0.1:1", // nothing listens here
		HandshakeTimeout: 200 * time.Millisecond,
		FailureThreshold: 2,
	})

	err := c.Serve(context.Background())
	if err == nil {
		t.Fatal("expected dial error")
	}
	if c.State() != StateFailed {
		t.Errorf("expected StateFailed after dial error, got %v", c.State())
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	c := NewClient(Config{
		URL:              "ws://127.0.0.1:1",
		HandshakeTimeout: 200 * time.Millisecond,
		FailureThreshold: 2,
		BreakerTimeout:   time.Minute,
	})

	for i := 0; i < 2; i++ {
		if err := c.Serve(context.Background()); err == nil {
			t.Fatalf("attempt %d: expected dial error", i+1)
		}
	}

	// The breaker is open now; the next attempt fails without dialing.
	start := time.Now()
	err := c.Serve(context.Background())
	if err == nil {
		t.Fatal("expected breaker-open error")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("open breaker should fail fast, took %v", elapsed)
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	server := newChatServer(t)
	c := NewClient(Config{URL: server.url()})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Serve(ctx)
	}()

	waitFor(t, 2*time.Second, func() bool { return c.State() == StateReady })
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateLoading, "loading"},
		{StateReady, "ready"},
		{StateFailed, "failed"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestStarters(t *testing.T) {
	starters := Starters()
	if len(starters) != 5 {
		t.Fatalf("expected 5 conversation starters, got %d", len(starters))
	}

	starters[0] = "mutated"
	if Starters()[0] == "mutated" {
		t.Error("Starters() exposes the internal slice")
	}
}
