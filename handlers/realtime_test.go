package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"go-lifeline/fanout"
	"go-lifeline/rooms"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSSETransportDropsWhenBufferFull(t *testing.T) {
	tr := newSSETransport()

	for i := 0; i < sseBufferSize; i++ {
		if err := tr.Send("notification", gin.H{"seq": i}); err != nil {
			t.Fatalf("send %d should fit in the buffer: %v", i, err)
		}
	}

	// A full buffer must fail the send immediately, not block the caller.
	done := make(chan error, 1)
	go func() {
		done <- tr.Send("notification", gin.H{"seq": sseBufferSize})
	}()
	select {
	case err := <-done:
		if !errors.Is(err, errClientBufferFull) {
			t.Fatalf("expected buffer-full error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("send blocked on a full buffer")
	}
}

func TestFanoutSurvivesFullSSEBuffer(t *testing.T) {
	registry := rooms.New()

	stalled := newSSETransport()
	for i := 0; i < sseBufferSize; i++ {
		if err := stalled.Send("notification", gin.H{"seq": i}); err != nil {
			t.Fatalf("priming send %d failed: %v", i, err)
		}
	}
	healthy := newSSETransport()

	if err := registry.Register("s-stalled", "u1", "CITIZEN", stalled); err != nil {
		t.Fatal(err)
	}
	if err := registry.Register("s-healthy", "u2", "CITIZEN", healthy); err != nil {
		t.Fatal(err)
	}
	room := rooms.RequestRoom("r1")
	if err := registry.JoinRoom("s-stalled", room); err != nil {
		t.Fatal(err)
	}
	if err := registry.JoinRoom("s-healthy", room); err != nil {
		t.Fatal(err)
	}

	n := fanout.New(registry).Emit(room, fanout.EventRequestUpdated, gin.H{"request_id": "r1"})
	if n != 1 {
		t.Fatalf("expected delivery to the one healthy member, got %d", n)
	}

	select {
	case ev := <-healthy.events:
		if ev.Event != fanout.EventRequestUpdated {
			t.Fatalf("unexpected event %q", ev.Event)
		}
	default:
		t.Fatal("healthy member never received the event")
	}
}

func TestRealtimeConnectLifecycle(t *testing.T) {
	registry := rooms.New()
	r := gin.New()
	r.GET("/connect", func(c *gin.Context) {
		RealtimeConnect(c, registry)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		srv.URL+"/connect?user_id=u1&role=CITIZEN", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	event, data, err := readSSEFrame(bufio.NewReader(resp.Body))
	if err != nil {
		t.Fatalf("reading handshake frame: %v", err)
	}
	if event != "connected" {
		t.Fatalf("expected connected frame first, got %q", event)
	}
	var frame struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal([]byte(data), &frame); err != nil {
		t.Fatalf("bad handshake payload %q: %v", data, err)
	}
	if frame.SessionID == "" {
		t.Fatal("handshake frame must carry the session id")
	}

	info, ok := registry.SessionInfo(frame.SessionID)
	if !ok {
		t.Fatal("session not registered after handshake")
	}
	if info.UserID != "u1" {
		t.Fatalf("session registered with wrong user: %+v", info)
	}

	// Dropping the connection must deregister the session.
	cancel()
	deadline := time.Now().Add(2 * time.Second)
	for registry.Stats().Sessions != 0 {
		if time.Now().After(deadline) {
			t.Fatal("session still registered after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRealtimeConnectRequiresIdentity(t *testing.T) {
	registry := rooms.New()
	r := gin.New()
	r.GET("/connect", func(c *gin.Context) {
		RealtimeConnect(c, registry)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/connect?user_id=u1", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a role, got %d", w.Code)
	}
	if registry.Stats().Sessions != 0 {
		t.Fatal("rejected handshake must not register a session")
	}
}

// readSSEFrame consumes one event/data frame up to its terminating blank line.
func readSSEFrame(r *bufio.Reader) (event, data string, err error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return "", "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if event != "" || data != "" {
				return event, data, nil
			}
			continue
		}
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		default:
			return "", "", fmt.Errorf("unexpected sse line %q", line)
		}
	}
}
