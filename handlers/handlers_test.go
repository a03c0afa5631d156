package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"go-lifeline/classifier"
	"go-lifeline/fanout"
	"go-lifeline/rooms"
	"go-lifeline/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingTransport struct {
	mu     sync.Mutex
	events []string
}

func (t *recordingTransport) Send(event string, payload interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
	return nil
}

func (t *recordingTransport) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.events)
}

func newTestRouter() (*gin.Engine, *rooms.Registry) {
	// Unreachable classifier: every triage call exercises the fallback.
	gw := classifier.New("http://127.0.0.1:1", 100*time.Millisecond)
	registry := rooms.New()
	return routes.SetupRouter(gw, registry, fanout.New(registry)), registry
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClassifyEndpointNeverFails(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/triage/classify",
		`{"title":"fire in the building","description":"people trapped","category":"OTHER"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("triage must stay 200 with the classifier down, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		Priority string  `json:"priority"`
		Score    float64 `json:"score"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res.Priority != "URGENT" {
		t.Fatalf("expected fallback URGENT, got %+v", res)
	}
}

func TestClassifyEndpointValidation(t *testing.T) {
	r, _ := newTestRouter()
	if w := doJSON(t, r, http.MethodPost, "/api/triage/classify", `{"description":"no title"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestResourcesEndpointFallback(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/triage/resources",
		`{"disaster_type":"FLOOD","affected_population":100}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var pred struct {
		Status     string         `json:"status"`
		Quantities map[string]int `json:"quantities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pred); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if pred.Status != "fallback" || pred.Quantities["water"] != 500 {
		t.Fatalf("expected guideline fallback, got %+v", pred)
	}
}

func TestChatEndpointFallback(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/chat", `{"message":"kamusta"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var reply struct {
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if reply.Confidence != 0.9 {
		t.Fatalf("expected greeting entry confidence, got %v", reply.Confidence)
	}
}

func TestJoinRequestUnknownSession(t *testing.T) {
	r, _ := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/realtime/ghost/join-request", `{"request_id":"42"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", w.Code)
	}
}

func TestPrivateMessageFanout(t *testing.T) {
	r, registry := newTestRouter()

	recipient := &recordingTransport{}
	if err := registry.Register("recv", "u2", "CITIZEN", recipient); err != nil {
		t.Fatal(err)
	}
	if err := registry.Register("send", "u1", "CITIZEN", &recordingTransport{}); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/realtime/send/private-message",
		`{"to":"u2","message":"hello","type":"text"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		Delivered int `json:"delivered"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Delivered != 1 || recipient.count() != 1 {
		t.Fatalf("expected one delivery to recipient, got %+v (transport %d)", res, recipient.count())
	}
}

func TestTypingExcludesSender(t *testing.T) {
	r, registry := newTestRouter()

	sender := &recordingTransport{}
	other := &recordingTransport{}
	if err := registry.Register("s1", "u1", "CITIZEN", sender); err != nil {
		t.Fatal(err)
	}
	if err := registry.Register("s2", "u2", "CITIZEN", other); err != nil {
		t.Fatal(err)
	}
	if err := registry.JoinRoom("s1", rooms.ChatRoom("c1")); err != nil {
		t.Fatal(err)
	}
	if err := registry.JoinRoom("s2", rooms.ChatRoom("c1")); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/realtime/s1/typing", `{"chat_id":"c1","is_typing":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if sender.count() != 0 {
		t.Fatal("sender must not get its own typing event")
	}
	if other.count() != 1 {
		t.Fatalf("other member should get the typing event, got %d", other.count())
	}
}

func TestNotifyEmptyRequestRoom(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/notify/request/unknown-id/status", `{"status":"RESOLVED"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("empty room must not be an error, got %d", w.Code)
	}

	var res struct {
		Delivered int `json:"delivered"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Delivered != 0 {
		t.Fatalf("expected zero deliveries, got %d", res.Delivered)
	}
}

func TestAdminBroadcastEndpoint(t *testing.T) {
	r, registry := newTestRouter()

	admin := &recordingTransport{}
	if err := registry.Register("a1", "u9", "ADMIN", admin); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/notify/admins", `{"payload":{"request_id":"r1"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if admin.count() != 1 {
		t.Fatalf("expected admin delivery, got %d", admin.count())
	}
}
