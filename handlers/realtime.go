package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-lifeline/fanout"
	"go-lifeline/rooms"
	"go-lifeline/types"
)

// sseBufferSize is the per-session outbound buffer. A slow consumer whose
// buffer fills loses events rather than stalling fanout to everyone else.
const sseBufferSize = 32

var errClientBufferFull = errors.New("client event buffer full")

// sseTransport bridges the room registry to one server-sent-events stream.
type sseTransport struct {
	events chan types.NotificationEvent
}

func newSSETransport() *sseTransport {
	return &sseTransport{events: make(chan types.NotificationEvent, sseBufferSize)}
}

// Send never blocks: dispatch to N members must not hinge on the slowest
// one draining its stream.
func (t *sseTransport) Send(event string, payload interface{}) error {
	ev := types.NotificationEvent{
		Event:     event,
		Payload:   payload,
		EmittedAt: time.Now().UTC(),
	}
	select {
	case t.events <- ev:
		return nil
	default:
		return errClientBufferFull
	}
}

// RealtimeConnect performs the realtime handshake and streams room events
// over SSE until the client disconnects. Authentication happens upstream;
// this handler trusts the supplied identity.
func RealtimeConnect(c *gin.Context, registry *rooms.Registry) {
	userID := c.Query("user_id")
	role := c.Query("role")
	if userID == "" || role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and role are required"})
		return
	}

	sessionID := uuid.NewString()
	transport := newSSETransport()
	if err := registry.Register(sessionID, userID, role, transport); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	defer registry.Deregister(sessionID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// First frame tells the client which session id to use on follow-up
	// calls (join-request, typing, ...).
	c.SSEvent("connected", gin.H{"session_id": sessionID})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case ev := <-transport.events:
			c.SSEvent(ev.Event, ev.Payload)
			c.Writer.Flush()
		}
	}
}

type joinRequestBody struct {
	RequestID string `json:"request_id" binding:"required"`
}

// JoinRequestRoom subscribes a session to updates for one service request.
func JoinRequestRoom(c *gin.Context, registry *rooms.Registry) {
	var body joinRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	joinRoom(c, registry, rooms.RequestRoom(body.RequestID))
}

type joinChatBody struct {
	ChatID string `json:"chat_id" binding:"required"`
}

// JoinChatRoom subscribes a session to one chat conversation.
func JoinChatRoom(c *gin.Context, registry *rooms.Registry) {
	var body joinChatBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	joinRoom(c, registry, rooms.ChatRoom(body.ChatID))
}

func joinRoom(c *gin.Context, registry *rooms.Registry, roomKey string) {
	sessionID := c.Param("sessionId")
	if err := registry.JoinRoom(sessionID, roomKey); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": roomKey})
}

type privateMessageBody struct {
	To      string `json:"to" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
}

// PrivateMessage fans a direct message out to every live session of the
// recipient. The message itself is persisted by the message store before
// this endpoint is called.
func PrivateMessage(c *gin.Context, registry *rooms.Registry, dispatcher *fanout.Dispatcher) {
	sessionID := c.Param("sessionId")
	sender, ok := registry.SessionInfo(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": rooms.ErrUnknownSession.Error()})
		return
	}

	var body privateMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivered := dispatcher.Emit(rooms.UserRoom(body.To), fanout.EventPrivateMessage, gin.H{
		"from":      sender.UserID,
		"message":   body.Message,
		"type":      body.Type,
		"timestamp": time.Now().UTC(),
	})
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}

type typingBody struct {
	ChatID   string `json:"chat_id" binding:"required"`
	IsTyping bool   `json:"is_typing"`
}

// Typing relays a typing indicator to the other members of a chat room.
func Typing(c *gin.Context, registry *rooms.Registry, dispatcher *fanout.Dispatcher) {
	sessionID := c.Param("sessionId")
	sender, ok := registry.SessionInfo(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": rooms.ErrUnknownSession.Error()})
		return
	}

	var body typingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivered := dispatcher.EmitExcept(rooms.ChatRoom(body.ChatID), sessionID, fanout.EventUserTyping, gin.H{
		"user_id":   sender.UserID,
		"chat_id":   body.ChatID,
		"is_typing": body.IsTyping,
	})
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}

// RealtimeStats reports registry occupancy.
func RealtimeStats(c *gin.Context, registry *rooms.Registry) {
	c.JSON(http.StatusOK, registry.Stats())
}
