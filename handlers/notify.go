package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lifeline/fanout"
	"go-lifeline/rooms"
)

type statusBody struct {
	Status string `json:"status" binding:"required"`
}

// NotifyRequestStatus pushes request-status-updated to everyone following
// the request. An empty room is fine: delivered will be 0 and the durable
// notification record was already written by the caller.
func NotifyRequestStatus(c *gin.Context, dispatcher *fanout.Dispatcher) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivered := dispatcher.NotifyRequestRoom(c.Param("id"), body.Status)
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}

type requestUpdateBody struct {
	Payload map[string]interface{} `json:"payload" binding:"required"`
}

// NotifyRequestUpdated pushes a request-updated event with an arbitrary
// payload to the request room.
func NotifyRequestUpdated(c *gin.Context, dispatcher *fanout.Dispatcher) {
	var body requestUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivered := dispatcher.Emit(rooms.RequestRoom(c.Param("id")), fanout.EventRequestUpdated, body.Payload)
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}

type userNotifyBody struct {
	Payload map[string]interface{} `json:"payload" binding:"required"`
}

// NotifyUser pushes a notification to all live sessions of one user.
func NotifyUser(c *gin.Context, dispatcher *fanout.Dispatcher) {
	var body userNotifyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivered := dispatcher.NotifyUser(c.Param("id"), body.Payload)
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}

type adminBroadcastBody struct {
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload" binding:"required"`
}

// BroadcastToAdmins pushes an admin-scoped event, new-request by default.
func BroadcastToAdmins(c *gin.Context, dispatcher *fanout.Dispatcher) {
	var body adminBroadcastBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Event == "" {
		body.Event = fanout.EventNewRequest
	}

	delivered := dispatcher.BroadcastToAdmins(body.Event, body.Payload)
	c.JSON(http.StatusOK, gin.H{"delivered": delivered})
}
