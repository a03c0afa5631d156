// Package fanout delivers realtime events to every current member of a
// room. Delivery is best effort: an empty room is a silent no-op and a
// failing member never blocks the rest. Durable notification records are
// written by the caller separately, before or alongside dispatch.
package fanout

import (
	"log"
	"time"

	"go-lifeline/metrics"
	"go-lifeline/rooms"
)

// Event names emitted over the realtime channel.
const (
	EventNotification         = "notification"
	EventNewRequest           = "new-request"
	EventRequestStatusUpdated = "request-status-updated"
	EventRequestUpdated       = "request-updated"
	EventPrivateMessage       = "private-message"
	EventUserTyping           = "user-typing"
)

// Dispatcher resolves room keys through the registry and pushes events to
// member transports. It holds no state of its own beyond the registry
// reference, so independent registries stay independently testable.
type Dispatcher struct {
	registry *rooms.Registry
}

func New(registry *rooms.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Emit delivers event to every member of roomKey and returns how many
// members it reached. Per-member failures are logged and skipped.
func (d *Dispatcher) Emit(roomKey, event string, payload interface{}) int {
	return d.emit(roomKey, "", event, payload)
}

// EmitExcept delivers like Emit but skips one session, typically the
// sender. Used for typing indicators.
func (d *Dispatcher) EmitExcept(roomKey, exceptSessionID, event string, payload interface{}) int {
	return d.emit(roomKey, exceptSessionID, event, payload)
}

func (d *Dispatcher) emit(roomKey, exceptSessionID, event string, payload interface{}) int {
	conns := d.registry.Connections(roomKey)
	if len(conns) == 0 {
		return 0
	}

	delivered := 0
	for _, conn := range conns {
		if exceptSessionID != "" && conn.SessionID == exceptSessionID {
			continue
		}
		if err := conn.Transport.Send(event, payload); err != nil {
			log.Printf("[fanout] delivery to session %s (room %s, event %s) failed: %v",
				conn.SessionID, roomKey, event, err)
			metrics.FanoutFailures.Inc()
			continue
		}
		delivered++
		metrics.FanoutDeliveries.Inc()
	}
	return delivered
}

// NotifyUser pushes a notification to every live session of one user.
func (d *Dispatcher) NotifyUser(userID string, payload interface{}) int {
	return d.Emit(rooms.UserRoom(userID), EventNotification, payload)
}

// BroadcastToAdmins pushes an admin-scoped event such as new-request.
func (d *Dispatcher) BroadcastToAdmins(event string, payload interface{}) int {
	return d.Emit(rooms.AdminRoom, event, payload)
}

// NotifyRequestRoom tells followers of a request that its status changed.
func (d *Dispatcher) NotifyRequestRoom(requestID, status string) int {
	return d.Emit(rooms.RequestRoom(requestID), EventRequestStatusUpdated, map[string]interface{}{
		"request_id": requestID,
		"status":     status,
		"timestamp":  time.Now().UTC(),
	})
}
