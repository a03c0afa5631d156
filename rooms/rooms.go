// Package rooms tracks live realtime sessions and their membership in
// logical rooms. A room is a derived index over sessions, not a message
// queue: membership is exact set membership and only ends when the session
// is destroyed.
package rooms

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateSession is returned when a session id is registered
	// twice. The caller must deregister first or reuse the session.
	ErrDuplicateSession = errors.New("rooms: session already registered")

	// ErrUnknownSession is returned when joining a room for a session
	// that was never registered or already disconnected.
	ErrUnknownSession = errors.New("rooms: unknown session")
)

// AdminRoom receives admin-scoped broadcasts such as new-request events.
const AdminRoom = "admins"

// Transport delivers one event to a single live connection. Implementations
// must be safe for concurrent use; a Send error only affects that member.
type Transport interface {
	Send(event string, payload interface{}) error
}

// UserRoom is the personal room every session of a user joins at
// registration.
func UserRoom(userID string) string {
	return "user-" + userID
}

// RequestRoom groups sessions following one service request.
func RequestRoom(requestID string) string {
	return "request-" + requestID
}

// ChatRoom groups participants of one chat conversation.
func ChatRoom(chatID string) string {
	return "chat-" + chatID
}

// RoleRoom is the shared room for everyone with the same role.
func RoleRoom(role string) string {
	return strings.ToLower(role)
}
