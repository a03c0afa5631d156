package rooms

import (
	"sort"
	"sync"

	"go-lifeline/metrics"
	"go-lifeline/types"
)

// session is the registry's record of one live connection. The registry
// owns it exclusively from Register until Deregister.
type session struct {
	id        string
	userID    string
	role      string
	rooms     map[string]struct{}
	transport Transport
}

// SessionInfo is a read-only snapshot of a session for stats endpoints.
type SessionInfo struct {
	ID     string   `json:"id"`
	UserID string   `json:"user_id"`
	Role   string   `json:"role"`
	Rooms  []string `json:"rooms"`
}

// Connection pairs a room member with its live transport, as resolved at
// dispatch time.
type Connection struct {
	SessionID string
	UserID    string
	Transport Transport
}

// Stats summarizes registry occupancy.
type Stats struct {
	Sessions int `json:"sessions"`
	Rooms    int `json:"rooms"`
}

// Registry is a constructible session-membership index. All operations are
// safe under concurrent registration, join and deregistration; both maps
// are guarded by one RWMutex so the room index never drifts from session
// memberships.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	rooms    map[string]map[string]struct{}
}

func New() *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		rooms:    make(map[string]map[string]struct{}),
	}
}

// Register creates a session and joins it to its user room, its role room
// and, for ADMIN or MODERATOR roles, the admins room. A session id can only
// be registered once.
func (r *Registry) Register(sessionID, userID, role string, transport Transport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[sessionID]; exists {
		return ErrDuplicateSession
	}

	s := &session{
		id:        sessionID,
		userID:    userID,
		role:      role,
		rooms:     make(map[string]struct{}),
		transport: transport,
	}
	r.sessions[sessionID] = s

	r.joinLocked(s, UserRoom(userID))
	r.joinLocked(s, RoleRoom(role))
	if role == types.RoleAdmin || role == types.RoleModerator {
		r.joinLocked(s, AdminRoom)
	}

	metrics.SessionsConnected.Inc()
	return nil
}

// JoinRoom adds the session to roomKey. Joining a room the session is
// already in is a no-op, so racing join calls converge to one membership.
func (r *Registry) JoinRoom(sessionID, roomKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return ErrUnknownSession
	}
	r.joinLocked(s, roomKey)
	return nil
}

// Deregister removes the session from every room and deletes it. It is
// idempotent: network disconnects race with explicit logout, so a second
// call is a no-op.
func (r *Registry) Deregister(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return
	}

	for roomKey := range s.rooms {
		if members, exists := r.rooms[roomKey]; exists {
			delete(members, sessionID)
			if len(members) == 0 {
				delete(r.rooms, roomKey)
			}
		}
	}
	delete(r.sessions, sessionID)
	metrics.SessionsConnected.Dec()
}

// MembersOf returns a snapshot of the session ids in roomKey. An unknown
// room yields an empty slice, not an error.
func (r *Registry) MembersOf(roomKey string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]string, 0, len(r.rooms[roomKey]))
	for id := range r.rooms[roomKey] {
		members = append(members, id)
	}
	sort.Strings(members)
	return members
}

// Connections resolves roomKey to the live transports of its members.
func (r *Registry) Connections(roomKey string) []Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := make([]Connection, 0, len(r.rooms[roomKey]))
	for id := range r.rooms[roomKey] {
		if s, ok := r.sessions[id]; ok {
			conns = append(conns, Connection{SessionID: s.id, UserID: s.userID, Transport: s.transport})
		}
	}
	return conns
}

// SessionInfo returns a snapshot of one session, if it is registered.
func (r *Registry) SessionInfo(sessionID string) (SessionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return SessionInfo{}, false
	}

	info := SessionInfo{
		ID:     s.id,
		UserID: s.userID,
		Role:   s.role,
		Rooms:  make([]string, 0, len(s.rooms)),
	}
	for roomKey := range s.rooms {
		info.Rooms = append(info.Rooms, roomKey)
	}
	sort.Strings(info.Rooms)
	return info, true
}

// Stats reports current session and room counts.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{Sessions: len(r.sessions), Rooms: len(r.rooms)}
}

// joinLocked records membership on both maps. Callers hold the write lock.
func (r *Registry) joinLocked(s *session, roomKey string) {
	if _, ok := s.rooms[roomKey]; ok {
		return
	}
	s.rooms[roomKey] = struct{}{}
	if r.rooms[roomKey] == nil {
		r.rooms[roomKey] = make(map[string]struct{})
	}
	r.rooms[roomKey][s.id] = struct{}{}
}
