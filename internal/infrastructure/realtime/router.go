package realtime

import (
	"sync"
)

// Router coordinates websocket connections and logical rooms (one room per
// pickup session). It keeps one active Connection per user while allowing
// efficient fan-out to everyone watching a session's chat.
type Router struct {
	mu        sync.RWMutex
	conns     map[string]*Connection            // connectionID -> connection
	userConns map[string]string                 // userID -> connectionID
	rooms     map[string]map[string]*Connection // sessionID -> connectionID -> connection
	connRooms map[string]map[string]struct{}    // connectionID -> set of sessionIDs
}

// NewRouter constructs an initialized Router.
func NewRouter() *Router {
	return &Router{
		conns:     make(map[string]*Connection),
		userConns: make(map[string]string),
		rooms:     make(map[string]map[string]*Connection),
		connRooms: make(map[string]map[string]struct{}),
	}
}

// Attach registers a connection for the given user. If a previous socket exists,
// it is removed and closed after the swap to enforce one active socket per user.
func (r *Router) Attach(conn *Connection) {
	var previous *Connection

	r.mu.Lock()
	if existingID, ok := r.userConns[conn.UserID]; ok {
		if existing := r.conns[existingID]; existing != nil {
			previous = existing
			r.detachLocked(existingID)
		}
	}

	r.conns[conn.ID] = conn
	r.userConns[conn.UserID] = conn.ID
	r.connRooms[conn.ID] = make(map[string]struct{})
	r.mu.Unlock()

	conn.Start()

	if previous != nil {
		previous.Close(4001, "socket replaced")
	}
}

// Detach removes a connection if it is still tracked.
func (r *Router) Detach(conn *Connection) {
	r.mu.Lock()
	r.detachLocked(conn.ID)
	r.mu.Unlock()
}

// Join adds the connection to the session's room.
func (r *Router) Join(sessionID string, conn *Connection) {
	r.mu.Lock()
	if _, ok := r.conns[conn.ID]; !ok {
		r.mu.Unlock()
		return
	}

	room := r.rooms[sessionID]
	if room == nil {
		room = make(map[string]*Connection)
		r.rooms[sessionID] = room
	}
	room[conn.ID] = conn

	memberships := r.connRooms[conn.ID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		r.connRooms[conn.ID] = memberships
	}
	memberships[sessionID] = struct{}{}
	r.mu.Unlock()
}

// Leave removes the connection from the session's room.
func (r *Router) Leave(sessionID string, conn *Connection) {
	r.mu.Lock()
	r.leaveLocked(sessionID, conn.ID)
	r.mu.Unlock()
}

// Broadcast writes payload to all members in the session's room.
// excludeUserID, when non-empty, prevents delivering to that user.
func (r *Router) Broadcast(sessionID string, payload []byte, excludeUserID string) int {
	r.mu.RLock()
	room := r.rooms[sessionID]
	if len(room) == 0 {
		r.mu.RUnlock()
		return 0
	}

	delivered := 0
	for _, conn := range room {
		if excludeUserID != "" && conn.UserID == excludeUserID {
			continue
		}
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	r.mu.RUnlock()
	return delivered
}

// NotifyUser delivers payload to the current connection of the given user.
func (r *Router) NotifyUser(userID string, payload []byte) bool {
	r.mu.RLock()
	connID, ok := r.userConns[userID]
	if !ok {
		r.mu.RUnlock()
		return false
	}
	conn := r.conns[connID]
	r.mu.RUnlock()
	if conn == nil {
		return false
	}
	return conn.Send(payload) == nil
}

// Close terminates all tracked connections and clears router state.
func (r *Router) Close() {
	r.mu.Lock()
	conns := make([]*Connection, 0, len(r.conns))
	for _, conn := range r.conns {
		conns = append(conns, conn)
	}
	r.conns = make(map[string]*Connection)
	r.userConns = make(map[string]string)
	r.rooms = make(map[string]map[string]*Connection)
	r.connRooms = make(map[string]map[string]struct{})
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Close(1001, "router shutdown")
	}
}

func (r *Router) detachLocked(connID string) {
	conn, ok := r.conns[connID]
	if !ok {
		return
	}
	delete(r.conns, connID)

	if current, ok := r.userConns[conn.UserID]; ok && current == connID {
		delete(r.userConns, conn.UserID)
	}

	for roomID := range r.connRooms[connID] {
		r.leaveLocked(roomID, connID)
	}
	delete(r.connRooms, connID)
}

func (r *Router) leaveLocked(sessionID string, connID string) {
	if connID == "" {
		return
	}
	room := r.rooms[sessionID]
	if room == nil {
		return
	}
	delete(room, connID)
	if len(room) == 0 {
		delete(r.rooms, sessionID)
	}
	if memberships, ok := r.connRooms[connID]; ok {
		delete(memberships, sessionID)
		if len(memberships) == 0 {
			delete(r.connRooms, connID)
		}
	}
}
