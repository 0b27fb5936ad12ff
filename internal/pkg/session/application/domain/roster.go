package session

import "time"

// RosterRole expresses the role within a session roster.
type RosterRole string

const (
	RolePlayer RosterRole = "PLAYER"
	RoleOwner  RosterRole = "OWNER"
)

// RosterEntry links a profile to a session.
// Primary key: (SessionID, ProfileID). Entries are immutable once created.
type RosterEntry struct {
	SessionID string     `db:"session_id"`
	ProfileID string     `db:"profile_id"`
	Role      RosterRole `db:"role"`
	JoinedAt  time.Time  `db:"joined_at"`
}
