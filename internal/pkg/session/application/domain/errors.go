package session

import "errors"

// Domain-level errors for session behaviors
var (
	ErrSessionFull     = errors.New("session: session is full")
	ErrSkillTooLow     = errors.New("session: player skill level below session requirement")
	ErrAlreadyJoined   = errors.New("session: already on the roster")
	ErrNotHost         = errors.New("session: only the host may modify the session")
	ErrSessionNotFound = errors.New("session: not found")
)
