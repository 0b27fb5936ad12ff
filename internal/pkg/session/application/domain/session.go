package session

import "time"

// Session is one scheduled occurrence of a pickup game.
// Recurring schedules produce one Session row per occurrence, all sharing a SeriesID.
type Session struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	SportID     string     `db:"sport_id"`
	SportName   string     `db:"sport_name"`
	HostID      string     `db:"host_id"`
	Location    string     `db:"location"`
	Latitude    *float64   `db:"latitude"`
	Longitude   *float64   `db:"longitude"`
	StartTime   time.Time  `db:"start_time"`
	PlayerLimit int        `db:"player_limit"`
	Fee         float64    `db:"fee"`
	Description *string    `db:"description"`
	Level       SkillLevel `db:"level"`
	IsRecurring bool       `db:"is_recurring"`
	SeriesID    *string    `db:"series_id"`
	CreatedAt   time.Time  `db:"created_at"`
}

// HasCapacity reports whether another player fits under the session's limit.
// A zero PlayerLimit means unlimited.
func (s Session) HasCapacity(currentPlayers int) bool {
	if s.PlayerLimit <= 0 {
		return true
	}
	return currentPlayers < s.PlayerLimit
}
