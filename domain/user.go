package domain

import "time"

type User struct {
	ID            UserID `json:"id"`
	Username      string `json:"username"`
	AppearOffline bool   `json:"appear_offline"`
}

// Visibility is the manual presence preference of a user, independent of connection liveness.
type Visibility int

const (
	Visible Visibility = iota
	Offline
)

func (v Visibility) String() string {
	if v == Offline {
		return "offline"
	}
	return "visible"
}

func (u User) Visibility() Visibility {
	if u.AppearOffline {
		return Offline
	}
	return Visible
}

// Session is one live connection of a user. Never persisted.
type Session struct {
	UserID      UserID
	Username    string
	SocketID    SocketID
	ConnectedAt time.Time
}

// Member is a connected user present in a show room.
// Keyed by user: a second tab joining the same room replaces SocketID.
type Member struct {
	UserID   UserID   `json:"user_id"`
	Username string   `json:"username"`
	SocketID SocketID `json:"-"`
}
