// Package event defines the outbound notifications pushed to connected sockets.
package event

import (
	"time"

	"sharemyshows-live/domain"
)

type Event interface {
	Name() string
}

const (
	NameConnected          = "connected"
	NameError              = "error"
	NameFriendOnline       = "friend_online"
	NameFriendOffline      = "friend_offline"
	NameFriendHideFromShow = "friend_hide_from_show"
	NameFriendShowAtShow   = "friend_show_at_show"
	NameUserJoined         = "user_joined"
	NameUserLeft           = "user_left"
	NameUserTyping         = "user_typing"
	NameActiveUsers        = "active_users"
	NameMessageHistory     = "message_history"
	NameNewMessage         = "new_message"
	NameLocationUpdate     = "location_update"
	NameLocationStopped    = "location_stopped"
	NameFriendsLocations   = "friends_locations"
	NameAppearOffline      = "appear_offline_updated"
)

type Connected struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

func (Connected) Name() string { return NameConnected }

type Error struct {
	Message string `json:"message"`
}

func (Error) Name() string { return NameError }

type FriendOnline struct {
	UserID domain.UserID `json:"user_id"`
}

func (FriendOnline) Name() string { return NameFriendOnline }

type FriendOffline struct {
	UserID domain.UserID `json:"user_id"`
}

func (FriendOffline) Name() string { return NameFriendOffline }

type FriendHideFromShow struct {
	UserID domain.UserID `json:"user_id"`
}

func (FriendHideFromShow) Name() string { return NameFriendHideFromShow }

type FriendShowAtShow struct {
	UserID domain.UserID `json:"user_id"`
}

func (FriendShowAtShow) Name() string { return NameFriendShowAtShow }

type UserJoined struct {
	ShowID      domain.ShowID   `json:"show_id"`
	UserID      domain.UserID   `json:"user_id"`
	Username    string          `json:"username"`
	Message     string          `json:"message"`
	ActiveUsers []domain.Member `json:"active_users"`
}

func (UserJoined) Name() string { return NameUserJoined }

type UserLeft struct {
	ShowID      domain.ShowID   `json:"show_id"`
	UserID      domain.UserID   `json:"user_id"`
	Username    string          `json:"username"`
	Message     string          `json:"message"`
	ActiveUsers []domain.Member `json:"active_users"`
}

func (UserLeft) Name() string { return NameUserLeft }

type UserTyping struct {
	ShowID   domain.ShowID `json:"show_id"`
	UserID   domain.UserID `json:"user_id"`
	Username string        `json:"username"`
	IsTyping bool          `json:"is_typing"`
}

func (UserTyping) Name() string { return NameUserTyping }

type ActiveUsers struct {
	ShowID      domain.ShowID   `json:"show_id"`
	ActiveUsers []domain.Member `json:"active_users"`
	Count       int             `json:"count"`
}

func (ActiveUsers) Name() string { return NameActiveUsers }

type MessageHistory struct {
	ShowID   domain.ShowID        `json:"show_id"`
	Messages []domain.ChatMessage `json:"messages"`
}

func (MessageHistory) Name() string { return NameMessageHistory }

type NewMessage struct {
	domain.ChatMessage
}

func (NewMessage) Name() string { return NameNewMessage }

type LocationUpdate struct {
	ShowID    domain.ShowID `json:"show_id"`
	UserID    domain.UserID `json:"user_id"`
	Username  string        `json:"username"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timestamp time.Time     `json:"timestamp"`
}

func (LocationUpdate) Name() string { return NameLocationUpdate }

type LocationStopped struct {
	ShowID domain.ShowID `json:"show_id"`
	UserID domain.UserID `json:"user_id"`
}

func (LocationStopped) Name() string { return NameLocationStopped }

type FriendLocation struct {
	ShowID    domain.ShowID `json:"show_id"`
	UserID    domain.UserID `json:"user_id"`
	Username  string        `json:"username"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timestamp time.Time     `json:"timestamp"`
}

type FriendsLocations struct {
	ShowID  domain.ShowID    `json:"show_id"`
	Friends []FriendLocation `json:"friends"`
}

func (FriendsLocations) Name() string { return NameFriendsLocations }

type AppearOfflineUpdated struct {
	AppearOffline bool `json:"appear_offline"`
}

func (AppearOfflineUpdated) Name() string { return NameAppearOffline }
