// Package domain contains core concepts of live show presence.
// This file defines chat messages. Messages are immutable once stored.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	ShowID    ShowID    `json:"show_id"`
	UserID    UserID    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"message"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
