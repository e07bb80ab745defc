// Package domain contains core concepts of live show presence.
// No runtime, network, or storage logic should be added here.
package domain

import "github.com/google/uuid"

type UserID int64

type ShowID int64

// SocketID identifies one live connection (one browser tab or device).
type SocketID string

func NewSocketID() SocketID {
	return SocketID(uuid.NewString())
}
