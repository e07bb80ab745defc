package runtime

import (
	"context"
	"testing"
	"time"

	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"

	"github.com/stretchr/testify/require"
)

type Sink struct{}

func (s Sink) Consume(ctx context.Context, e event.Event) error {
	return nil
}

func newSession(userID domain.UserID, socketID domain.SocketID) domain.Session {
	return domain.Session{UserID: userID, Username: "user", SocketID: socketID, ConnectedAt: time.Now().UTC()}
}

func TestRegistry_Presence_Is_Edge_Triggered(t *testing.T) {
	req := require.New(t)
	registry := NewPresenceRegistry()

	// Given three tabs of the same user
	for _, id := range []domain.SocketID{"a", "b", "c"} {
		registry.AddSession(newSession(1, id), Sink{})
	}

	// Then only the first one brings the user online
	req.True(registry.MarkOnline(1, "a"))
	req.False(registry.MarkOnline(1, "b"))
	req.False(registry.MarkOnline(1, "c"))
	req.True(registry.IsOnline(1))

	// When two tabs close, the user stays online
	req.False(registry.MarkOffline(1, "a"))
	req.False(registry.MarkOffline(1, "b"))
	req.True(registry.IsOnline(1))

	// When the last one closes, the user goes offline exactly once
	req.True(registry.MarkOffline(1, "c"))
	req.False(registry.MarkOffline(1, "c"))
	req.False(registry.IsOnline(1))
}

func TestRegistry_Remove_Session(t *testing.T) {
	req := require.New(t)
	registry := NewPresenceRegistry()
	registry.AddSession(newSession(1, "a"), Sink{})
	registry.AddSession(newSession(1, "b"), Sink{})
	registry.Join(10, domain.Member{UserID: 1, Username: "user", SocketID: "a"})

	// When socket a goes away
	session, rooms, ok := registry.RemoveSession("a")

	// Then its rooms are returned and the user keeps socket b
	req.True(ok)
	req.Equal(domain.UserID(1), session.UserID)
	req.Equal([]domain.ShowID{10}, rooms)
	req.Equal([]domain.SocketID{"b"}, registry.SocketsFor(1))
	req.True(registry.IsConnected(1))

	_, _, ok = registry.RemoveSession("a")
	req.False(ok)
}

func TestRegistry_Join_Is_Idempotent_Per_User(t *testing.T) {
	req := require.New(t)
	registry := NewPresenceRegistry()
	registry.AddSession(newSession(1, "a"), Sink{})
	registry.AddSession(newSession(1, "b"), Sink{})

	// When the same user joins twice, then from another tab
	req.True(registry.Join(10, domain.Member{UserID: 1, SocketID: "a"}))
	req.False(registry.Join(10, domain.Member{UserID: 1, SocketID: "a"}))
	req.False(registry.Join(10, domain.Member{UserID: 1, SocketID: "b"}))

	// Then there is a single entry, owned by the latest socket
	members := registry.MembersOf(10)
	req.Len(members, 1)
	req.Equal(domain.SocketID("b"), members[0].SocketID)

	// And closing the replaced tab does not remove the membership
	_, rooms, _ := registry.RemoveSession("a")
	req.Empty(rooms)
	req.False(registry.LeaveIfSocket(10, 1, "a"))
	req.Len(registry.MembersOf(10), 1)
}

func TestRegistry_Empty_Room_Is_Removed(t *testing.T) {
	req := require.New(t)
	registry := NewPresenceRegistry()
	registry.AddSession(newSession(1, "a"), Sink{})
	registry.AddSession(newSession(2, "b"), Sink{})
	registry.Join(10, domain.Member{UserID: 1, SocketID: "a"})
	registry.Join(10, domain.Member{UserID: 2, SocketID: "b"})

	_, left := registry.Leave(10, 1)
	req.True(left)
	req.Equal(1, registry.Stats().Rooms)

	req.True(registry.LeaveIfSocket(10, 2, "b"))
	req.Equal(0, registry.Stats().Rooms)
	req.Empty(registry.MembersOf(10))

	_, left = registry.Leave(10, 2)
	req.False(left)
}

func TestRegistry_Clear_And_Restore_Presence(t *testing.T) {
	req := require.New(t)
	registry := NewPresenceRegistry()
	registry.AddSession(newSession(1, "a"), Sink{})
	registry.AddSession(newSession(1, "b"), Sink{})
	registry.MarkOnline(1, "a")
	registry.MarkOnline(1, "b")

	// When the user appears offline with two open tabs
	req.True(registry.ClearPresence(1))
	req.False(registry.IsOnline(1))
	req.True(registry.IsConnected(1))
	req.False(registry.ClearPresence(1))

	// Then becoming visible rebuilds presence from live sockets, once
	req.True(registry.RestorePresence(1))
	req.False(registry.RestorePresence(1))
	req.True(registry.IsOnline(1))

	// And the rebuilt set is edge-triggered as before
	req.False(registry.MarkOffline(1, "a"))
	req.True(registry.MarkOffline(1, "b"))
}

func TestRegistry_Restore_Without_Sockets(t *testing.T) {
	req := require.New(t)
	registry := NewPresenceRegistry()
	req.False(registry.RestorePresence(1))
	req.False(registry.IsOnline(1))
}
