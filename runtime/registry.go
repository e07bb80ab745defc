package runtime

import (
	"cmp"
	"slices"

	"sharemyshows-live/contract"
	"sharemyshows-live/domain"
)

type Set[T comparable] map[T]struct{}

func (s Set[T]) add(v T) { s[v] = struct{}{} }

type connection struct {
	session domain.Session
	sink    contract.EventSink
	rooms   Set[domain.ShowID]
}

// PresenceRegistry owns every ephemeral map of the process: live sessions,
// the global presence set and show rooms.
// It has no lock: only the engine loop may call it.
type PresenceRegistry struct {
	connections map[domain.SocketID]*connection
	sockets     map[domain.UserID]Set[domain.SocketID] // every live socket of a user
	online      map[domain.UserID]Set[domain.SocketID] // global presence set, appear-offline users excluded
	rooms       map[domain.ShowID]map[domain.UserID]domain.Member
}

type Stats struct {
	Connections int `json:"connections"`
	Users       int `json:"users"`
	Online      int `json:"online"`
	Rooms       int `json:"rooms"`
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		connections: make(map[domain.SocketID]*connection),
		sockets:     make(map[domain.UserID]Set[domain.SocketID]),
		online:      make(map[domain.UserID]Set[domain.SocketID]),
		rooms:       make(map[domain.ShowID]map[domain.UserID]domain.Member),
	}
}

// AddSession registers a live socket. It does not touch the presence set.
func (r *PresenceRegistry) AddSession(session domain.Session, sink contract.EventSink) {
	r.connections[session.SocketID] = &connection{session: session, sink: sink, rooms: make(Set[domain.ShowID])}
	if _, ok := r.sockets[session.UserID]; !ok {
		r.sockets[session.UserID] = make(Set[domain.SocketID])
	}
	r.sockets[session.UserID].add(session.SocketID)
}

// RemoveSession forgets a socket and returns the rooms it was registered in.
// Room membership and presence are left to the caller.
func (r *PresenceRegistry) RemoveSession(socketID domain.SocketID) (domain.Session, []domain.ShowID, bool) {
	conn, ok := r.connections[socketID]
	if !ok {
		return domain.Session{}, nil, false
	}
	delete(r.connections, socketID)

	userID := conn.session.UserID
	if sockets, ok := r.sockets[userID]; ok {
		delete(sockets, socketID)
		if len(sockets) == 0 {
			delete(r.sockets, userID)
		}
	}
	return conn.session, sortedKeys(conn.rooms), true
}

func (r *PresenceRegistry) Session(socketID domain.SocketID) (domain.Session, bool) {
	conn, ok := r.connections[socketID]
	if !ok {
		return domain.Session{}, false
	}
	return conn.session, true
}

func (r *PresenceRegistry) Sink(socketID domain.SocketID) (contract.EventSink, bool) {
	conn, ok := r.connections[socketID]
	if !ok {
		return nil, false
	}
	return conn.sink, true
}

// SocketsFor returns every live socket of the user, whatever its presence preference.
func (r *PresenceRegistry) SocketsFor(userID domain.UserID) []domain.SocketID {
	return sortedKeys(r.sockets[userID])
}

func (r *PresenceRegistry) IsConnected(userID domain.UserID) bool {
	return len(r.sockets[userID]) > 0
}

// MarkOnline adds a socket to the presence set and reports whether the user just came online.
func (r *PresenceRegistry) MarkOnline(userID domain.UserID, socketID domain.SocketID) bool {
	sockets, ok := r.online[userID]
	if !ok {
		sockets = make(Set[domain.SocketID])
		r.online[userID] = sockets
	}
	wasEmpty := len(sockets) == 0
	sockets.add(socketID)
	return wasEmpty
}

// MarkOffline removes a socket from the presence set and reports whether the user just went offline.
func (r *PresenceRegistry) MarkOffline(userID domain.UserID, socketID domain.SocketID) bool {
	sockets, ok := r.online[userID]
	if !ok {
		return false
	}
	if _, ok := sockets[socketID]; !ok {
		return false
	}
	delete(sockets, socketID)
	if len(sockets) == 0 {
		delete(r.online, userID)
		return true
	}
	return false
}

// ClearPresence drops the user from the presence set whatever the number of open sockets.
func (r *PresenceRegistry) ClearPresence(userID domain.UserID) bool {
	_, wasOnline := r.online[userID]
	delete(r.online, userID)
	return wasOnline
}

// RestorePresence rebuilds the presence entry from the live sockets of the user.
// It reports true only for a real empty to non-empty transition.
func (r *PresenceRegistry) RestorePresence(userID domain.UserID) bool {
	if _, ok := r.online[userID]; ok {
		return false
	}
	live := r.sockets[userID]
	if len(live) == 0 {
		return false
	}
	sockets := make(Set[domain.SocketID], len(live))
	for id := range live {
		sockets.add(id)
	}
	r.online[userID] = sockets
	return true
}

func (r *PresenceRegistry) IsOnline(userID domain.UserID) bool {
	return len(r.online[userID]) > 0
}

// Join is idempotent per user: joining again only replaces the socket.
// It reports whether the membership is new.
func (r *PresenceRegistry) Join(showID domain.ShowID, member domain.Member) bool {
	room, ok := r.rooms[showID]
	if !ok {
		room = make(map[domain.UserID]domain.Member)
		r.rooms[showID] = room
	}
	previous, existed := room[member.UserID]
	if existed && previous.SocketID != member.SocketID {
		if conn, ok := r.connections[previous.SocketID]; ok {
			delete(conn.rooms, showID)
		}
	}
	room[member.UserID] = member
	if conn, ok := r.connections[member.SocketID]; ok {
		conn.rooms.add(showID)
	}
	return !existed
}

// Leave removes the user from the room. An emptied room is removed as well.
func (r *PresenceRegistry) Leave(showID domain.ShowID, userID domain.UserID) (domain.Member, bool) {
	room, ok := r.rooms[showID]
	if !ok {
		return domain.Member{}, false
	}
	member, ok := room[userID]
	if !ok {
		return domain.Member{}, false
	}
	delete(room, userID)
	if len(room) == 0 {
		delete(r.rooms, showID)
	}
	if conn, ok := r.connections[member.SocketID]; ok {
		delete(conn.rooms, showID)
	}
	return member, true
}

// LeaveIfSocket removes the membership only when it still belongs to socketID.
// A membership taken over by another tab of the same user is kept.
func (r *PresenceRegistry) LeaveIfSocket(showID domain.ShowID, userID domain.UserID, socketID domain.SocketID) bool {
	member, ok := r.Member(showID, userID)
	if !ok || member.SocketID != socketID {
		return false
	}
	_, left := r.Leave(showID, userID)
	return left
}

func (r *PresenceRegistry) Member(showID domain.ShowID, userID domain.UserID) (domain.Member, bool) {
	member, ok := r.rooms[showID][userID]
	return member, ok
}

// MembersOf returns the room members ordered by user id.
func (r *PresenceRegistry) MembersOf(showID domain.ShowID) []domain.Member {
	room := r.rooms[showID]
	members := make([]domain.Member, 0, len(room))
	for _, m := range room {
		members = append(members, m)
	}
	slices.SortFunc(members, func(a, b domain.Member) int { return cmp.Compare(a.UserID, b.UserID) })
	return members
}

func (r *PresenceRegistry) Stats() Stats {
	return Stats{
		Connections: len(r.connections),
		Users:       len(r.sockets),
		Online:      len(r.online),
		Rooms:       len(r.rooms),
	}
}

func sortedKeys[T cmp.Ordered](set Set[T]) []T {
	keys := make([]T, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
