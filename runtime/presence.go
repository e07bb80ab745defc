package runtime

import (
	"context"

	"sharemyshows-live/contract"
	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"
)

const welcomeMessage = "Connected to ShareMyShows"

func (e *Engine) onConnect(ctx context.Context, userID domain.UserID, sink contract.EventSink) (domain.Session, error) {
	user, err := e.stores.Users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return domain.Session{}, errors.ErrUnauthorized
		}
		return domain.Session{}, err
	}

	session := domain.Session{
		UserID:      user.ID,
		Username:    user.Username,
		SocketID:    domain.NewSocketID(),
		ConnectedAt: e.now(),
	}
	e.registry.AddSession(session, sink)
	e.log.Info("Client connected", "user_id", user.ID, "socket_id", session.SocketID,
		"visibility", user.Visibility())
	e.emit(ctx, session.SocketID, event.Connected{Message: welcomeMessage, Username: user.Username})

	if user.Visibility() == domain.Offline {
		return session, nil
	}
	if e.registry.MarkOnline(user.ID, session.SocketID) {
		e.notifyOnlineFriends(ctx, user.ID, event.FriendOnline{UserID: user.ID})
	}
	return session, nil
}

// onDisconnect drops one socket. Only the last socket of a user clears its live locations;
// the checkins themselves stay active since a reconnect is expected.
func (e *Engine) onDisconnect(ctx context.Context, socketID domain.SocketID) {
	session, rooms, ok := e.registry.RemoveSession(socketID)
	if !ok {
		return
	}
	e.log.Info("Client disconnected", "user_id", session.UserID, "socket_id", socketID)

	// The membership belongs to the socket that joined. Other tabs of the same user do not
	// inherit it, so the room hears user_left and its active list stays in step.
	for _, showID := range rooms {
		if !e.registry.LeaveIfSocket(showID, session.UserID, socketID) {
			continue
		}
		e.emitToRoom(ctx, showID, event.UserLeft{
			ShowID:      showID,
			UserID:      session.UserID,
			Username:    session.Username,
			Message:     session.Username + " left the chat",
			ActiveUsers: e.registry.MembersOf(showID),
		})
	}

	if e.registry.MarkOffline(session.UserID, socketID) {
		e.notifyOnlineFriends(ctx, session.UserID, event.FriendOffline{UserID: session.UserID})
	}
	if !e.registry.IsConnected(session.UserID) {
		e.stopAllSharing(ctx, session.UserID, false)
	}
}

func (e *Engine) onSetAppearOffline(ctx context.Context, session domain.Session, cmd domain.SetAppearOfflineCommand) error {
	user, err := e.stores.Users.GetUser(ctx, session.UserID)
	if err != nil {
		return err
	}
	ack := event.AppearOfflineUpdated{AppearOffline: cmd.AppearOffline}
	if user.AppearOffline == cmd.AppearOffline {
		e.emit(ctx, session.SocketID, ack)
		return nil
	}
	if err := e.stores.Users.SetAppearOffline(ctx, session.UserID, cmd.AppearOffline); err != nil {
		return err
	}

	if cmd.AppearOffline {
		e.goOffline(ctx, session.UserID)
	} else {
		e.goVisible(ctx, session.UserID)
	}
	e.emitToUser(ctx, session.UserID, ack)
	return nil
}

// goOffline runs the Visible to Offline cascade.
func (e *Engine) goOffline(ctx context.Context, userID domain.UserID) {
	e.stopAllSharing(ctx, userID, true)

	friends, err := e.stores.Friends.AcceptedFriendIDs(ctx, userID)
	if err != nil {
		e.log.Error("Friend lookup failed, presence not propagated", "user_id", userID, "error", err)
		e.registry.ClearPresence(userID)
		return
	}
	if e.registry.ClearPresence(userID) {
		e.emitToOnline(ctx, friends, event.FriendOffline{UserID: userID})
	}
	// Every connected tab of every friend, online or not, so cached lists reconcile.
	for _, friendID := range friends {
		e.emitToUser(ctx, friendID, event.FriendHideFromShow{UserID: userID})
	}
}

// goVisible runs the Offline to Visible cascade. Locations are not re-shared.
func (e *Engine) goVisible(ctx context.Context, userID domain.UserID) {
	if !e.registry.RestorePresence(userID) {
		return
	}
	friends, err := e.stores.Friends.AcceptedFriendIDs(ctx, userID)
	if err != nil {
		e.log.Error("Friend lookup failed, presence not propagated", "user_id", userID, "error", err)
		return
	}
	e.emitToOnline(ctx, friends, event.FriendOnline{UserID: userID})
	for _, friendID := range friends {
		e.emitToUser(ctx, friendID, event.FriendShowAtShow{UserID: userID})
	}
}

// stopAllSharing clears the coordinates of every active checkin of the user that still
// carries some, then tells the viewers. A failing checkin does not stop the others.
func (e *Engine) stopAllSharing(ctx context.Context, userID domain.UserID, clearShareWith bool) {
	checkins, err := e.stores.Checkins.ActiveCheckinsByUser(ctx, userID)
	if err != nil {
		e.log.Error("Active checkins lookup failed, locations left in place", "user_id", userID, "error", err)
		return
	}
	for _, c := range checkins {
		if c.State() != domain.Sharing {
			continue
		}
		if err := e.stores.Checkins.ClearLocation(ctx, userID, c.ShowID, clearShareWith); err != nil {
			e.log.Error("Clearing location failed", "user_id", userID, "show_id", c.ShowID, "error", err)
			continue
		}
		e.broadcastStop(ctx, userID, c.ShowID, c.ShareWith)
	}
}

func (e *Engine) notifyOnlineFriends(ctx context.Context, userID domain.UserID, evt event.Event) {
	friends, err := e.stores.Friends.AcceptedFriendIDs(ctx, userID)
	if err != nil {
		e.log.Error("Friend lookup failed, presence not propagated", "user_id", userID, "error", err)
		return
	}
	e.emitToOnline(ctx, friends, evt)
}

func (e *Engine) emitToOnline(ctx context.Context, userIDs []domain.UserID, evt event.Event) {
	for _, id := range userIDs {
		if e.registry.IsOnline(id) {
			e.emitToUser(ctx, id, evt)
		}
	}
}
