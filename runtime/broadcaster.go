package runtime

import (
	"cmp"
	"context"
	"slices"

	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"
	"sharemyshows-live/services"

	"github.com/samber/lo"
)

// viewers maps every member of every sibling room to the sockets it joined with.
func (e *Engine) viewers(ctx context.Context, showID domain.ShowID) map[domain.UserID][]domain.SocketID {
	out := make(map[domain.UserID][]domain.SocketID)
	for _, sibling := range e.siblings.SiblingsOf(ctx, showID) {
		for _, m := range e.registry.MembersOf(sibling) {
			if !slices.Contains(out[m.UserID], m.SocketID) {
				out[m.UserID] = append(out[m.UserID], m.SocketID)
			}
		}
	}
	return out
}

// recipients resolves siblings, then room members, then the visibility filter.
// The sharer never belongs to the result.
func (e *Engine) recipients(ctx context.Context, sharerID domain.UserID, showID domain.ShowID,
	shareWith domain.ShareList) []domain.SocketID {
	viewers := e.viewers(ctx, showID)
	delete(viewers, sharerID)

	authorized, err := e.visibility.AuthorizedRecipients(ctx, sharerID, shareWith, lo.Keys(viewers))
	if err != nil {
		e.log.Error("Visibility lookup failed, nothing broadcast", "user_id", sharerID, "show_id", showID, "error", err)
		return nil
	}
	return socketsOf(viewers, authorized)
}

func socketsOf(viewers map[domain.UserID][]domain.SocketID, userIDs []domain.UserID) []domain.SocketID {
	var sockets []domain.SocketID
	for _, id := range userIDs {
		sockets = append(sockets, viewers[id]...)
	}
	return sockets
}

func (e *Engine) broadcastLocation(ctx context.Context, username string, checkin domain.Checkin) {
	if checkin.Location == nil {
		return
	}
	evt := locationUpdate(username, checkin)
	e.emitAll(ctx, e.recipients(ctx, checkin.UserID, checkin.ShowID, checkin.ShareWith), evt)
}

// broadcastStop takes the share list the viewers were authorized with before the stop.
func (e *Engine) broadcastStop(ctx context.Context, sharerID domain.UserID, showID domain.ShowID, shareWith domain.ShareList) {
	evt := event.LocationStopped{ShowID: showID, UserID: sharerID}
	e.emitAll(ctx, e.recipients(ctx, sharerID, showID, shareWith), evt)
}

func locationUpdate(username string, checkin domain.Checkin) event.LocationUpdate {
	evt := event.LocationUpdate{
		ShowID:    checkin.ShowID,
		UserID:    checkin.UserID,
		Username:  username,
		Latitude:  checkin.Location.Latitude,
		Longitude: checkin.Location.Longitude,
	}
	if checkin.LastLocationUpdate != nil {
		evt.Timestamp = *checkin.LastLocationUpdate
	}
	return evt
}

// onUpdateLocation persists the coordinates first; nothing is broadcast when the write fails.
func (e *Engine) onUpdateLocation(ctx context.Context, session domain.Session, cmd domain.UpdateLocationCommand) error {
	checkin, err := e.stores.Checkins.GetActiveCheckin(ctx, session.UserID, cmd.ShowID)
	if err != nil {
		return err
	}
	if checkin == nil {
		return errors.ErrNotCheckedIn
	}

	wasSharing := checkin.State() == domain.Sharing
	previous := checkin.ShareWith
	if cmd.ShareWith.Set {
		checkin.ShareWith = cmd.ShareWith.List.Clone()
	}
	if err := checkin.ShareLocation(cmd.Location, e.now()); err != nil {
		return err
	}
	// Last write wins: concurrent tabs of the same user are not versioned.
	if err := e.stores.Checkins.UpsertCheckin(ctx, *checkin); err != nil {
		return err
	}

	if wasSharing && cmd.ShareWith.Set {
		e.sendDelta(ctx, session, *checkin, previous, false)
	}
	e.broadcastLocation(ctx, session.Username, *checkin)
	return nil
}

// onStopLocation is a no-op when nothing is shared, so a repeated stop emits nothing.
func (e *Engine) onStopLocation(ctx context.Context, session domain.Session, cmd domain.StopLocationCommand) error {
	checkin, err := e.stores.Checkins.GetActiveCheckin(ctx, session.UserID, cmd.ShowID)
	if err != nil {
		return err
	}
	if checkin.State() != domain.Sharing {
		return nil
	}
	if err := e.stores.Checkins.ClearLocation(ctx, session.UserID, cmd.ShowID, false); err != nil {
		return err
	}
	e.broadcastStop(ctx, session.UserID, cmd.ShowID, checkin.ShareWith)
	return nil
}

// onUpdateShareWith stores the new list and, when a location is live, sends
// location_stopped to the viewers that lost access and the last position to the new ones.
func (e *Engine) onUpdateShareWith(ctx context.Context, session domain.Session, cmd domain.UpdateShareWithCommand) error {
	checkin, err := e.stores.Checkins.GetActiveCheckin(ctx, session.UserID, cmd.ShowID)
	if err != nil {
		return err
	}
	if checkin == nil {
		return errors.ErrNotCheckedIn
	}
	previous := checkin.ShareWith
	checkin.ShareWith = cmd.ShareWith.Clone()
	if err := e.stores.Checkins.UpsertCheckin(ctx, *checkin); err != nil {
		return err
	}
	if checkin.State() == domain.Sharing {
		e.sendDelta(ctx, session, *checkin, previous, true)
	}
	return nil
}

// sendDelta only reaches viewers currently present in a sibling room.
func (e *Engine) sendDelta(ctx context.Context, session domain.Session, checkin domain.Checkin,
	previous domain.ShareList, replayToAdded bool) {
	friends, err := e.stores.Friends.AcceptedFriendIDs(ctx, session.UserID)
	if err != nil {
		e.log.Error("Friend lookup failed, share list delta not sent", "user_id", session.UserID, "error", err)
		return
	}
	removed, added := services.VisibilityDelta(previous, checkin.ShareWith, friends)
	viewers := e.viewers(ctx, checkin.ShowID)
	delete(viewers, session.UserID)

	e.emitAll(ctx, socketsOf(viewers, removed), event.LocationStopped{ShowID: checkin.ShowID, UserID: session.UserID})
	if replayToAdded {
		e.emitAll(ctx, socketsOf(viewers, added), locationUpdate(session.Username, checkin))
	}
}

// onGetFriendsLocations answers with the live positions the caller is allowed to see
// across every sibling record of the show.
func (e *Engine) onGetFriendsLocations(ctx context.Context, session domain.Session, cmd domain.GetFriendsLocationsCommand) error {
	friends, err := e.stores.Friends.AcceptedFriendIDs(ctx, session.UserID)
	if err != nil {
		return err
	}

	latest := make(map[domain.UserID]domain.Checkin)
	for _, sibling := range e.siblings.SiblingsOf(ctx, cmd.ShowID) {
		checkins, err := e.stores.Checkins.ActiveCheckinsByShow(ctx, sibling)
		if err != nil {
			return err
		}
		for _, c := range checkins {
			if c.State() != domain.Sharing || !slices.Contains(friends, c.UserID) || !c.ShareWith.Contains(session.UserID) {
				continue
			}
			if kept, ok := latest[c.UserID]; ok && !newer(c, kept) {
				continue
			}
			latest[c.UserID] = c
		}
	}

	located := make([]event.FriendLocation, 0, len(latest))
	for userID, c := range latest {
		user, err := e.stores.Users.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		located = append(located, event.FriendLocation(locationUpdate(user.Username, c)))
	}
	slices.SortFunc(located, func(a, b event.FriendLocation) int { return cmp.Compare(a.UserID, b.UserID) })

	e.emit(ctx, session.SocketID, event.FriendsLocations{ShowID: cmd.ShowID, Friends: located})
	return nil
}

func newer(a, b domain.Checkin) bool {
	if a.LastLocationUpdate == nil {
		return false
	}
	return b.LastLocationUpdate == nil || a.LastLocationUpdate.After(*b.LastLocationUpdate)
}
