package runtime

import (
	"context"

	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"

	"github.com/google/uuid"
)

// onJoinShow reads first, then writes the checkin, and only then touches the room,
// so a store failure leaves no membership behind.
func (e *Engine) onJoinShow(ctx context.Context, session domain.Session, cmd domain.JoinShowCommand) error {
	if _, err := e.stores.Shows.GetByID(ctx, cmd.ShowID); err != nil {
		return err
	}
	history, err := e.stores.Chat.Recent(ctx, cmd.ShowID, e.config.HistoryLimit)
	if err != nil {
		return err
	}
	if err := e.ensureCheckedIn(ctx, session.UserID, cmd.ShowID); err != nil {
		return err
	}

	isNew := e.registry.Join(cmd.ShowID, domain.Member{
		UserID:   session.UserID,
		Username: session.Username,
		SocketID: session.SocketID,
	})
	members := e.registry.MembersOf(cmd.ShowID)
	e.log.Debug("Joined show", "user_id", session.UserID, "show_id", cmd.ShowID, "new", isNew)

	e.emit(ctx, session.SocketID, event.MessageHistory{ShowID: cmd.ShowID, Messages: history})
	e.emitToRoom(ctx, cmd.ShowID, event.UserJoined{
		ShowID:      cmd.ShowID,
		UserID:      session.UserID,
		Username:    session.Username,
		Message:     session.Username + " joined the chat",
		ActiveUsers: members,
	}, session.UserID)
	e.emit(ctx, session.SocketID, event.ActiveUsers{ShowID: cmd.ShowID, ActiveUsers: members, Count: len(members)})
	return nil
}

func (e *Engine) ensureCheckedIn(ctx context.Context, userID domain.UserID, showID domain.ShowID) error {
	checkin, err := e.stores.Checkins.GetCheckin(ctx, userID, showID)
	if err != nil {
		return err
	}
	if checkin == nil {
		return e.stores.Checkins.UpsertCheckin(ctx, *domain.NewCheckin(userID, showID, e.now()))
	}
	if checkin.State() != domain.NotCheckedIn {
		return nil
	}
	if err := checkin.CheckIn(e.now()); err != nil {
		return err
	}
	return e.stores.Checkins.UpsertCheckin(ctx, *checkin)
}

// onLeaveShow checks the user out. A running share ends with location_stopped.
func (e *Engine) onLeaveShow(ctx context.Context, session domain.Session, cmd domain.LeaveShowCommand) error {
	checkin, err := e.stores.Checkins.GetActiveCheckin(ctx, session.UserID, cmd.ShowID)
	if err != nil {
		return err
	}
	wasSharing := false
	if checkin != nil {
		if wasSharing, err = checkin.CheckOut(e.now()); err != nil {
			return err
		}
		if err := e.stores.Checkins.UpsertCheckin(ctx, *checkin); err != nil {
			return err
		}
	}

	if _, left := e.registry.Leave(cmd.ShowID, session.UserID); left {
		members := e.registry.MembersOf(cmd.ShowID)
		if len(members) > 0 {
			e.emitToRoom(ctx, cmd.ShowID, event.UserLeft{
				ShowID:      cmd.ShowID,
				UserID:      session.UserID,
				Username:    session.Username,
				Message:     session.Username + " left the chat",
				ActiveUsers: members,
			})
		}
	}
	if wasSharing {
		e.broadcastStop(ctx, session.UserID, cmd.ShowID, checkin.ShareWith)
	}
	return nil
}

func (e *Engine) onSendMessage(ctx context.Context, session domain.Session, cmd domain.SendMessageCommand) error {
	if _, err := e.stores.Shows.GetByID(ctx, cmd.ShowID); err != nil {
		return err
	}
	if _, ok := e.registry.Member(cmd.ShowID, session.UserID); !ok {
		return errors.ErrForbidden
	}

	text := e.moderator.Censor(cmd.Text)
	message := domain.ChatMessage{
		ID:        uuid.New(),
		ShowID:    cmd.ShowID,
		UserID:    session.UserID,
		Username:  session.Username,
		Text:      text,
		Language:  e.languages.Detect(text),
		CreatedAt: e.now(),
	}
	if err := e.stores.Chat.Append(ctx, message); err != nil {
		return err
	}
	e.emitToRoom(ctx, cmd.ShowID, event.NewMessage{ChatMessage: message})
	return nil
}

func (e *Engine) onTyping(ctx context.Context, session domain.Session, cmd domain.TypingCommand) {
	if _, ok := e.registry.Member(cmd.ShowID, session.UserID); !ok {
		return
	}
	e.emitToRoom(ctx, cmd.ShowID, event.UserTyping{
		ShowID:   cmd.ShowID,
		UserID:   session.UserID,
		Username: session.Username,
		IsTyping: cmd.IsTyping,
	}, session.UserID)
}

func (e *Engine) onGetActiveUsers(ctx context.Context, session domain.Session, cmd domain.GetActiveUsersCommand) {
	members := e.registry.MembersOf(cmd.ShowID)
	e.emit(ctx, session.SocketID, event.ActiveUsers{ShowID: cmd.ShowID, ActiveUsers: members, Count: len(members)})
}
