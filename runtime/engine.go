// Package runtime owns the live state of the service: sessions, presence and show rooms.
// A single loop goroutine applies every inbound event to completion, one at a time,
// so the ephemeral maps need no lock.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"sharemyshows-live/contract"
	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"
	"sharemyshows-live/observability"
)

var (
	_ contract.IPresenceEngine = (*Engine)(nil)
	_ contract.Worker          = (*Engine)(nil)
)

type Stores struct {
	Users    contract.UserStore
	Checkins contract.CheckinStore
	Shows    contract.ShowStore
	Friends  contract.FriendStore
	Chat     contract.ChatStore
}

type Config struct {
	BufferSize   int
	StoreTimeout time.Duration
	HistoryLimit int
}

type connectRequest struct {
	userID domain.UserID
	sink   contract.EventSink
	reply  chan connectResult
}

type connectResult struct {
	session domain.Session
	err     error
}

type disconnectRequest struct {
	socketID domain.SocketID
}

type commandRequest struct {
	socketID domain.SocketID
	cmd      domain.Command
}

type snapshotRequest struct {
	reply chan Stats
}

// Engine is the dispatcher loop. Connect, Disconnect, Dispatch and Snapshot
// may be called from any goroutine; everything else runs inside Run.
type Engine struct {
	log        *slog.Logger
	registry   *PresenceRegistry
	stores     Stores
	verifier   contract.TokenVerifier
	siblings   contract.ISiblingResolver
	visibility contract.IVisibilityFilter
	moderator  contract.IModerator
	languages  contract.ILanguageDetector
	metrics    *observability.Metrics
	config     Config
	inbox      chan any
	closed     chan struct{}
	closeOnce  sync.Once
	now        func() time.Time
}

func NewEngine(log *slog.Logger, registry *PresenceRegistry, stores Stores,
	verifier contract.TokenVerifier, siblings contract.ISiblingResolver,
	visibility contract.IVisibilityFilter, moderator contract.IModerator,
	languages contract.ILanguageDetector, metrics *observability.Metrics, config Config) *Engine {
	return &Engine{
		log:        log,
		registry:   registry,
		stores:     stores,
		verifier:   verifier,
		siblings:   siblings,
		visibility: visibility,
		moderator:  moderator,
		languages:  languages,
		metrics:    metrics,
		config:     config,
		inbox:      make(chan any, config.BufferSize),
		closed:     make(chan struct{}),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run consumes the inbox until ctx is done.
// The registry outlives Run, so a restart after a panic keeps every session.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			e.log.Debug("Context done, stopping presence loop")
			return nil
		case msg := <-e.inbox:
			e.handle(ctx, msg)
		}
	}
}

// Inbox exposes the command channel for capacity sampling only.
func (e *Engine) Inbox() any {
	return e.inbox
}

// Close makes every pending and future call return immediately.
func (e *Engine) Close() {
	e.closeOnce.Do(func() { close(e.closed) })
}

// Connect authenticates the token and registers the socket once the loop accepted it.
func (e *Engine) Connect(ctx context.Context, token string, sink contract.EventSink) (domain.Session, error) {
	userID, err := e.verifier.UserFromToken(token)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", errors.ErrUnauthorized, err)
	}

	reply := make(chan connectResult, 1)
	if err := e.enqueue(ctx, connectRequest{userID: userID, sink: sink, reply: reply}); err != nil {
		return domain.Session{}, err
	}

	select {
	case res := <-reply:
		return res.session, res.err
	case <-ctx.Done():
		// The loop may still register the socket: undo it as soon as it does.
		go func() {
			if res := <-reply; res.err == nil {
				e.Disconnect(res.session.SocketID)
			}
		}()
		return domain.Session{}, ctx.Err()
	}
}

// Disconnect is never dropped: it waits for room in the inbox.
func (e *Engine) Disconnect(socketID domain.SocketID) {
	if err := e.enqueue(context.Background(), disconnectRequest{socketID: socketID}); err != nil {
		e.log.Debug("Disconnect ignored, presence loop closed", "socket_id", socketID)
	}
}

// Dispatch blocks the calling connection while the inbox is full.
func (e *Engine) Dispatch(socketID domain.SocketID, cmd domain.Command) {
	if err := e.enqueue(context.Background(), commandRequest{socketID: socketID, cmd: cmd}); err != nil {
		e.log.Debug("Command ignored, presence loop closed", "socket_id", socketID, "command", cmd.Name())
	}
}

// Snapshot returns registry counters once every previously queued event is applied.
func (e *Engine) Snapshot(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)
	if err := e.enqueue(ctx, snapshotRequest{reply: reply}); err != nil {
		return Stats{}, err
	}
	select {
	case stats := <-reply:
		return stats, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	case <-e.closed:
		return Stats{}, errors.ErrLoopStopped
	}
}

func (e *Engine) enqueue(ctx context.Context, msg any) error {
	select {
	case e.inbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.closed:
		return errors.ErrLoopStopped
	}
}

// handle runs one inbound event to completion under a single deadline. Stores check it
// before opening a transaction; a transaction already running is not interrupted.
func (e *Engine) handle(parent context.Context, msg any) {
	ctx, cancel := context.WithTimeout(parent, e.config.StoreTimeout)
	defer cancel()

	switch m := msg.(type) {
	case connectRequest:
		session, err := e.onConnect(ctx, m.userID, m.sink)
		m.reply <- connectResult{session: session, err: err}
	case disconnectRequest:
		e.onDisconnect(ctx, m.socketID)
	case commandRequest:
		e.onCommand(ctx, m.socketID, m.cmd)
	case snapshotRequest:
		m.reply <- e.registry.Stats()
	default:
		e.log.Warn("Unknown inbox message", "type", fmt.Sprintf("%T", msg))
	}

	stats := e.registry.Stats()
	e.metrics.Observe(stats.Connections, stats.Online, stats.Rooms)
}

func (e *Engine) onCommand(ctx context.Context, socketID domain.SocketID, cmd domain.Command) {
	session, ok := e.registry.Session(socketID)
	if !ok {
		e.log.Debug("Command from unknown socket", "socket_id", socketID, "command", cmd.Name())
		return
	}
	e.metrics.CommandsTotal.WithLabelValues(cmd.Name()).Inc()

	var err error
	switch c := cmd.(type) {
	case domain.JoinShowCommand:
		err = e.onJoinShow(ctx, session, c)
	case domain.LeaveShowCommand:
		err = e.onLeaveShow(ctx, session, c)
	case domain.SendMessageCommand:
		err = e.onSendMessage(ctx, session, c)
	case domain.TypingCommand:
		e.onTyping(ctx, session, c)
	case domain.GetActiveUsersCommand:
		e.onGetActiveUsers(ctx, session, c)
	case domain.UpdateLocationCommand:
		err = e.onUpdateLocation(ctx, session, c)
	case domain.StopLocationCommand:
		err = e.onStopLocation(ctx, session, c)
	case domain.UpdateShareWithCommand:
		err = e.onUpdateShareWith(ctx, session, c)
	case domain.GetFriendsLocationsCommand:
		err = e.onGetFriendsLocations(ctx, session, c)
	case domain.SetAppearOfflineCommand:
		err = e.onSetAppearOffline(ctx, session, c)
	default:
		err = fmt.Errorf("%w: %s", errors.ErrUnknownEvent, cmd.Name())
	}

	if err != nil {
		e.metrics.ErrorsTotal.WithLabelValues(cmd.Name()).Inc()
		if errors.Is(err, errors.ErrStoreFailure) {
			e.log.Error("Command failed", "command", cmd.Name(), "user_id", session.UserID, "error", err)
		} else {
			e.log.Debug("Command rejected", "command", cmd.Name(), "user_id", session.UserID, "error", err)
		}
		e.emit(ctx, socketID, event.Error{Message: errors.Message(err)})
	}
}

// emit is fire and forget: a missing or saturated connection only costs a log line.
func (e *Engine) emit(ctx context.Context, socketID domain.SocketID, evt event.Event) {
	sink, ok := e.registry.Sink(socketID)
	if !ok {
		e.metrics.DroppedTotal.WithLabelValues(evt.Name()).Inc()
		e.log.Debug("Recipient gone, event dropped", "socket_id", socketID, "event", evt.Name())
		return
	}
	if err := sink.Consume(ctx, evt); err != nil {
		e.metrics.DroppedTotal.WithLabelValues(evt.Name()).Inc()
		e.log.Debug("Event dropped", "socket_id", socketID, "event", evt.Name(), "error", err)
		return
	}
	e.metrics.EventsTotal.WithLabelValues(evt.Name()).Inc()
}

func (e *Engine) emitAll(ctx context.Context, socketIDs []domain.SocketID, evt event.Event) {
	for _, id := range socketIDs {
		e.emit(ctx, id, evt)
	}
}

// emitToUser reaches every open tab of the user.
func (e *Engine) emitToUser(ctx context.Context, userID domain.UserID, evt event.Event) {
	e.emitAll(ctx, e.registry.SocketsFor(userID), evt)
}

// emitToRoom reaches the members of one room, skipping the excluded users.
func (e *Engine) emitToRoom(ctx context.Context, showID domain.ShowID, evt event.Event, except ...domain.UserID) {
	for _, m := range e.registry.MembersOf(showID) {
		if slices.Contains(except, m.UserID) {
			continue
		}
		e.emit(ctx, m.SocketID, evt)
	}
}
