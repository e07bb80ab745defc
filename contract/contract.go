//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the outbound queue of one connection.
// Consume must never block the caller: a full queue drops the event.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

type CheckinStore interface {
	GetCheckin(ctx context.Context, userID domain.UserID, showID domain.ShowID) (*domain.Checkin, error)
	GetActiveCheckin(ctx context.Context, userID domain.UserID, showID domain.ShowID) (*domain.Checkin, error)
	ActiveCheckinsByUser(ctx context.Context, userID domain.UserID) ([]domain.Checkin, error)
	ActiveCheckinsByShow(ctx context.Context, showID domain.ShowID) ([]domain.Checkin, error)
	UpsertCheckin(ctx context.Context, checkin domain.Checkin) error
	ClearLocation(ctx context.Context, userID domain.UserID, showID domain.ShowID, clearShareWith bool) error
}

type ShowStore interface {
	GetByID(ctx context.Context, id domain.ShowID) (domain.ShowRecord, error)
	FindSiblings(ctx context.Context, artistID, venueID int64, date time.Time) ([]domain.ShowID, error)
}

type FriendStore interface {
	AcceptedFriendIDs(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
}

type UserStore interface {
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	SetAppearOffline(ctx context.Context, id domain.UserID, appearOffline bool) error
}

type ChatStore interface {
	Recent(ctx context.Context, showID domain.ShowID, limit int) ([]domain.ChatMessage, error)
	Append(ctx context.Context, message domain.ChatMessage) error
}

type TokenVerifier interface {
	UserFromToken(token string) (domain.UserID, error)
}

type ISiblingResolver interface {
	SiblingsOf(ctx context.Context, showID domain.ShowID) []domain.ShowID
}

type IVisibilityFilter interface {
	AuthorizedRecipients(ctx context.Context, sharerID domain.UserID, shareWith domain.ShareList, candidates []domain.UserID) ([]domain.UserID, error)
}

type IModerator interface {
	Censor(original string) string
}

type ILanguageDetector interface {
	Detect(text string) string
}

// IPresenceEngine is what a transport needs to drive the presence core.
type IPresenceEngine interface {
	Connect(ctx context.Context, token string, sink EventSink) (domain.Session, error)
	Disconnect(socketID domain.SocketID)
	Dispatch(socketID domain.SocketID, cmd domain.Command)
}
