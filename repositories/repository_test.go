package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"sharemyshows-live/domain"
	"sharemyshows-live/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Find_Siblings_Across_Owners(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewShowRepository(openDB(t))
	date := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

	// Given two users logged the same concert and a third logged another date
	req.NoError(repository.SaveShow(ctx, domain.ShowRecord{ID: 10, ArtistID: 1, VenueID: 2, Date: date, OwnerID: 1}))
	req.NoError(repository.SaveShow(ctx, domain.ShowRecord{ID: 77, ArtistID: 1, VenueID: 2, Date: date.Add(2 * time.Hour), OwnerID: 2}))
	req.NoError(repository.SaveShow(ctx, domain.ShowRecord{ID: 90, ArtistID: 1, VenueID: 2, Date: date.AddDate(0, 0, 1), OwnerID: 3}))

	// When siblings are queried
	ids, err := repository.FindSiblings(ctx, 1, 2, date)

	// Then only the same calendar date is returned
	req.NoError(err)
	req.Equal([]domain.ShowID{10, 77}, ids)
}

func Test_Save_Show_Moves_Concert_Index(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewShowRepository(openDB(t))
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	req.NoError(repository.SaveShow(ctx, domain.ShowRecord{ID: 10, ArtistID: 1, VenueID: 2, Date: date}))
	// When the record is corrected to another venue
	req.NoError(repository.SaveShow(ctx, domain.ShowRecord{ID: 10, ArtistID: 1, VenueID: 3, Date: date}))

	old, err := repository.FindSiblings(ctx, 1, 2, date)
	req.NoError(err)
	req.Empty(old)
	moved, err := repository.FindSiblings(ctx, 1, 3, date)
	req.NoError(err)
	req.Equal([]domain.ShowID{10}, moved)
}

func Test_Get_Unknown_Show(t *testing.T) {
	req := require.New(t)
	repository := NewShowRepository(openDB(t))

	_, err := repository.GetByID(context.Background(), 404)
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Checkin_Active_Indexes_Follow_State(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewCheckinRepository(openDB(t))
	now := time.Now().UTC()

	// Given an active checkin with coordinates
	checkin := domain.NewCheckin(1, 10, now)
	req.NoError(checkin.ShareLocation(domain.Location{Latitude: 40, Longitude: -74}, now))
	req.NoError(repository.UpsertCheckin(ctx, *checkin))

	byShow, err := repository.ActiveCheckinsByShow(ctx, 10)
	req.NoError(err)
	req.Len(byShow, 1)
	byUser, err := repository.ActiveCheckinsByUser(ctx, 1)
	req.NoError(err)
	req.Len(byUser, 1)
	req.Equal(domain.Sharing, byUser[0].State())

	// When the user checks out
	_, err = checkin.CheckOut(now)
	req.NoError(err)
	req.NoError(repository.UpsertCheckin(ctx, *checkin))

	// Then the row survives as history but leaves both indexes
	active, err := repository.GetActiveCheckin(ctx, 1, 10)
	req.NoError(err)
	req.Nil(active)
	stored, err := repository.GetCheckin(ctx, 1, 10)
	req.NoError(err)
	req.NotNil(stored)
	req.False(stored.IsActive)
	byShow, err = repository.ActiveCheckinsByShow(ctx, 10)
	req.NoError(err)
	req.Empty(byShow)
}

func Test_All_Checkins_Includes_History(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewCheckinRepository(openDB(t))
	now := time.Now().UTC()

	// Given an active checkin and a checked out one
	req.NoError(repository.UpsertCheckin(ctx, *domain.NewCheckin(2, 10, now)))
	past := domain.NewCheckin(1, 11, now)
	_, err := past.CheckOut(now)
	req.NoError(err)
	req.NoError(repository.UpsertCheckin(ctx, *past))

	// When every row is listed
	all, err := repository.AllCheckins(ctx)

	// Then both come back ordered by user, and no index key leaks in
	req.NoError(err)
	req.Len(all, 2)
	req.Equal(domain.UserID(1), all[0].UserID)
	req.False(all[0].IsActive)
	req.Equal(domain.UserID(2), all[1].UserID)
	req.True(all[1].IsActive)
}

func Test_Clear_Location_Keeps_Or_Drops_Share_List(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewCheckinRepository(openDB(t))
	now := time.Now().UTC()

	checkin := domain.NewCheckin(1, 10, now)
	checkin.ShareWith = domain.ShareList{2, 3}
	req.NoError(checkin.ShareLocation(domain.Location{Latitude: 1, Longitude: 2}, now))
	req.NoError(repository.UpsertCheckin(ctx, *checkin))

	req.NoError(repository.ClearLocation(ctx, 1, 10, false))
	stored, err := repository.GetCheckin(ctx, 1, 10)
	req.NoError(err)
	req.Nil(stored.Location)
	req.Equal(domain.ShareList{2, 3}, stored.ShareWith)

	req.NoError(repository.ClearLocation(ctx, 1, 10, true))
	stored, err = repository.GetCheckin(ctx, 1, 10)
	req.NoError(err)
	req.True(stored.ShareWith.AllFriends())

	// A missing row is ignored
	req.NoError(repository.ClearLocation(ctx, 9, 9, true))
}

func Test_Share_List_Null_And_Empty_Survive_Storage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewCheckinRepository(openDB(t))

	everyone := domain.NewCheckin(1, 10, time.Now().UTC())
	nobody := domain.NewCheckin(2, 10, time.Now().UTC())
	nobody.ShareWith = domain.ShareList{}
	req.NoError(repository.UpsertCheckin(ctx, *everyone))
	req.NoError(repository.UpsertCheckin(ctx, *nobody))

	stored, err := repository.GetCheckin(ctx, 1, 10)
	req.NoError(err)
	req.True(stored.ShareWith.AllFriends())
	stored, err = repository.GetCheckin(ctx, 2, 10)
	req.NoError(err)
	req.False(stored.ShareWith.AllFriends())
	req.Empty(stored.ShareWith)
}

func Test_Accepted_Friends_Both_Directions(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewFriendshipRepository(openDB(t))

	req.NoError(repository.SaveFriendship(ctx, 1, 2, FriendshipAccepted))
	req.NoError(repository.SaveFriendship(ctx, 3, 1, FriendshipAccepted))
	req.NoError(repository.SaveFriendship(ctx, 1, 4, FriendshipPending))

	friends, err := repository.AcceptedFriendIDs(ctx, 1)
	req.NoError(err)
	req.Equal([]domain.UserID{2, 3}, friends)

	friends, err = repository.AcceptedFriendIDs(ctx, 3)
	req.NoError(err)
	req.Equal([]domain.UserID{1}, friends)

	req.NoError(repository.DeleteFriendship(ctx, 2, 1))
	friends, err = repository.AcceptedFriendIDs(ctx, 1)
	req.NoError(err)
	req.Equal([]domain.UserID{3}, friends)
}

func Test_User_Appear_Offline(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewUserRepository(openDB(t))

	req.NoError(repository.SaveUser(ctx, domain.User{ID: 1, Username: "alice"}))
	req.NoError(repository.SetAppearOffline(ctx, 1, true))

	user, err := repository.GetUser(ctx, 1)
	req.NoError(err)
	req.Equal("alice", user.Username)
	req.Equal(domain.Offline, user.Visibility())

	req.ErrorIs(repository.SetAppearOffline(ctx, 2, true), errors.ErrNotFound)
}

func Test_Record_Multiple_Message_And_Limit(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openDB(t), slog.Default())
	at := time.Now().UTC()

	var messages []domain.ChatMessage
	for i, author := range []string{"Alice", "Bob", "Clara"} {
		messages = append(messages, domain.ChatMessage{
			ID:        uuid.New(),
			ShowID:    1,
			UserID:    domain.UserID(i + 1),
			Username:  author,
			Text:      "this message will self destruct in 5 seconds",
			CreatedAt: at.Add(time.Duration(i) * time.Minute),
		})
	}
	for _, message := range messages {
		req.NoError(repository.Append(ctx, message))
	}
	// Another show must not leak into the history
	req.NoError(repository.Append(ctx, domain.ChatMessage{ID: uuid.New(), ShowID: 2, Text: "elsewhere", CreatedAt: at}))

	all, err := repository.Recent(ctx, 1, 50)
	req.NoError(err)
	req.Equal(messages, all)

	latest, err := repository.Recent(ctx, 1, 2)
	req.NoError(err)
	req.Equal(messages[1:], latest)
}

func Test_Canceled_Context_Is_A_Store_Failure(t *testing.T) {
	req := require.New(t)
	repository := NewCheckinRepository(openDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repository.GetCheckin(ctx, 1, 1)
	req.ErrorIs(err, errors.ErrStoreFailure)
}
