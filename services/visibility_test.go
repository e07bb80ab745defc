package services

import (
	"context"
	"testing"

	"sharemyshows-live/domain"
	"sharemyshows-live/errors"
	"sharemyshows-live/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthorize_NilShareListMeansEveryFriend(t *testing.T) {
	req := require.New(t)

	// Given the sharer 1 is friend with 2 and 3, and 4 is a stranger
	friends := []domain.UserID{2, 3}

	// When every room member is a candidate
	recipients := Authorize(1, friends, nil, []domain.UserID{1, 4, 3, 2, 3})

	// Then only friends receive the location, never the sharer itself
	req.Equal([]domain.UserID{2, 3}, recipients)
}

func TestAuthorize_ShareListRestrictsFriends(t *testing.T) {
	req := require.New(t)

	// Given B (2) and C (3) are friends, A only shares with C
	friends := []domain.UserID{2, 3}
	shareWith := domain.ShareList{3}

	// When both are in a sibling room
	recipients := Authorize(1, friends, shareWith, []domain.UserID{2, 3})

	// Then only C receives it
	req.Equal([]domain.UserID{3}, recipients)
}

func TestAuthorize_ShareListCannotWidenBeyondFriends(t *testing.T) {
	req := require.New(t)

	// Given a share list naming a user that is not an accepted friend
	friends := []domain.UserID{2}
	shareWith := domain.ShareList{2, 9}

	// When 9 is present in the room
	recipients := Authorize(1, friends, shareWith, []domain.UserID{2, 9})

	// Then 9 is filtered out
	req.Equal([]domain.UserID{2}, recipients)
}

func TestAuthorize_EmptyShareListMeansNobody(t *testing.T) {
	req := require.New(t)
	recipients := Authorize(1, []domain.UserID{2, 3}, domain.ShareList{}, []domain.UserID{2, 3})
	req.Empty(recipients)
}

func TestVisibilityDelta(t *testing.T) {
	friends := []domain.UserID{2, 3, 4}

	tests := []struct {
		name           string
		before, after  domain.ShareList
		removed, added []domain.UserID
	}{
		{
			name:    "All friends to a subset",
			before:  nil,
			after:   domain.ShareList{3},
			removed: []domain.UserID{2, 4},
			added:   nil,
		},
		{
			name:    "Subset to all friends",
			before:  domain.ShareList{3},
			after:   nil,
			removed: nil,
			added:   []domain.UserID{2, 4},
		},
		{
			name:    "Swap one friend for another",
			before:  domain.ShareList{2, 3},
			after:   domain.ShareList{3, 4},
			removed: []domain.UserID{2},
			added:   []domain.UserID{4},
		},
		{
			name:    "Non friend entries are ignored",
			before:  domain.ShareList{2, 42},
			after:   domain.ShareList{2, 43},
			removed: nil,
			added:   nil,
		},
		{
			name:    "Nobody to nobody",
			before:  domain.ShareList{},
			after:   domain.ShareList{},
			removed: nil,
			added:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			removed, added := VisibilityDelta(tt.before, tt.after, friends)
			req.ElementsMatch(tt.removed, removed)
			req.ElementsMatch(tt.added, added)
		})
	}
}

func TestVisibilityFilter_AuthorizedRecipients(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	friendStore := mocks.NewMockFriendStore(ctrl)
	filter := NewVisibilityFilter(friendStore)

	// Given the store knows 1 is friend with 2
	friendStore.EXPECT().AcceptedFriendIDs(gomock.Any(), domain.UserID(1)).
		Return([]domain.UserID{2}, nil).Times(1)

	// When candidates include a friend and a stranger
	recipients, err := filter.AuthorizedRecipients(context.Background(), 1, nil, []domain.UserID{2, 5})

	// Then only the friend is kept
	req.NoError(err)
	req.Equal([]domain.UserID{2}, recipients)
}

func TestVisibilityFilter_NoCandidatesSkipsTheStore(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	friendStore := mocks.NewMockFriendStore(ctrl)
	filter := NewVisibilityFilter(friendStore)

	// Given no expectation on the store, any call would fail the test
	recipients, err := filter.AuthorizedRecipients(context.Background(), 1, nil, nil)

	req.NoError(err)
	req.Empty(recipients)
}

func TestVisibilityFilter_StoreFailureIsReturned(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	friendStore := mocks.NewMockFriendStore(ctrl)
	filter := NewVisibilityFilter(friendStore)

	friendStore.EXPECT().AcceptedFriendIDs(gomock.Any(), gomock.Any()).
		Return(nil, errors.ErrStoreFailure).Times(1)

	_, err := filter.AuthorizedRecipients(context.Background(), 1, nil, []domain.UserID{2})
	req.ErrorIs(err, errors.ErrStoreFailure)
}
