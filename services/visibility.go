package services

import (
	"context"
	"slices"

	"sharemyshows-live/contract"
	"sharemyshows-live/domain"

	"github.com/samber/lo"
)

var _ contract.IVisibilityFilter = (*VisibilityFilter)(nil)

// VisibilityFilter decides which users may see a sharer's live location.
type VisibilityFilter struct {
	friends contract.FriendStore
}

func NewVisibilityFilter(friends contract.FriendStore) *VisibilityFilter {
	return &VisibilityFilter{friends: friends}
}

// AuthorizedRecipients keeps the candidates that are accepted friends of the sharer
// and, when shareWith is not nil, also listed in it.
func (f *VisibilityFilter) AuthorizedRecipients(ctx context.Context, sharerID domain.UserID,
	shareWith domain.ShareList, candidates []domain.UserID) ([]domain.UserID, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	friendIDs, err := f.friends.AcceptedFriendIDs(ctx, sharerID)
	if err != nil {
		return nil, err
	}
	return Authorize(sharerID, friendIDs, shareWith, candidates), nil
}

// Authorize is the pure part of AuthorizedRecipients. The sharer never receives its own events.
func Authorize(sharerID domain.UserID, friendIDs []domain.UserID,
	shareWith domain.ShareList, candidates []domain.UserID) []domain.UserID {
	visible := Visible(shareWith, friendIDs)
	recipients := lo.Filter(lo.Uniq(candidates), func(id domain.UserID, _ int) bool {
		return id != sharerID && lo.Contains(visible, id)
	})
	slices.Sort(recipients)
	return recipients
}

// Visible resolves a share list against the friend set: nil stands for every friend,
// otherwise only listed friends remain.
func Visible(shareWith domain.ShareList, friendIDs []domain.UserID) []domain.UserID {
	if shareWith.AllFriends() {
		return lo.Uniq(friendIDs)
	}
	return lo.Filter(lo.Uniq(friendIDs), func(id domain.UserID, _ int) bool {
		return lo.Contains(shareWith, id)
	})
}

// VisibilityDelta compares what two share lists expose to the same friend set.
// removed must receive location_stopped, added must receive the last known location.
func VisibilityDelta(oldShareWith, newShareWith domain.ShareList,
	friendIDs []domain.UserID) (removed, added []domain.UserID) {
	removed, added = lo.Difference(Visible(oldShareWith, friendIDs), Visible(newShareWith, friendIDs))
	slices.Sort(removed)
	slices.Sort(added)
	return removed, added
}
