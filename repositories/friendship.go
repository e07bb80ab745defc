package repositories

import (
	"context"

	"sharemyshows-live/domain"

	"github.com/dgraph-io/badger/v4"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// FriendshipRepository stores undirected friendship edges.
// Every edge is written under both endpoints so either side can be listed with one prefix scan.
type FriendshipRepository struct {
	db *badger.DB
}

func NewFriendshipRepository(db *badger.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

func friendPrefix(userID domain.UserID) string {
	return prefixFriend + pad(int64(userID)) + ":"
}

func friendKey(userID, friendID domain.UserID) []byte {
	return []byte(friendPrefix(userID) + pad(int64(friendID)))
}

func (f *FriendshipRepository) SaveFriendship(ctx context.Context, a, b domain.UserID, status FriendshipStatus) error {
	if err := guard(ctx, "save friendship"); err != nil {
		return err
	}
	err := f.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(friendKey(a, b), []byte(status)); err != nil {
			return err
		}
		return txn.Set(friendKey(b, a), []byte(status))
	})
	if err != nil {
		return storeFailure("save friendship", err)
	}
	return nil
}

func (f *FriendshipRepository) DeleteFriendship(ctx context.Context, a, b domain.UserID) error {
	if err := guard(ctx, "delete friendship"); err != nil {
		return err
	}
	err := f.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(friendKey(a, b)); err != nil {
			return err
		}
		return txn.Delete(friendKey(b, a))
	})
	if err != nil {
		return storeFailure("delete friendship", err)
	}
	return nil
}

// AcceptedFriendIDs lists the friends of userID whose edge is accepted, in ascending order.
func (f *FriendshipRepository) AcceptedFriendIDs(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	if err := guard(ctx, "list friends"); err != nil {
		return nil, err
	}
	var friends []domain.UserID
	err := f.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(friendPrefix(userID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			status, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if FriendshipStatus(status) != FriendshipAccepted {
				continue
			}
			id, err := lastSegment(item.Key())
			if err != nil {
				return err
			}
			friends = append(friends, domain.UserID(id))
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("list friends", err)
	}
	return friends, nil
}
