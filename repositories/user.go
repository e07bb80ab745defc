package repositories

import (
	"context"

	"sharemyshows-live/domain"
	"sharemyshows-live/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

type IUserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	SetAppearOffline(ctx context.Context, id domain.UserID, appearOffline bool) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(id domain.UserID) []byte {
	return []byte(prefixUser + pad(int64(id)))
}

func (u *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if err := guard(ctx, "save user"); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return storeFailure("marshal user", err)
	}
	if err = u.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.ID), data)
	}); err != nil {
		return storeFailure("save user", err)
	}
	return nil
}

// GetUser returns errors.ErrNotFound when the user does not exist.
func (u *UserRepository) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	if err := guard(ctx, "get user"); err != nil {
		return domain.User{}, err
	}
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, userKey(id), &user)
	})
	if err != nil {
		return domain.User{}, notFoundOrFailure("get user", err)
	}
	return user, nil
}

// SetAppearOffline updates the preference inside a single read-modify-write transaction.
func (u *UserRepository) SetAppearOffline(ctx context.Context, id domain.UserID, appearOffline bool) error {
	if err := guard(ctx, "set appear offline"); err != nil {
		return err
	}
	err := u.db.Update(func(txn *badger.Txn) error {
		var user domain.User
		if err := readJSON(txn, userKey(id), &user); err != nil {
			return err
		}
		user.AppearOffline = appearOffline
		return writeJSON(txn, userKey(id), user)
	})
	if err != nil {
		return notFoundOrFailure("set appear offline", err)
	}
	return nil
}

func readJSON(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func writeJSON(txn *badger.Txn, key []byte, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

func notFoundOrFailure(op string, err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrNotFound
	}
	return storeFailure(op, err)
}
