package repositories

import (
	"context"

	"sharemyshows-live/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// CheckinRepository keeps one row per (user, show) plus two indexes of the active rows.
// Writes are last-write-wins: no version check is made between concurrent tabs of a user.
type CheckinRepository struct {
	db *badger.DB
}

func NewCheckinRepository(db *badger.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

func checkinKey(userID domain.UserID, showID domain.ShowID) []byte {
	return []byte(prefixCheckin + pad(int64(userID)) + ":" + pad(int64(showID)))
}

func activeShowKey(showID domain.ShowID, userID domain.UserID) []byte {
	return []byte(prefixActiveShow + pad(int64(showID)) + ":" + pad(int64(userID)))
}

func activeUserKey(userID domain.UserID, showID domain.ShowID) []byte {
	return []byte(prefixActiveUser + pad(int64(userID)) + ":" + pad(int64(showID)))
}

// GetCheckin returns the row whatever its state, or nil when the user never checked in.
func (c *CheckinRepository) GetCheckin(ctx context.Context, userID domain.UserID, showID domain.ShowID) (*domain.Checkin, error) {
	if err := guard(ctx, "get checkin"); err != nil {
		return nil, err
	}
	var checkin *domain.Checkin
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		checkin, err = readCheckin(txn, userID, showID)
		return err
	})
	if err != nil {
		return nil, storeFailure("get checkin", err)
	}
	return checkin, nil
}

// GetActiveCheckin returns nil when there is no active row.
func (c *CheckinRepository) GetActiveCheckin(ctx context.Context, userID domain.UserID, showID domain.ShowID) (*domain.Checkin, error) {
	checkin, err := c.GetCheckin(ctx, userID, showID)
	if err != nil || checkin == nil || !checkin.IsActive {
		return nil, err
	}
	return checkin, nil
}

func (c *CheckinRepository) ActiveCheckinsByUser(ctx context.Context, userID domain.UserID) ([]domain.Checkin, error) {
	if err := guard(ctx, "active checkins by user"); err != nil {
		return nil, err
	}
	var checkins []domain.Checkin
	err := c.db.View(func(txn *badger.Txn) error {
		for _, key := range scanKeys(txn, prefixActiveUser+pad(int64(userID))+":") {
			showID, err := lastSegment(key)
			if err != nil {
				return err
			}
			checkin, err := readCheckin(txn, userID, domain.ShowID(showID))
			if err != nil {
				return err
			}
			if checkin != nil && checkin.IsActive {
				checkins = append(checkins, *checkin)
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("active checkins by user", err)
	}
	return checkins, nil
}

func (c *CheckinRepository) ActiveCheckinsByShow(ctx context.Context, showID domain.ShowID) ([]domain.Checkin, error) {
	if err := guard(ctx, "active checkins by show"); err != nil {
		return nil, err
	}
	var checkins []domain.Checkin
	err := c.db.View(func(txn *badger.Txn) error {
		for _, key := range scanKeys(txn, prefixActiveShow+pad(int64(showID))+":") {
			userID, err := lastSegment(key)
			if err != nil {
				return err
			}
			checkin, err := readCheckin(txn, domain.UserID(userID), showID)
			if err != nil {
				return err
			}
			if checkin != nil && checkin.IsActive {
				checkins = append(checkins, *checkin)
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("active checkins by show", err)
	}
	return checkins, nil
}

// AllCheckins walks every row, active or not, in (user, show) order.
func (c *CheckinRepository) AllCheckins(ctx context.Context) ([]domain.Checkin, error) {
	if err := guard(ctx, "all checkins"); err != nil {
		return nil, err
	}
	var checkins []domain.Checkin
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(prefixCheckin)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var checkin domain.Checkin
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &checkin)
			}); err != nil {
				return err
			}
			checkins = append(checkins, checkin)
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("all checkins", err)
	}
	return checkins, nil
}

// UpsertCheckin writes the row and keeps both active indexes in step within the same transaction.
func (c *CheckinRepository) UpsertCheckin(ctx context.Context, checkin domain.Checkin) error {
	if err := guard(ctx, "upsert checkin"); err != nil {
		return err
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return writeCheckin(txn, checkin)
	})
	if err != nil {
		return storeFailure("upsert checkin", err)
	}
	return nil
}

// ClearLocation drops the coordinates of an existing row, and its share list when asked.
// A missing row is not an error.
func (c *CheckinRepository) ClearLocation(ctx context.Context, userID domain.UserID, showID domain.ShowID, clearShareWith bool) error {
	if err := guard(ctx, "clear location"); err != nil {
		return err
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		checkin, err := readCheckin(txn, userID, showID)
		if err != nil || checkin == nil {
			return err
		}
		checkin.StopSharing()
		if clearShareWith {
			checkin.ShareWith = nil
		}
		return writeCheckin(txn, *checkin)
	})
	if err != nil {
		return storeFailure("clear location", err)
	}
	return nil
}

func readCheckin(txn *badger.Txn, userID domain.UserID, showID domain.ShowID) (*domain.Checkin, error) {
	var checkin domain.Checkin
	err := readJSON(txn, checkinKey(userID, showID), &checkin)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func writeCheckin(txn *badger.Txn, checkin domain.Checkin) error {
	if err := writeJSON(txn, checkinKey(checkin.UserID, checkin.ShowID), checkin); err != nil {
		return err
	}
	byShow := activeShowKey(checkin.ShowID, checkin.UserID)
	byUser := activeUserKey(checkin.UserID, checkin.ShowID)
	if !checkin.IsActive {
		if err := txn.Delete(byShow); err != nil {
			return err
		}
		return txn.Delete(byUser)
	}
	if err := txn.Set(byShow, []byte{}); err != nil {
		return err
	}
	return txn.Set(byUser, []byte{})
}
