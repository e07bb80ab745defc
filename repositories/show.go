package repositories

import (
	"context"
	"fmt"
	"time"

	"sharemyshows-live/domain"

	"github.com/dgraph-io/badger/v4"
)

// ShowRepository stores show records and maintains the concert index used to find siblings.
type ShowRepository struct {
	db *badger.DB
}

func NewShowRepository(db *badger.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func showKey(id domain.ShowID) []byte {
	return []byte(prefixShow + pad(int64(id)))
}

func concertPrefix(artistID, venueID int64, date time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s:", prefixConcert, pad(artistID), pad(venueID), domain.CalendarDate(date))
}

func concertKey(show domain.ShowRecord) []byte {
	return []byte(concertPrefix(show.ArtistID, show.VenueID, show.Date) + pad(int64(show.ID)))
}

// SaveShow writes the record and its concert index entry in one transaction.
// When the record already exists under another concert, the stale index entry is removed.
func (s *ShowRepository) SaveShow(ctx context.Context, show domain.ShowRecord) error {
	if err := guard(ctx, "save show"); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		var previous domain.ShowRecord
		switch err := readJSON(txn, showKey(show.ID), &previous); {
		case err == nil:
			if previous.ConcertKey() != show.ConcertKey() {
				if err := txn.Delete(concertKey(previous)); err != nil {
					return err
				}
			}
		case err != badger.ErrKeyNotFound:
			return err
		}
		if err := writeJSON(txn, showKey(show.ID), show); err != nil {
			return err
		}
		return txn.Set(concertKey(show), []byte{})
	})
	if err != nil {
		return storeFailure("save show", err)
	}
	return nil
}

// GetByID returns errors.ErrNotFound when the record does not exist.
func (s *ShowRepository) GetByID(ctx context.Context, id domain.ShowID) (domain.ShowRecord, error) {
	if err := guard(ctx, "get show"); err != nil {
		return domain.ShowRecord{}, err
	}
	var show domain.ShowRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, showKey(id), &show)
	})
	if err != nil {
		return domain.ShowRecord{}, notFoundOrFailure("get show", err)
	}
	return show, nil
}

// FindSiblings lists every record of the concert (artist, venue, calendar date), whoever owns it.
func (s *ShowRepository) FindSiblings(ctx context.Context, artistID, venueID int64, date time.Time) ([]domain.ShowID, error) {
	if err := guard(ctx, "find siblings"); err != nil {
		return nil, err
	}
	var ids []domain.ShowID
	err := s.db.View(func(txn *badger.Txn) error {
		for _, key := range scanKeys(txn, concertPrefix(artistID, venueID, date)) {
			id, err := lastSegment(key)
			if err != nil {
				return err
			}
			ids = append(ids, domain.ShowID(id))
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("find siblings", err)
	}
	return ids, nil
}
