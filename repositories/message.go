package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"sharemyshows-live/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

func messagePrefix(showID domain.ShowID) string {
	return prefixMessage + pad(int64(showID)) + ":"
}

// Append persists a message in BadgerDB.
// The key is formatted as "msg:{show_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func (m *MessageRepository) Append(ctx context.Context, message domain.ChatMessage) error {
	if err := guard(ctx, "append message"); err != nil {
		return err
	}
	key := fmt.Sprintf("%s%019d:%s", messagePrefix(message.ShowID), message.CreatedAt.UnixNano(), message.ID)
	bytes, err := json.Marshal(message)
	if err != nil {
		return storeFailure("marshal message", err)
	}
	if err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	}); err != nil {
		return storeFailure("append message", err)
	}
	return nil
}

// Recent returns the latest messages of a show, oldest first.
// It walks the show prefix backwards from the newest key and stops once limit is reached.
func (m *MessageRepository) Recent(ctx context.Context, showID domain.ShowID, limit int) ([]domain.ChatMessage, error) {
	if err := guard(ctx, "recent messages"); err != nil {
		return nil, err
	}
	var messages []domain.ChatMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix(showID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration needs a seek key sorting after every timestamp of the prefix
		seekKey := append(slices.Clone(prefix), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(messages) == limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", limit))
				break
			}
			var message domain.ChatMessage
			if err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			}); err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("recent messages", err)
	}
	slices.Reverse(messages)
	return messages, nil
}
