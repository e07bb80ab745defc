package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"sharemyshows-live/errors"

	"github.com/dgraph-io/badger/v4"
)

// Key layout. Every numeric part is zero padded so that prefix scans come back ordered.
//
//	user:{user}                              -> domain.User
//	friend:{user}:{friend}                   -> friendship status
//	show:{show}                              -> domain.ShowRecord
//	concert:{artist}:{venue}:{date}:{show}   -> empty (sibling index)
//	checkin:{user}:{show}                    -> domain.Checkin
//	active-show:{show}:{user}                -> empty (active checkins of a show)
//	active-user:{user}:{show}                -> empty (active checkins of a user)
//	msg:{show}:{unix_nano}:{uuid}            -> domain.ChatMessage
const (
	prefixUser       = "user:"
	prefixFriend     = "friend:"
	prefixShow       = "show:"
	prefixConcert    = "concert:"
	prefixCheckin    = "checkin:"
	prefixActiveShow = "active-show:"
	prefixActiveUser = "active-user:"
	prefixMessage    = "msg:"
)

func pad(id int64) string {
	return fmt.Sprintf("%019d", id)
}

// lastSegment parses the trailing numeric part of an index key.
func lastSegment(key []byte) (int64, error) {
	s := string(key)
	i := strings.LastIndexByte(s, ':')
	return strconv.ParseInt(s[i+1:], 10, 64)
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", errors.ErrStoreFailure, op, err)
}

// guard refuses to start a transaction once the caller gave up.
func guard(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return storeFailure(op, err)
	}
	return nil
}

// scanKeys collects the keys under prefix without loading values.
func scanKeys(txn *badger.Txn, prefix string) [][]byte {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}
