package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ShowRecord is one user's journal entry for a concert.
// Records sharing artist, venue and calendar date are siblings: the same real concert
// logged by different users.
type ShowRecord struct {
	ID       ShowID    `json:"id"`
	ArtistID int64     `json:"artist_id"`
	VenueID  int64     `json:"venue_id"`
	Date     time.Time `json:"date"`
	OwnerID  UserID    `json:"owner_id"`
}

// ConcertKey identifies the physical concert behind a show record.
type ConcertKey struct {
	ArtistID int64
	VenueID  int64
	Date     string
}

func (s ShowRecord) ConcertKey() ConcertKey {
	return ConcertKey{ArtistID: s.ArtistID, VenueID: s.VenueID, Date: CalendarDate(s.Date)}
}

func (k ConcertKey) String() string {
	return fmt.Sprintf("%d:%d:%s", k.ArtistID, k.VenueID, k.Date)
}

// CalendarDate drops the time of day so that two records of the same evening compare equal.
func CalendarDate(t time.Time) string {
	return t.Format(dateLayout)
}
