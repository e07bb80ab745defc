package domain

import (
	"testing"
	"time"

	"sharemyshows-live/errors"

	"github.com/stretchr/testify/require"
)

func TestNext_TransitionTable(t *testing.T) {
	tests := []struct {
		name  string
		from  SharingState
		move  Transition
		to    SharingState
		err   error
	}{
		{name: "Check in from nothing", from: NotCheckedIn, move: CheckIn, to: CheckedInNoLocation},
		{name: "Share needs a checkin", from: NotCheckedIn, move: ShareLocation, to: NotCheckedIn, err: errors.ErrNotCheckedIn},
		{name: "Stop while not checked in is a no-op", from: NotCheckedIn, move: StopSharing, to: NotCheckedIn},
		{name: "Start sharing", from: CheckedInNoLocation, move: ShareLocation, to: Sharing},
		{name: "Update while sharing", from: Sharing, move: ShareLocation, to: Sharing},
		{name: "Stop sharing", from: Sharing, move: StopSharing, to: CheckedInNoLocation},
		{name: "Stop twice", from: CheckedInNoLocation, move: StopSharing, to: CheckedInNoLocation},
		{name: "Check out while sharing", from: Sharing, move: CheckOut, to: NotCheckedIn},
		{name: "Re-join keeps sharing", from: Sharing, move: CheckIn, to: Sharing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			to, err := Next(tt.from, tt.move)
			if tt.err != nil {
				req.ErrorIs(err, tt.err)
			} else {
				req.NoError(err)
			}
			req.Equal(tt.to, to)
		})
	}
}

func TestCheckin_Lifecycle(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	// Given a fresh checkin
	c := NewCheckin(1, 10, now)
	req.Equal(CheckedInNoLocation, c.State())

	// When a location is shared
	req.NoError(c.ShareLocation(Location{Latitude: 40.0, Longitude: -74.0}, now))

	// Then the checkin is sharing
	req.Equal(Sharing, c.State())
	req.Equal(&now, c.LastLocationUpdate)

	// When the user checks out
	wasSharing, err := c.CheckOut(now.Add(time.Hour))

	// Then coordinates are dropped and the row stays as history
	req.NoError(err)
	req.True(wasSharing)
	req.False(c.IsActive)
	req.Nil(c.Location)
	req.NotNil(c.CheckedOutAt)
	req.Equal(NotCheckedIn, c.State())

	// When the user shares again without checking in
	err = c.ShareLocation(Location{}, now)

	// Then it is rejected
	req.ErrorIs(err, errors.ErrNotCheckedIn)
}

func TestCheckin_CheckInReactivates(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	c := NewCheckin(1, 10, now)
	_, err := c.CheckOut(now)
	req.NoError(err)

	later := now.Add(time.Minute)
	req.NoError(c.CheckIn(later))

	req.True(c.IsActive)
	req.Nil(c.CheckedOutAt)
	req.Equal(later, c.CheckedInAt)
}

func TestCheckin_StopSharingIsIdempotent(t *testing.T) {
	req := require.New(t)
	c := NewCheckin(1, 10, time.Now().UTC())
	req.NoError(c.ShareLocation(Location{Latitude: 1, Longitude: 2}, time.Now().UTC()))

	req.True(c.StopSharing())
	req.False(c.StopSharing())
}

func TestShareList(t *testing.T) {
	req := require.New(t)

	var all ShareList
	req.True(all.AllFriends())
	req.True(all.Contains(42))
	req.Nil(all.Clone())

	none := ShareList{}
	req.False(none.AllFriends())
	req.False(none.Contains(42))
	req.NotNil(none.Clone())

	some := ShareList{3}
	req.True(some.Contains(3))
	req.False(some.Contains(4))
}
