package domain

import (
	"fmt"
	"slices"
	"time"

	"sharemyshows-live/errors"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ShareList restricts who may see a live location.
// A nil list means every accepted friend; an empty list means nobody.
type ShareList []UserID

func (s ShareList) AllFriends() bool {
	return s == nil
}

func (s ShareList) Contains(id UserID) bool {
	return s == nil || slices.Contains(s, id)
}

func (s ShareList) Clone() ShareList {
	if s == nil {
		return nil
	}
	out := make(ShareList, len(s))
	copy(out, s)
	return out
}

// Checkin is the durable attendance record of a user at a show record.
// At most one active checkin exists per (UserID, ShowID).
type Checkin struct {
	UserID             UserID     `json:"user_id"`
	ShowID             ShowID     `json:"show_id"`
	IsActive           bool       `json:"is_active"`
	CheckedInAt        time.Time  `json:"checked_in_at"`
	CheckedOutAt       *time.Time `json:"checked_out_at,omitempty"`
	Location           *Location  `json:"location,omitempty"`
	LastLocationUpdate *time.Time `json:"last_location_update,omitempty"`
	ShareWith          ShareList  `json:"share_with"`
}

type SharingState int

const (
	NotCheckedIn SharingState = iota
	CheckedInNoLocation
	Sharing
)

func (s SharingState) String() string {
	switch s {
	case CheckedInNoLocation:
		return "checked_in"
	case Sharing:
		return "sharing"
	default:
		return "not_checked_in"
	}
}

type Transition int

const (
	CheckIn Transition = iota
	CheckOut
	ShareLocation
	StopSharing
)

func (t Transition) String() string {
	switch t {
	case CheckIn:
		return "check_in"
	case CheckOut:
		return "check_out"
	case ShareLocation:
		return "share_location"
	default:
		return "stop_sharing"
	}
}

// transitions lists every legal move; anything absent is rejected.
var transitions = map[SharingState]map[Transition]SharingState{
	NotCheckedIn: {
		CheckIn:     CheckedInNoLocation,
		CheckOut:    NotCheckedIn,
		StopSharing: NotCheckedIn,
	},
	CheckedInNoLocation: {
		CheckIn:       CheckedInNoLocation,
		CheckOut:      NotCheckedIn,
		ShareLocation: Sharing,
		StopSharing:   CheckedInNoLocation,
	},
	Sharing: {
		CheckIn:       Sharing,
		CheckOut:      NotCheckedIn,
		ShareLocation: Sharing,
		StopSharing:   CheckedInNoLocation,
	},
}

// Next returns the state reached by applying t from the given state.
func Next(from SharingState, t Transition) (SharingState, error) {
	to, ok := transitions[from][t]
	if !ok {
		if t == ShareLocation {
			return from, errors.ErrNotCheckedIn
		}
		return from, fmt.Errorf("%w: %s from %s", errors.ErrInvalidTransition, t, from)
	}
	return to, nil
}

// NewCheckin returns an active checkin without location.
func NewCheckin(userID UserID, showID ShowID, at time.Time) *Checkin {
	return &Checkin{UserID: userID, ShowID: showID, IsActive: true, CheckedInAt: at}
}

func (c *Checkin) State() SharingState {
	switch {
	case c == nil || !c.IsActive:
		return NotCheckedIn
	case c.Location != nil:
		return Sharing
	default:
		return CheckedInNoLocation
	}
}

// CheckIn reactivates the checkin. A checkin that is already active keeps its state.
func (c *Checkin) CheckIn(at time.Time) error {
	from := c.State()
	if _, err := Next(from, CheckIn); err != nil {
		return err
	}
	if from == NotCheckedIn {
		c.IsActive = true
		c.CheckedInAt = at
		c.CheckedOutAt = nil
		c.Location = nil
	}
	return nil
}

// CheckOut deactivates the checkin and drops any live coordinates.
// It reports whether a location was being shared.
func (c *Checkin) CheckOut(at time.Time) (bool, error) {
	wasSharing := c.Location != nil
	if _, err := Next(c.State(), CheckOut); err != nil {
		return false, err
	}
	if c.IsActive {
		c.IsActive = false
		c.CheckedOutAt = &at
	}
	c.Location = nil
	return wasSharing, nil
}

func (c *Checkin) ShareLocation(loc Location, at time.Time) error {
	if _, err := Next(c.State(), ShareLocation); err != nil {
		return err
	}
	c.Location = &loc
	c.LastLocationUpdate = &at
	return nil
}

// StopSharing clears the coordinates and reports whether any were set.
// Stopping a share that is not running is a no-op.
func (c *Checkin) StopSharing() bool {
	wasSharing := c.Location != nil
	c.Location = nil
	return wasSharing
}
