package ws

import (
	"testing"

	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestCodec_Decode(t *testing.T) {
	codec := NewCodec(20)

	tests := []struct {
		name     string
		frame    string
		expected domain.Command
	}{
		{
			name:     "Join show",
			frame:    `{"type":"join_show","data":{"show_id":10}}`,
			expected: domain.JoinShowCommand{ShowID: 10},
		},
		{
			name:     "Leave show",
			frame:    `{"type":"leave_show","data":{"show_id":10}}`,
			expected: domain.LeaveShowCommand{ShowID: 10},
		},
		{
			name:     "Message is trimmed",
			frame:    `{"type":"send_message","data":{"show_id":10,"message":"  encore!  "}}`,
			expected: domain.SendMessageCommand{ShowID: 10, Text: "encore!"},
		},
		{
			name:     "Typing defaults to false",
			frame:    `{"type":"typing","data":{"show_id":10}}`,
			expected: domain.TypingCommand{ShowID: 10},
		},
		{
			name:     "Location without share list keeps the stored one",
			frame:    `{"type":"update_location","data":{"show_id":10,"latitude":40.75,"longitude":-73.99}}`,
			expected: domain.UpdateLocationCommand{ShowID: 10, Location: domain.Location{Latitude: 40.75, Longitude: -73.99}},
		},
		{
			name:  "Location with null share list means every friend",
			frame: `{"type":"update_location","data":{"show_id":10,"latitude":0,"longitude":0,"share_with":null}}`,
			expected: domain.UpdateLocationCommand{
				ShowID:    10,
				ShareWith: domain.ShareUpdate{Set: true},
			},
		},
		{
			name:  "Location with a share list, duplicates removed",
			frame: `{"type":"update_location","data":{"show_id":10,"latitude":1,"longitude":2,"share_with":[3,4,3]}}`,
			expected: domain.UpdateLocationCommand{
				ShowID:    10,
				Location:  domain.Location{Latitude: 1, Longitude: 2},
				ShareWith: domain.ShareUpdate{Set: true, List: domain.ShareList{3, 4}},
			},
		},
		{
			name:     "Empty share list means nobody",
			frame:    `{"type":"update_share_with","data":{"show_id":10,"share_with":[]}}`,
			expected: domain.UpdateShareWithCommand{ShowID: 10, ShareWith: domain.ShareList{}},
		},
		{
			name:     "Null share list means every friend",
			frame:    `{"type":"update_share_with","data":{"show_id":10,"share_with":null}}`,
			expected: domain.UpdateShareWithCommand{ShowID: 10},
		},
		{
			name:     "Stop location",
			frame:    `{"type":"stop_location","data":{"show_id":10}}`,
			expected: domain.StopLocationCommand{ShowID: 10},
		},
		{
			name:     "Friends locations",
			frame:    `{"type":"get_friends_locations","data":{"show_id":10}}`,
			expected: domain.GetFriendsLocationsCommand{ShowID: 10},
		},
		{
			name:     "Active users",
			frame:    `{"type":"get_active_users","data":{"show_id":10}}`,
			expected: domain.GetActiveUsersCommand{ShowID: 10},
		},
		{
			name:     "Appear offline",
			frame:    `{"type":"set_appear_offline","data":{"appear_offline":true}}`,
			expected: domain.SetAppearOfflineCommand{AppearOffline: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := codec.Decode([]byte(tt.frame))
			require.NoError(t, err)
			require.Equal(t, tt.expected, cmd)
		})
	}
}

func TestCodec_Decode_Rejects(t *testing.T) {
	codec := NewCodec(20)

	tests := []struct {
		name    string
		frame   string
		err     error
		message string
	}{
		{
			name:    "Not json",
			frame:   `hello`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: malformed frame",
		},
		{
			name:    "Missing type",
			frame:   `{"data":{"show_id":10}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: type failed on required",
		},
		{
			name:    "Unknown type",
			frame:   `{"type":"new_comment","data":{"show_id":10}}`,
			err:     errors.ErrUnknownEvent,
			message: "unknown event: new_comment",
		},
		{
			name:    "Missing data",
			frame:   `{"type":"join_show"}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: data is required",
		},
		{
			name:    "Missing show id",
			frame:   `{"type":"join_show","data":{}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: show_id failed on required",
		},
		{
			name:    "Negative show id",
			frame:   `{"type":"leave_show","data":{"show_id":-1}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: show_id failed on gt",
		},
		{
			name:    "Blank message",
			frame:   `{"type":"send_message","data":{"show_id":10,"message":"   "}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: message is required",
		},
		{
			name:    "Message too long",
			frame:   `{"type":"send_message","data":{"show_id":10,"message":"this message is far too long"}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: message exceeds 20 characters",
		},
		{
			name:    "Missing latitude",
			frame:   `{"type":"update_location","data":{"show_id":10,"longitude":2}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: latitude failed on required",
		},
		{
			name:    "Latitude out of range",
			frame:   `{"type":"update_location","data":{"show_id":10,"latitude":91,"longitude":2}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: latitude failed on lte",
		},
		{
			name:    "Share list of strings",
			frame:   `{"type":"update_location","data":{"show_id":10,"latitude":1,"longitude":2,"share_with":["bob"]}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: share_with must be a list of user ids",
		},
		{
			name:    "Share list with an invalid id",
			frame:   `{"type":"update_share_with","data":{"show_id":10,"share_with":[3,0]}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: share_with[1] failed on gt",
		},
		{
			name:    "Share list change without a list",
			frame:   `{"type":"update_share_with","data":{"show_id":10}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: share_with is required",
		},
		{
			name:    "Appear offline without a value",
			frame:   `{"type":"set_appear_offline","data":{}}`,
			err:     errors.ErrInvalidPayload,
			message: "invalid payload: appear_offline failed on required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := codec.Decode([]byte(tt.frame))
			req.ErrorIs(err, tt.err)
			req.Equal(tt.message, errors.Message(err))
		})
	}
}

func TestEncode(t *testing.T) {
	req := require.New(t)

	// When an event is encoded
	frame, err := Encode(event.LocationStopped{ShowID: 10, UserID: 2})
	req.NoError(err)

	// Then the frame carries its name and payload
	var decoded struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	req.NoError(json.Unmarshal(frame, &decoded))
	req.Equal("location_stopped", decoded.Type)
	req.Equal(float64(10), decoded.Data["show_id"])
	req.Equal(float64(2), decoded.Data["user_id"])
}
