// Package ws carries the presence events over gorilla websockets.
// Every frame is a JSON object {"type": "...", "data": {...}} in both directions.
package ws

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"sharemyshows-live/domain"
	"sharemyshows-live/domain/event"
	"sharemyshows-live/errors"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const shareWithField = "share_with"

type inboundFrame struct {
	Type string          `json:"type" validate:"required"`
	Data json.RawMessage `json:"data"`
}

type outboundFrame struct {
	Type string      `json:"type"`
	Data event.Event `json:"data"`
}

type showPayload struct {
	ShowID domain.ShowID `json:"show_id" validate:"required,gt=0"`
}

type messagePayload struct {
	ShowID  domain.ShowID `json:"show_id" validate:"required,gt=0"`
	Message string        `json:"message" validate:"required"`
}

type typingPayload struct {
	ShowID   domain.ShowID `json:"show_id" validate:"required,gt=0"`
	IsTyping bool          `json:"is_typing"`
}

type locationPayload struct {
	ShowID    domain.ShowID `json:"show_id" validate:"required,gt=0"`
	Latitude  *float64      `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64      `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type shareWithPayload struct {
	ShareWith []domain.UserID `json:"share_with" validate:"omitempty,dive,gt=0"`
}

type appearOfflinePayload struct {
	AppearOffline *bool `json:"appear_offline" validate:"required"`
}

// Codec turns raw frames into validated domain commands and events into frames.
type Codec struct {
	validate         *validator.Validate
	maxMessageLength int
}

func NewCodec(maxMessageLength int) *Codec {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Codec{validate: validate, maxMessageLength: maxMessageLength}
}

// Decode returns an error wrapping ErrInvalidPayload or ErrUnknownEvent; the
// error text is what the client reads back.
func (c *Codec) Decode(frame []byte) (domain.Command, error) {
	var in inboundFrame
	if err := json.Unmarshal(frame, &in); err != nil {
		return nil, fmt.Errorf("%w: malformed frame", errors.ErrInvalidPayload)
	}
	if err := c.validate.Struct(in); err != nil {
		return nil, invalid(err)
	}

	switch in.Type {
	case domain.CmdJoinShow:
		p, err := decodeShow(c, in.Data)
		return domain.JoinShowCommand{ShowID: p.ShowID}, err
	case domain.CmdLeaveShow:
		p, err := decodeShow(c, in.Data)
		return domain.LeaveShowCommand{ShowID: p.ShowID}, err
	case domain.CmdGetActiveUsers:
		p, err := decodeShow(c, in.Data)
		return domain.GetActiveUsersCommand{ShowID: p.ShowID}, err
	case domain.CmdStopLocation:
		p, err := decodeShow(c, in.Data)
		return domain.StopLocationCommand{ShowID: p.ShowID}, err
	case domain.CmdGetFriendsLocations:
		p, err := decodeShow(c, in.Data)
		return domain.GetFriendsLocationsCommand{ShowID: p.ShowID}, err
	case domain.CmdSendMessage:
		return c.decodeMessage(in.Data)
	case domain.CmdTyping:
		var p typingPayload
		if err := c.decodePayload(in.Data, &p); err != nil {
			return nil, err
		}
		return domain.TypingCommand{ShowID: p.ShowID, IsTyping: p.IsTyping}, nil
	case domain.CmdUpdateLocation:
		return c.decodeLocation(in.Data)
	case domain.CmdUpdateShareWith:
		return c.decodeShareWith(in.Data)
	case domain.CmdSetAppearOffline:
		var p appearOfflinePayload
		if err := c.decodePayload(in.Data, &p); err != nil {
			return nil, err
		}
		return domain.SetAppearOfflineCommand{AppearOffline: *p.AppearOffline}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownEvent, in.Type)
	}
}

func decodeShow(c *Codec, data json.RawMessage) (showPayload, error) {
	var p showPayload
	err := c.decodePayload(data, &p)
	return p, err
}

func (c *Codec) decodeMessage(data json.RawMessage) (domain.Command, error) {
	var p messagePayload
	if err := c.decodePayload(data, &p); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(p.Message)
	if text == "" {
		return nil, fmt.Errorf("%w: message is required", errors.ErrInvalidPayload)
	}
	if c.maxMessageLength > 0 && utf8.RuneCountInString(text) > c.maxMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", errors.ErrInvalidPayload, c.maxMessageLength)
	}
	return domain.SendMessageCommand{ShowID: p.ShowID, Text: text}, nil
}

func (c *Codec) decodeLocation(data json.RawMessage) (domain.Command, error) {
	var p locationPayload
	if err := c.decodePayload(data, &p); err != nil {
		return nil, err
	}
	update, err := c.shareUpdate(data)
	if err != nil {
		return nil, err
	}
	return domain.UpdateLocationCommand{
		ShowID:    p.ShowID,
		Location:  domain.Location{Latitude: *p.Latitude, Longitude: *p.Longitude},
		ShareWith: update,
	}, nil
}

func (c *Codec) decodeShareWith(data json.RawMessage) (domain.Command, error) {
	var p showPayload
	if err := c.decodePayload(data, &p); err != nil {
		return nil, err
	}
	update, err := c.shareUpdate(data)
	if err != nil {
		return nil, err
	}
	if !update.Set {
		return nil, fmt.Errorf("%w: %s is required", errors.ErrInvalidPayload, shareWithField)
	}
	return domain.UpdateShareWithCommand{ShowID: p.ShowID, ShareWith: update.List}, nil
}

// shareUpdate tells an absent share_with from an explicit null (every friend)
// and from a list, possibly empty (nobody).
func (c *Codec) shareUpdate(data json.RawMessage) (domain.ShareUpdate, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.ShareUpdate{}, fmt.Errorf("%w: malformed data", errors.ErrInvalidPayload)
	}
	raw, present := fields[shareWithField]
	if !present {
		return domain.ShareUpdate{}, nil
	}
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return domain.ShareUpdate{Set: true}, nil
	}

	var p shareWithPayload
	if err := json.Unmarshal(raw, &p.ShareWith); err != nil {
		return domain.ShareUpdate{}, fmt.Errorf("%w: %s must be a list of user ids", errors.ErrInvalidPayload, shareWithField)
	}
	if err := c.validate.Struct(p); err != nil {
		return domain.ShareUpdate{}, invalid(err)
	}
	list := make(domain.ShareList, 0, len(p.ShareWith))
	for _, id := range p.ShareWith {
		if !list.Contains(id) {
			list = append(list, id)
		}
	}
	return domain.ShareUpdate{Set: true, List: list}, nil
}

func (c *Codec) decodePayload(data json.RawMessage, target any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: data is required", errors.ErrInvalidPayload)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: malformed data", errors.ErrInvalidPayload)
	}
	if err := c.validate.Struct(target); err != nil {
		return invalid(err)
	}
	return nil
}

// invalid names the first failing field by its wire name.
func invalid(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	fe := fieldErrors[0]
	return fmt.Errorf("%w: %s failed on %s", errors.ErrInvalidPayload, fe.Field(), fe.Tag())
}

// Encode wraps an event into its outbound frame.
func Encode(evt event.Event) ([]byte, error) {
	return json.Marshal(outboundFrame{Type: evt.Name(), Data: evt})
}
