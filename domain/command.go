package domain

// Command is an inbound socket event already decoded and validated by the transport.
type Command interface {
	Name() string
}

const (
	CmdJoinShow            = "join_show"
	CmdLeaveShow           = "leave_show"
	CmdSendMessage         = "send_message"
	CmdTyping              = "typing"
	CmdGetActiveUsers      = "get_active_users"
	CmdUpdateLocation      = "update_location"
	CmdStopLocation        = "stop_location"
	CmdUpdateShareWith     = "update_share_with"
	CmdGetFriendsLocations = "get_friends_locations"
	CmdSetAppearOffline    = "set_appear_offline"
)

type JoinShowCommand struct {
	ShowID ShowID
}

func (JoinShowCommand) Name() string { return CmdJoinShow }

type LeaveShowCommand struct {
	ShowID ShowID
}

func (LeaveShowCommand) Name() string { return CmdLeaveShow }

type SendMessageCommand struct {
	ShowID ShowID
	Text   string
}

func (SendMessageCommand) Name() string { return CmdSendMessage }

type TypingCommand struct {
	ShowID   ShowID
	IsTyping bool
}

func (TypingCommand) Name() string { return CmdTyping }

type GetActiveUsersCommand struct {
	ShowID ShowID
}

func (GetActiveUsersCommand) Name() string { return CmdGetActiveUsers }

// ShareUpdate carries an optional share-list change. Set is false when the client
// did not send the field at all; List is nil when the client sent null.
type ShareUpdate struct {
	Set  bool
	List ShareList
}

type UpdateLocationCommand struct {
	ShowID    ShowID
	Location  Location
	ShareWith ShareUpdate
}

func (UpdateLocationCommand) Name() string { return CmdUpdateLocation }

type StopLocationCommand struct {
	ShowID ShowID
}

func (StopLocationCommand) Name() string { return CmdStopLocation }

type UpdateShareWithCommand struct {
	ShowID    ShowID
	ShareWith ShareList
}

func (UpdateShareWithCommand) Name() string { return CmdUpdateShareWith }

type GetFriendsLocationsCommand struct {
	ShowID ShowID
}

func (GetFriendsLocationsCommand) Name() string { return CmdGetFriendsLocations }

type SetAppearOfflineCommand struct {
	AppearOffline bool
}

func (SetAppearOfflineCommand) Name() string { return CmdSetAppearOffline }
