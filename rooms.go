package chatwire

import (
	"log/slog"

	"github.com/chatwire/chatwire-go/internal/wire"
	"github.com/chatwire/chatwire-go/transport"
)

// Rooms groups the room operations of the backend. Obtain it from
// Client.Rooms. Every method issues at most one request and returns
// the transport's call unmodified; the facade never touches the
// connection lifecycle.
type Rooms struct {
	d      *dispatcher
	logger *slog.Logger
}

func newRooms(d *dispatcher, logger *slog.Logger) *Rooms {
	return &Rooms{d: d, logger: logger}
}

// Create creates a room. Title is required; the remaining options
// default as documented on CreateRoomOptions.
func (r *Rooms) Create(opts CreateRoomOptions) *transport.Call {
	return r.d.send(wire.EventCreateRoom, wire.CreateRoom{
		Title:               opts.Title,
		Private:             opts.Private,
		AllowPostsByDefault: orTrue(opts.AllowPostsByDefault),
		Properties:          orEmpty(opts.Properties),
	})
}

// SendMessageByID posts a message to the room. Text is required.
func (r *Rooms) SendMessageByID(roomID int64, opts SendMessageOptions) *transport.Call {
	return r.d.send(wire.EventSendMessageToRoom, wire.SendMessage{
		RoomID:     roomID,
		Text:       opts.Text,
		Properties: orEmpty(opts.Properties),
	})
}

// FindByID fetches one room. The reply decodes into Room.
func (r *Rooms) FindByID(roomID int64) *transport.Call {
	return r.d.send(wire.EventGetRoomInfo, wire.RoomRef{RoomID: roomID})
}

// FindAll fetches the rooms of the connected client. Every call is a
// fresh round trip; nothing is cached.
func (r *Rooms) FindAll() *transport.Call {
	return r.d.send(wire.EventGetClientRooms, wire.Empty{})
}

// GetMessagesByID fetches the messages of the room.
func (r *Rooms) GetMessagesByID(roomID int64) *transport.Call {
	return r.d.send(wire.EventGetMessages, wire.RoomRef{RoomID: roomID})
}

// UpdateByID rewrites the room's title and properties. Title is
// required.
func (r *Rooms) UpdateByID(roomID int64, opts UpdateRoomOptions) *transport.Call {
	return r.d.send(wire.EventUpdateRoom, wire.UpdateRoom{
		RoomID:     roomID,
		Title:      opts.Title,
		Properties: orEmpty(opts.Properties),
	})
}

// AddMemberByID adds a client to the room. TargetUniqueClientKey is
// required.
func (r *Rooms) AddMemberByID(roomID int64, opts MemberOptions) *transport.Call {
	return r.d.send(wire.EventAddParticipant, wire.Participant{
		RoomID:                roomID,
		TargetUniqueClientKey: opts.TargetUniqueClientKey,
		IsAllowedToPost:       opts.IsAllowedToPost,
		Properties:            orEmpty(opts.Properties),
	})
}

// UpdateMemberByID rewrites an existing membership.
// TargetUniqueClientKey is required.
func (r *Rooms) UpdateMemberByID(roomID int64, opts MemberOptions) *transport.Call {
	return r.d.send(wire.EventUpdateParticipant, wire.Participant{
		RoomID:                roomID,
		TargetUniqueClientKey: opts.TargetUniqueClientKey,
		IsAllowedToPost:       opts.IsAllowedToPost,
		Properties:            orEmpty(opts.Properties),
	})
}

// SetTypingByID reports the connected client's typing state in the
// room to other members.
func (r *Rooms) SetTypingByID(roomID int64, typing bool) *transport.Call {
	return r.d.send(wire.EventSetTyping, wire.SetTyping{
		RoomID:   roomID,
		IsTyping: typing,
	})
}

// DeleteByID is not supported by the backend. It fails with
// ErrNotImplemented and sends nothing.
func (r *Rooms) DeleteByID(roomID int64) *transport.Call {
	return transport.FailedCall("", ErrNotImplemented)
}

// RemoveMemberByID is not supported by the backend. It fails with
// ErrNotImplemented and sends nothing.
func (r *Rooms) RemoveMemberByID(roomID int64, targetUniqueClientKey string) *transport.Call {
	return transport.FailedCall("", ErrNotImplemented)
}
