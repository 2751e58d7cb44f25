// Package wire defines the fixed wire-facing vocabulary: the internal
// event identifiers and the outbound payload shapes sent under them.
// Identifiers must round-trip exactly for backend compatibility.
package wire

// Room events
const (
	EventRoomEvent         = "room_event"
	EventNewRoomCreated    = "new_room_created"
	EventJoinedToRoom      = "joined_to_room"
	EventRoomUpdated       = "room_updated"
	EventGetClientRooms    = "get_client_rooms"
	EventGetMessages       = "get_messages"
	EventSendMessageToRoom = "send_message_to_room"
	EventCreateRoom        = "create_room"
	EventAddParticipant    = "add_participant"
	EventUpdateParticipant = "update_participant"
	EventUpdateRoom        = "update_room"
	EventGetRoomInfo       = "get_room_info"
	EventSetTyping         = "set_typing"
)

// Client events
const (
	EventAddClient        = "add_client"
	EventUpdateClient     = "update_client"
	EventDeleteClient     = "delete_client"
	EventGetClient        = "get_client"
	EventGetCurrentClient = "get_current_client"
)
