package chatwire

// Public events delivered to listeners registered with Client.On. The
// backend's wire identifiers are internal; listeners only ever see
// these names.
const (
	EventRoomEvent       = "room_event"
	EventNewRoomCreated  = "new_room_created"
	EventJoinedToRoom    = "joined_to_room"
	EventRoomUpdated     = "room_updated"
	EventMessageReceived = "message_received"
	EventClientUpdated   = "client_updated"
	EventGetRoomInfo     = "get_room_info"
	EventSetTyping       = "set_typing"
)
