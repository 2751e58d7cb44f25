package wire

// Outbound request payloads. Field declaration order is the validation
// order: the first field failing its required check is the one
// reported. The facades fill defaults before a payload gets here, so a
// validated payload contains every declared field.

// CreateRoom is the create_room payload.
type CreateRoom struct {
	Title               string         `json:"title" validate:"required"`
	Private             bool           `json:"private"`
	AllowPostsByDefault bool           `json:"allowPostsByDefault"`
	Properties          map[string]any `json:"properties"`
}

// SendMessage is the send_message_to_room payload.
type SendMessage struct {
	RoomID     int64          `json:"roomId" validate:"required"`
	Text       string         `json:"text" validate:"required"`
	Properties map[string]any `json:"properties"`
}

// RoomRef targets one room by id (get_room_info, get_messages).
type RoomRef struct {
	RoomID int64 `json:"roomId" validate:"required"`
}

// UpdateRoom is the update_room payload.
type UpdateRoom struct {
	RoomID     int64          `json:"roomId" validate:"required"`
	Title      string         `json:"title" validate:"required"`
	Properties map[string]any `json:"properties"`
}

// Participant is the add_participant and update_participant payload.
// A nil IsAllowedToPost is omitted so the room's allowPostsByDefault
// governs.
type Participant struct {
	RoomID                int64          `json:"roomId" validate:"required"`
	TargetUniqueClientKey string         `json:"targetUniqueClientKey" validate:"required"`
	IsAllowedToPost       *bool          `json:"isAllowedToPost,omitempty"`
	Properties            map[string]any `json:"properties"`
}

// SetTyping is the set_typing payload.
type SetTyping struct {
	RoomID   int64 `json:"roomId" validate:"required"`
	IsTyping bool  `json:"isTyping"`
}

// AddClient is the add_client payload, shared by create and upsert.
// Properties is required here: a client record without a properties
// map is rejected before send, though an empty map passes.
type AddClient struct {
	UniqueClientKey string         `json:"uniqueClientKey" validate:"required"`
	Token           string         `json:"token" validate:"required"`
	Properties      map[string]any `json:"properties" validate:"required"`
	Upsert          bool           `json:"upsert,omitempty"`
}

// UpdateClient is the update_client payload.
type UpdateClient struct {
	UniqueClientKey string         `json:"uniqueClientKey" validate:"required"`
	Token           string         `json:"token,omitempty"`
	Properties      map[string]any `json:"properties"`
}

// ClientRef targets one client by key (delete_client, get_client).
type ClientRef struct {
	UniqueClientKey string `json:"uniqueClientKey" validate:"required"`
}

// Empty is the payload for requests that carry no fields
// (get_client_rooms, get_current_client).
type Empty struct{}
