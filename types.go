package chatwire

// Reply shapes are event-specific and the SDK does not validate them.
// The model structs below are decode targets for transport.Call.Decode
// and for unmarshalling routed event payloads, nothing more.

// Room represents a room record from the backend.
type Room struct {
	RoomID              int64          `json:"roomId"`
	Title               string         `json:"title"`
	Private             bool           `json:"private"`
	AllowPostsByDefault bool           `json:"allowPostsByDefault"`
	Properties          map[string]any `json:"properties"`
}

// Message represents a room message from the backend.
type Message struct {
	MessageID  int64          `json:"messageId"`
	RoomID     int64          `json:"roomId"`
	SenderKey  string         `json:"senderKey"`
	Text       string         `json:"text"`
	Properties map[string]any `json:"properties"`

	// Server timestamp, passed through opaque
	CreatedAt string `json:"createdAt"`
}

// ClientInfo represents a participant identity record. It is not the
// SDK client; see Client for that.
type ClientInfo struct {
	UniqueClientKey string         `json:"uniqueClientKey"`
	Token           string         `json:"token"`
	Properties      map[string]any `json:"properties"`
}

// Member represents a room membership record, keyed by room and
// client.
type Member struct {
	RoomID          int64          `json:"roomId"`
	UniqueClientKey string         `json:"uniqueClientKey"`
	IsAllowedToPost bool           `json:"isAllowedToPost"`
	Properties      map[string]any `json:"properties"`
}

// CreateRoomOptions configures Rooms.Create. The zero value is valid
// except for Title.
type CreateRoomOptions struct {
	// Title names the room. Required.
	Title string

	// Private hides the room from discovery. Defaults to false.
	Private bool

	// AllowPostsByDefault grants members posting rights unless their
	// membership overrides it. Nil means true.
	AllowPostsByDefault *bool

	// Properties is an open key-value map stored on the room. Nil
	// becomes an empty map.
	Properties map[string]any
}

// SendMessageOptions configures Rooms.SendMessageByID.
type SendMessageOptions struct {
	// Text is the message body. Required.
	Text string

	// Properties is an open key-value map stored on the message. Nil
	// becomes an empty map.
	Properties map[string]any
}

// UpdateRoomOptions configures Rooms.UpdateByID.
type UpdateRoomOptions struct {
	// Title replaces the room title. Required.
	Title string

	// Properties replaces the room properties. Nil becomes an empty
	// map.
	Properties map[string]any
}

// MemberOptions configures Rooms.AddMemberByID and
// Rooms.UpdateMemberByID.
type MemberOptions struct {
	// TargetUniqueClientKey identifies the client whose membership is
	// written. Required.
	TargetUniqueClientKey string

	// IsAllowedToPost overrides the room's allowPostsByDefault for
	// this member. Nil omits the field so the room default governs.
	IsAllowedToPost *bool

	// Properties is an open key-value map stored on the membership.
	// Nil becomes an empty map.
	Properties map[string]any
}

// ClientOptions configures the Clients facade write operations.
type ClientOptions struct {
	// Token is the client's opaque credential. Required for Create
	// and Upsert; for Update an empty Token leaves the stored one
	// untouched.
	Token string

	// Properties is an open key-value map stored on the client.
	// Required for Create and Upsert (an empty non-nil map is
	// accepted); for Update nil becomes an empty map.
	Properties map[string]any
}

// orEmpty replaces a nil properties map with an empty one so outbound
// payloads always carry the field.
func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// orTrue dereferences b, defaulting to true when unset.
func orTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}
