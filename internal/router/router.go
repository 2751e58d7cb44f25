// Package router re-emits inbound transport events under their
// public-facing names.
//
// The router:
//   - Subscribes once, at bind time, to every internal event it maps
//   - Renames per a fixed table and unwraps the inner payload
//   - Forwards synchronously, in transport delivery order
//   - Never filters, buffers, coalesces, or deduplicates
package router

import (
	"encoding/json"
	"log/slog"

	"github.com/chatwire/chatwire-go/internal/wire"
	"github.com/chatwire/chatwire-go/transport"
)

// routes is the fixed internal → public event mapping. The table, not
// a transformation function, is the source of truth: most entries
// rename to the same string, two do not. Request-only events
// (create_room, get_client_rooms, ...) have no entry; their replies
// come back through request correlation, not through the event
// surface.
var routes = map[string]string{
	wire.EventRoomEvent:         "room_event",
	wire.EventNewRoomCreated:    "new_room_created",
	wire.EventJoinedToRoom:      "joined_to_room",
	wire.EventRoomUpdated:       "room_updated",
	wire.EventSendMessageToRoom: "message_received",
	wire.EventUpdateClient:      "client_updated",
	wire.EventGetRoomInfo:       "get_room_info",
	wire.EventSetTyping:         "set_typing",
}

// Routes returns a copy of the mapping table.
func Routes() map[string]string {
	m := make(map[string]string, len(routes))
	for internal, public := range routes {
		m[internal] = public
	}
	return m
}

// Emit is the sink for re-emitted events: the public name plus the
// unwrapped payload.
type Emit func(event string, payload json.RawMessage)

// Router holds the transport subscriptions created by Bind.
type Router struct {
	logger *slog.Logger
	offs   []func()
}

// Bind subscribes to every mapped internal event on t and forwards
// each delivery to emit. Registration happens once, here; Unbind
// releases it.
func Bind(t transport.Transport, emit Emit, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Router{logger: logger}
	for internal, public := range routes {
		off := t.On(internal, func(m transport.Message) {
			r.logger.Debug("routing event", "from", internal, "to", public)
			emit(public, m.Payload)
		})
		r.offs = append(r.offs, off)
	}
	return r
}

// Unbind removes the router's transport subscriptions.
func (r *Router) Unbind() {
	for _, off := range r.offs {
		off()
	}
	r.offs = nil
}
