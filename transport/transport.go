package transport

import (
	"context"
	"encoding/json"
)

// Lifecycle event names delivered through On. The transport emits these
// alongside server push events; lifecycle messages carry Err where an
// error is involved, push messages carry Payload.
const (
	EventConnected       = "connected"
	EventDisconnected    = "disconnected"
	EventError           = "error"
	EventConnectingError = "connecting_error"
)

// Message is a single inbound delivery: a push event from the server or
// a lifecycle notification from the transport itself.
type Message struct {
	Event   string          // event name the message arrived under
	Payload json.RawMessage // inner payload, already unwrapped from the envelope
	Err     error           // set on error and connecting_error lifecycle events
}

// Handler receives inbound messages for a subscribed event.
type Handler func(Message)

// Transport owns a persistent bidirectional connection: framing,
// request/reply correlation, and delivery of inbound events. Consumers
// treat it as a black box behind this interface.
type Transport interface {
	// Connect establishes the connection.
	Connect(ctx context.Context) error

	// Disconnect closes the connection. Pending calls fail with
	// ErrDisconnected. Disconnecting a transport that is not connected
	// is a no-op.
	Disconnect() error

	// Send transmits one request and returns its pending reply. The
	// returned Call is never nil; failures are reported by completing
	// it, including failures detected before anything hits the wire.
	Send(event string, payload any) *Call

	// On subscribes to inbound messages for an event name and returns
	// a function that removes the subscription.
	On(event string, h Handler) (off func())

	// IsConnected reports the current connection state.
	IsConnected() bool
}
